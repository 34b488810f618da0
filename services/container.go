package services

import "github.com/coachdesk/triage-go/repositories"

type Services struct {
	Ticket *TicketService
}

func New(repos *repositories.Repos, clf Classifier) *Services {
	return &Services{
		Ticket: NewTicketService(repos, clf),
	}
}
