package handlers

import "github.com/coachdesk/triage-go/services"

type Handlers struct {
	Ticket *TicketHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Ticket: NewTicketHandler(svc.Ticket),
	}
}
