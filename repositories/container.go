package repositories

type Repos struct {
	Ticket TicketRepo
}

func New() *Repos {
	return &Repos{
		Ticket: &DBTicketRepo{},
	}
}
