package booking

import "context"

// Repository is the booking ledger store. Create must check the slot against
// existing bookings and blackouts and insert in one atomic step.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	Delete(ctx context.Context, id string) (*Booking, error)
	SetPaid(ctx context.Context, id string, paid bool) error
	List(ctx context.Context) ([]Booking, error)
	ListByUser(ctx context.Context, user string) ([]Booking, error)
	ListByDate(ctx context.Context, date string) ([]Booking, error)
}
