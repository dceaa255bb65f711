package blackout

import "context"

// Repository stores blackout entries keyed by (date, time). Mark and Unmark
// are idempotent and report whether they changed anything.
type Repository interface {
	Mark(ctx context.Context, date, slotTime string) (bool, error)
	Unmark(ctx context.Context, date, slotTime string) (bool, error)
	ListByDate(ctx context.Context, date string) ([]Entry, error)
}
