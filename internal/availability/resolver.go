// Package availability computes the caller-visible slot list for one day from
// the booking ledger and the blackout registry.
package availability

import (
	"context"
	"fmt"

	"fitcoach/internal/blackout"
	"fitcoach/internal/booking"
	"fitcoach/internal/schedule"
)

// TimeSlot is derived on every read and never stored. IsBooked and
// IsUnavailable are independent and may both be true.
type TimeSlot struct {
	Date          string `json:"date" example:"2025-06-01"`
	Time          string `json:"time" example:"10:00"`
	IsBooked      bool   `json:"isBooked"`
	IsUnavailable bool   `json:"isUnavailable"`
}

type BookingReader interface {
	ListByDate(ctx context.Context, date string) ([]booking.Booking, error)
}

type BlackoutReader interface {
	ListByDate(ctx context.Context, date string) ([]blackout.Entry, error)
}

type Resolver interface {
	GetAvailableTimeSlots(ctx context.Context, date string) ([]TimeSlot, error)
}

type resolver struct {
	bookings  BookingReader
	blackouts BlackoutReader
	cache     *Cache
}

// NewResolver builds a resolver. cache may be nil.
func NewResolver(bookings BookingReader, blackouts BlackoutReader, cache *Cache) Resolver {
	return &resolver{
		bookings:  bookings,
		blackouts: blackouts,
		cache:     cache,
	}
}

func (r *resolver) GetAvailableTimeSlots(ctx context.Context, date string) ([]TimeSlot, error) {
	if _, err := schedule.ParseDate(date); err != nil {
		return nil, err
	}

	cached, generation, ok := r.cache.Get(date)
	if ok {
		return cached, nil
	}

	booked, err := r.bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	blocked, err := r.blackouts.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list blackouts: %w", err)
	}

	slots := Resolve(date, booked, blocked)
	r.cache.Store(date, generation, slots)
	return slots, nil
}

// Resolve lays bookings and blackouts for date over the slot grid. Entries for
// other dates or off-grid times are ignored.
func Resolve(date string, booked []booking.Booking, blocked []blackout.Entry) []TimeSlot {
	isBooked := make(map[string]bool, len(booked))
	for _, b := range booked {
		if b.Date == date {
			isBooked[b.Time] = true
		}
	}
	isBlocked := make(map[string]bool, len(blocked))
	for _, e := range blocked {
		if e.Date == date {
			isBlocked[e.Time] = true
		}
	}

	labels := schedule.Labels()
	slots := make([]TimeSlot, 0, len(labels))
	for _, label := range labels {
		slots = append(slots, TimeSlot{
			Date:          date,
			Time:          label,
			IsBooked:      isBooked[label],
			IsUnavailable: isBlocked[label],
		})
	}
	return slots
}
