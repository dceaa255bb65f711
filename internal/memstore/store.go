// Package memstore keeps the booking ledger and blackout registry in process
// memory behind one mutex. Booking creation checks both registries and
// inserts under the same lock.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"fitcoach/internal/blackout"
	"fitcoach/internal/booking"
	"fitcoach/internal/schedule"
)

type Store struct {
	mu        sync.RWMutex
	bookings  map[string]booking.Booking
	bySlot    map[schedule.Key]string
	blackouts map[schedule.Key]time.Time
	now       func() time.Time
}

func New() *Store {
	return &Store{
		bookings:  make(map[string]booking.Booking),
		bySlot:    make(map[schedule.Key]string),
		blackouts: make(map[schedule.Key]time.Time),
		now:       time.Now,
	}
}

// Bookings exposes the store as a booking.Repository.
func (s *Store) Bookings() booking.Repository { return bookingRepo{s} }

// Blackouts exposes the store as a blackout.Repository.
func (s *Store) Blackouts() blackout.Repository { return blackoutRepo{s} }

type bookingRepo struct{ s *Store }

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	key := schedule.Key{Date: b.Date, Time: b.Time}
	if _, taken := s.bySlot[key]; taken {
		return booking.ErrSlotAlreadyBooked
	}
	if _, blocked := s.blackouts[key]; blocked {
		return booking.ErrSlotUnavailable
	}
	if _, exists := s.bookings[b.ID]; exists {
		return booking.ErrBookingExists
	}

	b.CreatedAt = s.now().UTC()
	s.bookings[b.ID] = *b
	s.bySlot[key] = b.ID
	return nil
}

func (r bookingRepo) GetByID(_ context.Context, id string) (*booking.Booking, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	return &b, nil
}

func (r bookingRepo) Delete(_ context.Context, id string) (*booking.Booking, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	delete(s.bookings, id)
	delete(s.bySlot, schedule.Key{Date: b.Date, Time: b.Time})
	return &b, nil
}

func (r bookingRepo) SetPaid(_ context.Context, id string, paid bool) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return booking.ErrBookingNotFound
	}
	b.IsPaid = paid
	s.bookings[id] = b
	return nil
}

func (r bookingRepo) List(_ context.Context) ([]booking.Booking, error) {
	return r.s.collect(func(booking.Booking) bool { return true }), nil
}

func (r bookingRepo) ListByUser(_ context.Context, user string) ([]booking.Booking, error) {
	return r.s.collect(func(b booking.Booking) bool { return b.User == user }), nil
}

func (r bookingRepo) ListByDate(_ context.Context, date string) ([]booking.Booking, error) {
	return r.s.collect(func(b booking.Booking) bool { return b.Date == date }), nil
}

func (s *Store) collect(keep func(booking.Booking) bool) []booking.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []booking.Booking{}
	for _, b := range s.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

type blackoutRepo struct{ s *Store }

func (r blackoutRepo) Mark(_ context.Context, date, slotTime string) (bool, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	key := schedule.Key{Date: date, Time: slotTime}
	if _, ok := s.blackouts[key]; ok {
		return false, nil
	}
	s.blackouts[key] = s.now().UTC()
	return true, nil
}

func (r blackoutRepo) Unmark(_ context.Context, date, slotTime string) (bool, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	key := schedule.Key{Date: date, Time: slotTime}
	if _, ok := s.blackouts[key]; !ok {
		return false, nil
	}
	delete(s.blackouts, key)
	return true, nil
}

func (r blackoutRepo) ListByDate(_ context.Context, date string) ([]blackout.Entry, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []blackout.Entry{}
	for key, at := range s.blackouts {
		if key.Date == date {
			out = append(out, blackout.Entry{Date: key.Date, Time: key.Time, CreatedAt: at})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}
