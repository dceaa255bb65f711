package booking

import (
	"context"
	"errors"
	"time"

	"fitcoach/internal/events"
	"fitcoach/internal/logger"
	"fitcoach/internal/metrics"
	"fitcoach/internal/schedule"
)

type Service interface {
	CreateBooking(ctx context.Context, b Booking) (*Booking, error)
	GetBooking(ctx context.Context, id string) (*Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	MarkPaid(ctx context.Context, id string) error
	MarkUnpaid(ctx context.Context, id string) error
	ListBookings(ctx context.Context, filter ListFilter) ([]Booking, error)
}

// Notifier delivers booking emails. Failures are logged, never returned to
// the caller of the ledger operation.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, to, date, slotTime string, start time.Time) error
	SendCancellation(ctx context.Context, to, date, slotTime string) error
}

type Publisher interface {
	Publish(ctx context.Context, ev events.Event) error
}

// Invalidator drops any cached availability for a date.
type Invalidator interface {
	Invalidate(date string)
}

type Option func(*service)

func WithNotifier(n Notifier) Option { return func(s *service) { s.notifier = n } }

func WithPublisher(p Publisher) Option { return func(s *service) { s.publisher = p } }

func WithInvalidator(i Invalidator) Option { return func(s *service) { s.invalidator = i } }

func WithClock(now func() time.Time) Option { return func(s *service) { s.now = now } }

type service struct {
	repo        Repository
	loc         *time.Location
	now         func() time.Time
	notifier    Notifier
	publisher   Publisher
	invalidator Invalidator
}

// NewService builds the ledger service. Slot start times are judged in loc.
func NewService(repo Repository, loc *time.Location, opts ...Option) Service {
	if loc == nil {
		loc = time.UTC
	}
	s := &service{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateBooking(ctx context.Context, b Booking) (*Booking, error) {
	created, err := s.create(ctx, b)
	metrics.RecordBookingAttempt(Outcome(err))
	if err != nil {
		logger.Warn("booking rejected",
			"booking_id", b.ID,
			"date", b.Date,
			"time", b.Time,
			"reason", err.Error(),
		)
		return nil, err
	}

	logger.Info("booking created",
		"booking_id", created.ID,
		"date", created.Date,
		"time", created.Time,
		"user", created.User,
	)

	s.afterWrite(ctx, created.Date, events.Event{
		Type:      events.BookingCreated,
		BookingID: created.ID,
		User:      created.User,
		Date:      created.Date,
		Time:      created.Time,
	})

	if s.notifier != nil && created.UserEmail != "" {
		start, _ := schedule.StartOf(created.Date, created.Time, s.loc)
		bg := context.WithoutCancel(ctx)
		if err := s.notifier.SendBookingConfirmation(bg, created.UserEmail, created.Date, created.Time, start); err != nil {
			logger.Error("failed to queue booking confirmation", "booking_id", created.ID, "error", err)
		}
	}

	return created, nil
}

func (s *service) create(ctx context.Context, b Booking) (*Booking, error) {
	if !b.HealthDisclosureAccepted {
		return nil, ErrDisclosureRequired
	}

	start, err := schedule.StartOf(b.Date, b.Time, s.loc)
	if err != nil {
		return nil, err
	}
	if start.Before(s.now()) {
		return nil, ErrSlotInPast
	}

	b.IsPaid = false
	if err := s.repo.Create(ctx, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *service) GetBooking(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) DeleteBooking(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	metrics.RecordBookingDeletion()
	logger.Info("booking deleted",
		"booking_id", deleted.ID,
		"date", deleted.Date,
		"time", deleted.Time,
	)

	s.afterWrite(ctx, deleted.Date, events.Event{
		Type:      events.BookingDeleted,
		BookingID: deleted.ID,
		User:      deleted.User,
		Date:      deleted.Date,
		Time:      deleted.Time,
	})

	if s.notifier != nil && deleted.UserEmail != "" {
		bg := context.WithoutCancel(ctx)
		if err := s.notifier.SendCancellation(bg, deleted.UserEmail, deleted.Date, deleted.Time); err != nil {
			logger.Error("failed to queue cancellation notice", "booking_id", deleted.ID, "error", err)
		}
	}

	return nil
}

func (s *service) MarkPaid(ctx context.Context, id string) error {
	return s.setPaid(ctx, id, true)
}

func (s *service) MarkUnpaid(ctx context.Context, id string) error {
	return s.setPaid(ctx, id, false)
}

func (s *service) setPaid(ctx context.Context, id string, paid bool) error {
	if err := s.repo.SetPaid(ctx, id, paid); err != nil {
		return err
	}

	metrics.RecordPaymentStatus(paid)
	logger.Info("booking payment status changed", "booking_id", id, "is_paid", paid)

	eventType := events.BookingUnpaid
	if paid {
		eventType = events.BookingPaid
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(context.WithoutCancel(ctx), events.Event{Type: eventType, BookingID: id}); err != nil {
			logger.Error("failed to publish event", "type", eventType, "booking_id", id, "error", err)
		}
	}
	return nil
}

func (s *service) ListBookings(ctx context.Context, filter ListFilter) ([]Booking, error) {
	var (
		bookings []Booking
		err      error
	)
	if filter.User != "" {
		bookings, err = s.repo.ListByUser(ctx, filter.User)
	} else {
		bookings, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	if filter.Scope == "" || filter.Scope == ScopeAll {
		return bookings, nil
	}

	now := s.now()
	out := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		start, err := schedule.StartOf(b.Date, b.Time, s.loc)
		if err != nil {
			continue
		}
		upcoming := !start.Before(now)
		if upcoming == (filter.Scope == ScopeUpcoming) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *service) afterWrite(ctx context.Context, date string, ev events.Event) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(date)
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(context.WithoutCancel(ctx), ev); err != nil {
			logger.Error("failed to publish event", "type", ev.Type, "booking_id", ev.BookingID, "error", err)
		}
	}
}

// Outcome is the metrics label for a createBooking result.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, ErrSlotAlreadyBooked):
		return "slot_already_booked"
	case errors.Is(err, ErrSlotUnavailable):
		return "slot_unavailable"
	case errors.Is(err, ErrDisclosureRequired):
		return "disclosure_required"
	case errors.Is(err, ErrBookingExists):
		return "booking_exists"
	case errors.Is(err, ErrSlotInPast):
		return "slot_in_past"
	case errors.Is(err, schedule.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, schedule.ErrInvalidTime):
		return "invalid_time"
	default:
		return "error"
	}
}
