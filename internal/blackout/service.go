package blackout

import (
	"context"

	"fitcoach/internal/events"
	"fitcoach/internal/logger"
	"fitcoach/internal/metrics"
	"fitcoach/internal/schedule"
)

type Service interface {
	MarkUnavailable(ctx context.Context, date, slotTime string) error
	UnmarkUnavailable(ctx context.Context, date, slotTime string) error
	ListByDate(ctx context.Context, date string) ([]Entry, error)
}

type Publisher interface {
	Publish(ctx context.Context, ev events.Event) error
}

type Invalidator interface {
	Invalidate(date string)
}

type service struct {
	repo        Repository
	publisher   Publisher
	invalidator Invalidator
}

// NewService wires the registry. publisher and invalidator may be nil.
func NewService(repo Repository, publisher Publisher, invalidator Invalidator) Service {
	return &service{
		repo:        repo,
		publisher:   publisher,
		invalidator: invalidator,
	}
}

func (s *service) MarkUnavailable(ctx context.Context, date, slotTime string) error {
	if err := schedule.Validate(date, slotTime); err != nil {
		return err
	}

	changed, err := s.repo.Mark(ctx, date, slotTime)
	if err != nil {
		return err
	}
	if changed {
		s.changed(ctx, "mark", events.SlotBlackout, date, slotTime)
	}
	return nil
}

func (s *service) UnmarkUnavailable(ctx context.Context, date, slotTime string) error {
	if err := schedule.Validate(date, slotTime); err != nil {
		return err
	}

	changed, err := s.repo.Unmark(ctx, date, slotTime)
	if err != nil {
		return err
	}
	if changed {
		s.changed(ctx, "unmark", events.SlotReleased, date, slotTime)
	}
	return nil
}

func (s *service) ListByDate(ctx context.Context, date string) ([]Entry, error) {
	if _, err := schedule.ParseDate(date); err != nil {
		return nil, err
	}
	return s.repo.ListByDate(ctx, date)
}

func (s *service) changed(ctx context.Context, action, eventType, date, slotTime string) {
	metrics.RecordBlackout(action)
	logger.Info("blackout changed", "action", action, "date", date, "time", slotTime)

	if s.invalidator != nil {
		s.invalidator.Invalidate(date)
	}
	if s.publisher != nil {
		ev := events.Event{Type: eventType, Date: date, Time: slotTime}
		if err := s.publisher.Publish(context.WithoutCancel(ctx), ev); err != nil {
			logger.Error("failed to publish event", "type", eventType, "error", err)
		}
	}
}
