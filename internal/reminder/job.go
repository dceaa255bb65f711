package reminder

import (
	"context"
	"fmt"
	"time"

	"fitcoach/internal/booking"
	"fitcoach/internal/logger"
	"fitcoach/internal/metrics"
	"fitcoach/internal/schedule"

	"github.com/robfig/cron/v3"
)

type BookingLister interface {
	ListByDate(ctx context.Context, date string) ([]booking.Booking, error)
}

type Sender interface {
	SendReminder(ctx context.Context, to, date, slotTime string) error
}

// Job queues a reminder for every booking on the next calendar day.
type Job struct {
	bookings BookingLister
	sender   Sender
	loc      *time.Location
	now      func() time.Time
}

func NewJob(bookings BookingLister, sender Sender, loc *time.Location) *Job {
	return &Job{bookings: bookings, sender: sender, loc: loc, now: time.Now}
}

// Run returns the number of reminders queued.
func (j *Job) Run(ctx context.Context) (int, error) {
	tomorrow := j.now().In(j.loc).AddDate(0, 0, 1).Format(schedule.DateLayout)

	bookings, err := j.bookings.ListByDate(ctx, tomorrow)
	if err != nil {
		return 0, fmt.Errorf("reminder job: failed to list bookings for %s: %w", tomorrow, err)
	}

	sent := 0
	for _, b := range bookings {
		if b.UserEmail == "" {
			continue
		}
		if err := j.sender.SendReminder(ctx, b.UserEmail, b.Date, b.Time); err != nil {
			logger.Warn("failed to queue reminder", "booking_id", b.ID, "error", err)
			continue
		}
		metrics.RecordReminder()
		sent++
	}

	logger.Info("reminder job finished", "date", tomorrow, "bookings", len(bookings), "queued", sent)
	return sent, nil
}

// Schedule registers the job on a new cron runner. The caller starts and stops it.
func Schedule(spec string, job *Job) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(job.loc))
	if _, err := c.AddFunc(spec, func() {
		if _, err := job.Run(context.Background()); err != nil {
			logger.Error("reminder job failed", "error", err)
		}
	}); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	return c, nil
}
