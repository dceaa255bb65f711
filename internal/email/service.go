package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fitcoach/internal/logger"
	"fitcoach/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey       = "emails"
	failedQueueKey = "emails:failed"
	maxTries       = 3
)

// Job types, used as metrics labels.
const (
	TypeConfirmation = "confirmation"
	TypeReminder     = "reminder"
	TypeCancellation = "cancellation"
	TypeGeneric      = "generic"
)

type Job struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Options struct {
	From           string
	FromName       string
	SMTPHost       string
	SMTPPort       string
	SMTPUser       string
	SMTPPass       string
	SendGridAPIKey string
	RedisAddr      string
}

// Service queues emails in a Redis list and delivers them from Start.
type Service struct {
	redis      *redis.Client
	sender     Sender
	fromName   string
	retryDelay time.Duration
	now        func() time.Time
}

// New picks SendGrid when an API key is set and SMTP otherwise.
func New(opts Options) *Service {
	var sender Sender
	if opts.SendGridAPIKey != "" {
		sender = newSendGridSender(opts.SendGridAPIKey, opts.From, opts.FromName)
	} else {
		sender = &smtpSender{
			from:     opts.From,
			fromName: opts.FromName,
			host:     opts.SMTPHost,
			port:     opts.SMTPPort,
			user:     opts.SMTPUser,
			pass:     opts.SMTPPass,
		}
	}

	rdb := redis.NewClient(&redis.Options{Addr: opts.RedisAddr})
	return newService(rdb, sender, opts.FromName)
}

func newService(rdb *redis.Client, sender Sender, fromName string) *Service {
	return &Service{
		redis:      rdb,
		sender:     sender,
		fromName:   fromName,
		retryDelay: 5 * time.Second,
		now:        time.Now,
	}
}

func (s *Service) Send(ctx context.Context, to, name, subject, body string) error {
	return s.enqueue(ctx, Job{Type: TypeGeneric, To: to, Name: name, Subject: subject, Body: body})
}

func (s *Service) enqueue(ctx context.Context, job Job) error {
	job.Tries = 0
	job.Created = s.now()

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", job.To, err)
		metrics.RecordEmail(job.Type, "queue_failed")
		return err
	}

	metrics.RecordEmail(job.Type, "queued")
	logger.Info("email queued", "type", job.Type, "to", job.To)
	return nil
}

// Start consumes the queue until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	logger.Info("Email worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if errors.Is(err, redis.Nil) {
		s.QueueLength(ctx)
		return
	}
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.Error("email queue unavailable", "error", err)
		s.pause(ctx)
		return
	}

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	job.Tries++
	logger.Debugf("Sending email to %s (attempt %d)", job.To, job.Tries)
	if err := s.sender.Deliver(job); err != nil {
		logger.Errorf("Failed to send email to %s: %v", job.To, err)

		if job.Tries < maxTries {
			s.pause(ctx)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.WithoutCancel(ctx), queueKey, string(data))
			logger.Infof("Retrying email to %s (attempt %d)", job.To, job.Tries+1)
		} else {
			metrics.RecordEmail(job.Type, "failed")
			s.saveFailed(ctx, job, err)
		}
		return
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Info("email sent", "type", job.Type, "to", job.To)
}

// pause waits retryDelay or until ctx is done.
func (s *Service) pause(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(s.retryDelay):
	}
}

func (s *Service) saveFailed(ctx context.Context, job Job, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  s.now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.WithoutCancel(ctx), failedQueueKey, string(data))
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

// QueueLength reports the pending jobs and updates the queue gauge. The worker
// calls it whenever a poll comes back empty.
func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	metrics.EmailQueueLength.Set(float64(length))
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (s *Service) SendBookingConfirmation(ctx context.Context, to, date, slotTime string, start time.Time) error {
	body := fmt.Sprintf(`Hi,

Your training session is booked.

Date: %s
Time: %s
Starts: %s

Payment is settled separately; the coach will mark it once received.

- %s`, date, slotTime, start.Format("Mon, Jan 2 2006 at 15:04 MST"), s.fromName)

	return s.enqueue(ctx, Job{Type: TypeConfirmation, To: to, Subject: "Booking confirmed - " + date + " " + slotTime, Body: body})
}

func (s *Service) SendReminder(ctx context.Context, to, date, slotTime string) error {
	body := fmt.Sprintf(`Hi,

This is a reminder about your training session tomorrow:

Date: %s
Time: %s

See you soon!

- %s`, date, slotTime, s.fromName)

	return s.enqueue(ctx, Job{Type: TypeReminder, To: to, Subject: "Reminder: training tomorrow at " + slotTime, Body: body})
}

func (s *Service) SendCancellation(ctx context.Context, to, date, slotTime string) error {
	body := fmt.Sprintf(`Hi,

Your training session has been cancelled:

Date: %s
Time: %s

The slot is free again if you want to book another time.

- %s`, date, slotTime, s.fromName)

	return s.enqueue(ctx, Job{Type: TypeCancellation, To: to, Subject: "Booking cancelled - " + date + " " + slotTime, Body: body})
}
