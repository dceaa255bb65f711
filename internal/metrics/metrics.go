package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcoach_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitcoach_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// BookingAttemptsTotal counts createBooking outcomes: created,
	// slot_already_booked, slot_unavailable, disclosure_required, ...
	BookingAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcoach_booking_attempts_total",
			Help: "Total number of booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	BookingDeletionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitcoach_booking_deletions_total",
			Help: "Total number of deleted bookings",
		},
	)

	PaymentStatusChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcoach_payment_status_changes_total",
			Help: "Total number of paid/unpaid toggles",
		},
		[]string{"paid"},
	)

	BlackoutChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcoach_blackout_changes_total",
			Help: "Total number of blackout mark/unmark operations",
		},
		[]string{"action"},
	)

	AvailabilityCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcoach_availability_cache_total",
			Help: "Availability cache lookups by result",
		},
		[]string{"result"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcoach_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitcoach_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	RemindersQueuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitcoach_reminders_queued_total",
			Help: "Total number of booking reminders queued",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBookingAttempt(outcome string) {
	BookingAttemptsTotal.WithLabelValues(outcome).Inc()
}

func RecordBookingDeletion() {
	BookingDeletionsTotal.Inc()
}

func RecordPaymentStatus(paid bool) {
	label := "false"
	if paid {
		label = "true"
	}
	PaymentStatusChangesTotal.WithLabelValues(label).Inc()
}

func RecordBlackout(action string) {
	BlackoutChangesTotal.WithLabelValues(action).Inc()
}

func RecordCache(hit bool) {
	if hit {
		AvailabilityCacheTotal.WithLabelValues("hit").Inc()
		return
	}
	AvailabilityCacheTotal.WithLabelValues("miss").Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordReminder() {
	RemindersQueuedTotal.Inc()
}
