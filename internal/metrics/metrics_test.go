package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/slots", "200", 0.1)
	RecordHTTPRequest("GET", "/slots", "200", 0.2)
	RecordHTTPRequest("GET", "/slots", "400", 0.05)

	assert.Equal(t, float64(2), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/slots", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/slots", "400")))
	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestDuration))
}

func TestRecordBookingAttempt(t *testing.T) {
	BookingAttemptsTotal.Reset()

	RecordBookingAttempt("created")
	RecordBookingAttempt("slot_already_booked")
	RecordBookingAttempt("slot_already_booked")

	assert.Equal(t, float64(1), testutil.ToFloat64(BookingAttemptsTotal.WithLabelValues("created")))
	assert.Equal(t, float64(2), testutil.ToFloat64(BookingAttemptsTotal.WithLabelValues("slot_already_booked")))
}

func TestRecordBookingDeletion(t *testing.T) {
	before := testutil.ToFloat64(BookingDeletionsTotal)

	RecordBookingDeletion()

	assert.Equal(t, before+1, testutil.ToFloat64(BookingDeletionsTotal))
}

func TestRecordPaymentStatus(t *testing.T) {
	PaymentStatusChangesTotal.Reset()

	RecordPaymentStatus(true)
	RecordPaymentStatus(true)
	RecordPaymentStatus(false)

	assert.Equal(t, float64(2), testutil.ToFloat64(PaymentStatusChangesTotal.WithLabelValues("true")))
	assert.Equal(t, float64(1), testutil.ToFloat64(PaymentStatusChangesTotal.WithLabelValues("false")))
}

func TestRecordBlackout(t *testing.T) {
	BlackoutChangesTotal.Reset()

	RecordBlackout("mark")
	RecordBlackout("unmark")

	assert.Equal(t, float64(1), testutil.ToFloat64(BlackoutChangesTotal.WithLabelValues("mark")))
	assert.Equal(t, float64(1), testutil.ToFloat64(BlackoutChangesTotal.WithLabelValues("unmark")))
}

func TestRecordCache(t *testing.T) {
	AvailabilityCacheTotal.Reset()

	RecordCache(true)
	RecordCache(false)
	RecordCache(false)

	assert.Equal(t, float64(1), testutil.ToFloat64(AvailabilityCacheTotal.WithLabelValues("hit")))
	assert.Equal(t, float64(2), testutil.ToFloat64(AvailabilityCacheTotal.WithLabelValues("miss")))
}

func TestRecordEmailAndReminder(t *testing.T) {
	EmailsSentTotal.Reset()
	before := testutil.ToFloat64(RemindersQueuedTotal)

	RecordEmail("confirmation", "queued")
	RecordReminder()

	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsSentTotal.WithLabelValues("confirmation", "queued")))
	assert.Equal(t, before+1, testutil.ToFloat64(RemindersQueuedTotal))
}
