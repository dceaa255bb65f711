package workflow

import (
	"context"
	"errors"

	"fitcoach/internal/api"
	"fitcoach/internal/booking"
	"fitcoach/internal/catalog"
	"fitcoach/internal/logger"
	"fitcoach/internal/schedule"

	"github.com/google/uuid"
)

// Backend is the slice of the booking service the workflow needs.
type Backend interface {
	CreateBooking(ctx context.Context, req booking.CreateBookingRequest) (*booking.Booking, error)
	ListDonationOptions(ctx context.Context) ([]catalog.DonationOption, error)
}

type Controller struct {
	backend Backend
	newID   func() string
}

func NewController(backend Backend) *Controller {
	return &Controller{
		backend: backend,
		newID:   func() string { return "booking-" + uuid.NewString() },
	}
}

// rejections send the user back to slot selection.
var rejections = []error{
	booking.ErrSlotAlreadyBooked,
	booking.ErrSlotUnavailable,
	booking.ErrSlotInPast,
	booking.ErrDisclosureRequired,
	booking.ErrBookingExists,
	schedule.ErrInvalidDate,
	schedule.ErrInvalidTime,
}

func isRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}

// Submit performs the create-booking call from HealthDisclosure.
//
// On success the result is AwaitingPayment. When the ledger rejects the
// booking the result is SelectingGymAndSlot with the time cleared and a
// message set. An access failure keeps s at HealthDisclosure with a login
// prompt. Any other failure returns s unchanged. The remote call is not
// cancelled by ctx once started.
func (c *Controller) Submit(ctx context.Context, s State) (State, error) {
	if s.step != HealthDisclosure {
		return s, s.wrongStep("submit")
	}
	if !s.disclosure {
		return s, booking.ErrDisclosureRequired
	}

	submitting := s
	submitting.step = Submitting
	req := submitting.request(c.newID())

	created, err := c.backend.CreateBooking(context.WithoutCancel(ctx), req)
	if err != nil {
		if isRejection(err) {
			back := s
			back.step = SelectingGymAndSlot
			back.selection.Time = ""
			back.message = UserMessage(err)
			logger.Info("booking attempt rejected", "booking_id", req.ID, "date", req.Date, "time", req.Time, "error", err)
			return back, err
		}
		if errors.Is(err, api.ErrUnauthenticated) || errors.Is(err, api.ErrUnauthorized) {
			denied := s
			denied.message = UserMessage(err)
			logger.Info("booking attempt denied", "booking_id", req.ID, "error", err)
			return denied, err
		}
		logger.Warn("booking attempt failed", "booking_id", req.ID, "error", err)
		return s, err
	}

	options, err := c.backend.ListDonationOptions(ctx)
	if err != nil {
		logger.Warn("failed to load donation options", "error", err)
		options = nil
	}

	done := submitting
	done.step = AwaitingPayment
	done.bookingID = created.ID
	done.donationOptions = options
	done.message = ""
	return done, nil
}

// UserMessage turns a submission error into text for the booking screen.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, booking.ErrSlotAlreadyBooked):
		return "This time slot is already booked. Please select another time."
	case errors.Is(err, booking.ErrSlotUnavailable):
		return "This time slot is unavailable. Please select another time."
	case errors.Is(err, booking.ErrDisclosureRequired):
		return "You must accept the health disclosure to proceed."
	case errors.Is(err, booking.ErrSlotInPast):
		return "This time slot has already started. Please select another time."
	case errors.Is(err, schedule.ErrInvalidDate), errors.Is(err, schedule.ErrInvalidTime):
		return "Please select a valid date and time."
	case errors.Is(err, api.ErrUnauthenticated):
		return "Please login to book a session."
	case errors.Is(err, api.ErrUnauthorized):
		return "Your account is not allowed to book sessions."
	case errors.Is(err, ErrIncompleteSelection):
		return "Please fill in all fields."
	default:
		return "Failed to create booking."
	}
}
