// Package workflow drives a single booking attempt from program selection to
// payment choice. State is an immutable value: every transition returns a new
// State and leaves the receiver untouched. Only Controller.Submit talks to the
// booking service.
package workflow

import (
	"errors"
	"fmt"
	"strings"

	"fitcoach/internal/api"
	"fitcoach/internal/booking"
	"fitcoach/internal/catalog"
)

type Step int

const (
	SelectingProgram Step = iota
	SelectingGymAndSlot
	HealthDisclosure
	Submitting
	AwaitingPayment
	Completed
)

func (s Step) String() string {
	switch s {
	case SelectingProgram:
		return "SelectingProgram"
	case SelectingGymAndSlot:
		return "SelectingGymAndSlot"
	case HealthDisclosure:
		return "HealthDisclosure"
	case Submitting:
		return "Submitting"
	case AwaitingPayment:
		return "AwaitingPayment"
	case Completed:
		return "Completed"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

var (
	ErrWrongStep            = errors.New("transition not allowed in current step")
	ErrEmptySelection       = errors.New("selection must not be empty")
	ErrIncompleteSelection  = errors.New("program, gym, date and time must all be selected")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

// Selection is what the user picked before the disclosure step.
type Selection struct {
	ProgramID string `validate:"required"`
	GymID     string `validate:"required"`
	Date      string `validate:"required,isodate"`
	Time      string `validate:"required,slottime"`
}

// SelectionError lists the fields that block leaving slot selection.
type SelectionError struct {
	Fields []api.ValidationError
}

func (e *SelectionError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return ErrIncompleteSelection.Error() + " (" + strings.Join(names, ", ") + ")"
}

func (e *SelectionError) Unwrap() error { return ErrIncompleteSelection }

type State struct {
	step              Step
	selection         Selection
	disclosure        bool
	healthInformation string
	bookingID         string
	donationOptions   []catalog.DonationOption
	paymentMethod     string
	message           string
}

func New() State {
	return State{step: SelectingProgram}
}

func (s State) Step() Step                { return s.step }
func (s State) Selection() Selection      { return s.selection }
func (s State) DisclosureAccepted() bool  { return s.disclosure }
func (s State) HealthInformation() string { return s.healthInformation }
func (s State) BookingID() string         { return s.bookingID }
func (s State) PaymentMethod() string     { return s.paymentMethod }

// Message is the user-facing text of the last failed submission, if any.
func (s State) Message() string { return s.message }

func (s State) DonationOptions() []catalog.DonationOption {
	out := make([]catalog.DonationOption, len(s.donationOptions))
	copy(out, s.donationOptions)
	return out
}

func (s State) wrongStep(op string) error {
	return fmt.Errorf("%s in %s: %w", op, s.step, ErrWrongStep)
}

// SelectProgram may also be used from slot selection to change the program.
func (s State) SelectProgram(id string) (State, error) {
	if s.step != SelectingProgram && s.step != SelectingGymAndSlot {
		return s, s.wrongStep("select program")
	}
	if strings.TrimSpace(id) == "" {
		return s, ErrEmptySelection
	}
	next := s
	next.selection.ProgramID = id
	next.step = SelectingGymAndSlot
	next.message = ""
	return next, nil
}

func (s State) SelectGym(id string) (State, error) {
	if s.step != SelectingGymAndSlot {
		return s, s.wrongStep("select gym")
	}
	if strings.TrimSpace(id) == "" {
		return s, ErrEmptySelection
	}
	next := s
	next.selection.GymID = id
	return next, nil
}

// SelectDate clears the chosen time, since slot flags differ per day.
func (s State) SelectDate(date string) (State, error) {
	if s.step != SelectingGymAndSlot {
		return s, s.wrongStep("select date")
	}
	if strings.TrimSpace(date) == "" {
		return s, ErrEmptySelection
	}
	next := s
	next.selection.Date = date
	next.selection.Time = ""
	return next, nil
}

func (s State) SelectTime(label string) (State, error) {
	if s.step != SelectingGymAndSlot {
		return s, s.wrongStep("select time")
	}
	if strings.TrimSpace(label) == "" {
		return s, ErrEmptySelection
	}
	next := s
	next.selection.Time = label
	return next, nil
}

// ContinueToDisclosure checks only that the selection is complete and well
// formed. Availability is checked by the ledger at submission.
func (s State) ContinueToDisclosure() (State, error) {
	if s.step != SelectingGymAndSlot {
		return s, s.wrongStep("continue")
	}
	if fields := api.ValidateStruct(s.selection); len(fields) > 0 {
		return s, &SelectionError{Fields: fields}
	}
	next := s
	next.step = HealthDisclosure
	next.message = ""
	return next, nil
}

func (s State) AcceptDisclosure(accepted bool) (State, error) {
	if s.step != HealthDisclosure {
		return s, s.wrongStep("accept disclosure")
	}
	next := s
	next.disclosure = accepted
	return next, nil
}

func (s State) SetHealthInformation(text string) (State, error) {
	if s.step != HealthDisclosure {
		return s, s.wrongStep("set health information")
	}
	next := s
	next.healthInformation = text
	return next, nil
}

func (s State) Back() (State, error) {
	next := s
	switch s.step {
	case SelectingGymAndSlot:
		next.step = SelectingProgram
	case HealthDisclosure:
		next.step = SelectingGymAndSlot
	default:
		return s, s.wrongStep("back")
	}
	return next, nil
}

// Abandon discards the attempt. Nothing has been written before Submitting.
func (s State) Abandon() (State, error) {
	switch s.step {
	case SelectingProgram, SelectingGymAndSlot, HealthDisclosure:
		return New(), nil
	default:
		return s, s.wrongStep("abandon")
	}
}

// ChoosePaymentMethod completes the workflow. An empty id completes without
// picking a method; payment itself happens outside the ledger.
func (s State) ChoosePaymentMethod(optionID string) (State, error) {
	if s.step != AwaitingPayment {
		return s, s.wrongStep("choose payment method")
	}
	if optionID != "" && !s.hasOption(optionID) {
		return s, ErrUnknownPaymentMethod
	}
	next := s
	next.paymentMethod = optionID
	next.step = Completed
	return next, nil
}

func (s State) hasOption(id string) bool {
	for _, o := range s.donationOptions {
		if o.ID == id {
			return true
		}
	}
	return false
}

func (s State) request(id string) booking.CreateBookingRequest {
	return booking.CreateBookingRequest{
		ID:                       id,
		ProgramID:                s.selection.ProgramID,
		GymID:                    s.selection.GymID,
		Date:                     s.selection.Date,
		Time:                     s.selection.Time,
		HealthDisclosureAccepted: s.disclosure,
		HealthInformation:        s.healthInformation,
	}
}
