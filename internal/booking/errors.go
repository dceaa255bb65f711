package booking

import "errors"

var (
	ErrSlotAlreadyBooked  = errors.New("time slot already booked")
	ErrSlotUnavailable    = errors.New("time slot is unavailable")
	ErrDisclosureRequired = errors.New("health disclosure must be accepted")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingExists      = errors.New("booking with this id already exists")
	ErrSlotInPast         = errors.New("cannot book a slot in the past")
)
