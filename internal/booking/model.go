package booking

import "time"

// Booking reserves one (date, time) slot. The ID is chosen by the caller.
type Booking struct {
	ID                       string    `db:"id" json:"id" example:"booking-1718000000000"`
	User                     string    `db:"user_id" json:"user" example:"3f1c2b9e-6a4d-4f0e-9b7a-1d2c3e4f5a6b"`
	UserEmail                string    `db:"user_email" json:"userEmail,omitempty" example:"jane@example.com"`
	ProgramID                string    `db:"program_id" json:"programId" example:"strength-101"`
	GymID                    string    `db:"gym_id" json:"gymId" example:"downtown"`
	Date                     string    `db:"slot_date" json:"date" example:"2025-06-01"`
	Time                     string    `db:"slot_time" json:"time" example:"10:00"`
	IsPaid                   bool      `db:"is_paid" json:"isPaid"`
	HealthDisclosureAccepted bool      `db:"health_disclosure_accepted" json:"healthDisclosureAccepted"`
	HealthInformation        string    `db:"health_information" json:"healthInformation"`
	CreatedAt                time.Time `db:"created_at" json:"createdAt"`
}

// CreateBookingRequest is the body of POST /bookings. The booking's user is
// always taken from the access token.
type CreateBookingRequest struct {
	ID                       string `json:"id" binding:"required,max=64" example:"booking-1718000000000"`
	ProgramID                string `json:"programId" binding:"required,max=64" example:"strength-101"`
	GymID                    string `json:"gymId" binding:"required,max=64" example:"downtown"`
	Date                     string `json:"date" example:"2025-06-01"`
	Time                     string `json:"time" example:"10:00"`
	HealthDisclosureAccepted bool   `json:"healthDisclosureAccepted" example:"true"`
	HealthInformation        string `json:"healthInformation" binding:"max=4000" example:"Old knee injury"`
}

// Scope filters booking lists by slot start relative to now.
type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeUpcoming Scope = "upcoming"
	ScopePast     Scope = "past"
)

type ListFilter struct {
	// User restricts the list to one principal. Empty means everyone.
	User  string
	Scope Scope
}

type ListQuery struct {
	Scope string `form:"scope" binding:"omitempty,oneof=all upcoming past"`
}
