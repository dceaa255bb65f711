package api

// Stable machine-readable error codes carried in ErrorResponse.Code.
const (
	CodeSlotAlreadyBooked  = "slot_already_booked"
	CodeSlotUnavailable    = "slot_unavailable"
	CodeDisclosureRequired = "disclosure_required"
	CodeNotFound           = "not_found"
	CodeBookingExists      = "booking_exists"
	CodeSlotInPast         = "slot_in_past"
	CodeInvalidDate        = "invalid_date"
	CodeInvalidTime        = "invalid_time"
	CodeUnauthenticated    = "unauthenticated"
	CodeUnauthorized       = "unauthorized"
	CodeAlreadyExists      = "already_exists"
	CodeValidationFailed   = "validation_failed"
	CodeRateLimited        = "rate_limited"
	CodeInternal           = "internal"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
	Code  string `json:"code,omitempty" example:"internal"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

func Err(code, msg string) ErrorResponse {
	return ErrorResponse{Error: msg, Code: code}
}
