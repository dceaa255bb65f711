package booking

import (
	"errors"
	"net/http"

	"fitcoach/internal/api"
	"fitcoach/internal/auth"
	"fitcoach/internal/logger"
	"fitcoach/internal/schedule"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking godoc
// @Summary      Book a time slot
// @Description  Reserves one (date, time) slot for the authenticated user. The health disclosure must be accepted.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Booking"
// @Success      201      {object}  Booking
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      429      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Err(api.CodeUnauthenticated, "User not authenticated"))
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.BindError(err))
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), Booking{
		ID:                       req.ID,
		User:                     principal.ID,
		UserEmail:                principal.Email,
		ProgramID:                req.ProgramID,
		GymID:                    req.GymID,
		Date:                     req.Date,
		Time:                     req.Time,
		HealthDisclosureAccepted: req.HealthDisclosureAccepted,
		HealthInformation:        req.HealthInformation,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListBookings godoc
// @Summary      List bookings
// @Description  Admins see every booking, users only their own.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        scope  query     string  false  "upcoming, past or all"  Enums(all, upcoming, past)
// @Success      200    {array}   Booking
// @Failure      400    {object}  api.ErrorResponse
// @Failure      401    {object}  api.ErrorResponse
// @Failure      500    {object}  api.ErrorResponse
// @Router       /bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Err(api.CodeUnauthenticated, "User not authenticated"))
		return
	}

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.BindError(err))
		return
	}

	filter := ListFilter{Scope: Scope(q.Scope)}
	if !principal.IsAdmin() {
		filter.User = principal.ID
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking godoc
// @Summary      Get a booking
// @Description  Owners and admins only. Someone else's booking reads as not found.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      string  true  "Booking ID"
// @Success      200        {object}  Booking
// @Failure      401        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Err(api.CodeUnauthenticated, "User not authenticated"))
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !principal.IsAdmin() && b.User != principal.ID {
		respondError(c, ErrBookingNotFound)
		return
	}

	c.JSON(http.StatusOK, b)
}

// DeleteBooking godoc
// @Summary      Delete booking
// @Description  Removes a booking regardless of payment state and frees its slot. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      string  true  "Booking ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      403        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /admin/bookings/{bookingID} [delete]
func (h *Handler) DeleteBooking(c *gin.Context) {
	if err := h.service.DeleteBooking(c.Request.Context(), c.Param("bookingID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking deleted"})
}

// MarkPaid godoc
// @Summary      Mark booking as paid
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      string  true  "Booking ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      403        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /admin/bookings/{bookingID}/paid [post]
func (h *Handler) MarkPaid(c *gin.Context) {
	if err := h.service.MarkPaid(c.Request.Context(), c.Param("bookingID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking marked as paid"})
}

// MarkUnpaid godoc
// @Summary      Mark booking as unpaid
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      string  true  "Booking ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      403        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /admin/bookings/{bookingID}/paid [delete]
func (h *Handler) MarkUnpaid(c *gin.Context) {
	if err := h.service.MarkUnpaid(c.Request.Context(), c.Param("bookingID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking marked as unpaid"})
}

func respondError(c *gin.Context, err error) {
	status, body := ErrorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("booking request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, body)
}

// ErrorStatus maps ledger errors to an HTTP status and wire body.
func ErrorStatus(err error) (int, api.ErrorResponse) {
	switch {
	case errors.Is(err, ErrSlotAlreadyBooked):
		return http.StatusConflict, api.Err(api.CodeSlotAlreadyBooked, "Time slot already booked")
	case errors.Is(err, ErrSlotUnavailable):
		return http.StatusConflict, api.Err(api.CodeSlotUnavailable, "Time slot is unavailable")
	case errors.Is(err, ErrBookingExists):
		return http.StatusConflict, api.Err(api.CodeBookingExists, "Booking with this id already exists")
	case errors.Is(err, ErrDisclosureRequired):
		return http.StatusBadRequest, api.Err(api.CodeDisclosureRequired, "Health disclosure must be accepted")
	case errors.Is(err, ErrSlotInPast):
		return http.StatusBadRequest, api.Err(api.CodeSlotInPast, "Cannot book a slot in the past")
	case errors.Is(err, schedule.ErrInvalidDate):
		return http.StatusBadRequest, api.Err(api.CodeInvalidDate, err.Error())
	case errors.Is(err, schedule.ErrInvalidTime):
		return http.StatusBadRequest, api.Err(api.CodeInvalidTime, err.Error())
	case errors.Is(err, ErrBookingNotFound):
		return http.StatusNotFound, api.Err(api.CodeNotFound, "Booking not found")
	default:
		return http.StatusInternalServerError, api.Err(api.CodeInternal, "Internal server error")
	}
}
