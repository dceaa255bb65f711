package blackout

import (
	"errors"
	"net/http"

	"fitcoach/internal/api"
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

// MarkUnavailable godoc
// @Summary      Black out a slot
// @Description  Marks (date, time) unavailable for new bookings. Idempotent. Existing bookings are kept.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        date  path      string  true  "Day (yyyy-MM-dd)"
// @Param        time  path      string  true  "Slot label (HH:MM)"
// @Success      200   {object}  api.MessageResponse
// @Failure      400   {object}  api.ErrorResponse
// @Failure      403   {object}  api.ErrorResponse
// @Router       /admin/availability/{date}/{time} [put]
func (h *Handler) MarkUnavailable(c *gin.Context) {
	var p SlotParams
	if err := c.ShouldBindUri(&p); err != nil {
		c.JSON(http.StatusBadRequest, api.BindError(err))
		return
	}

	if err := h.service.MarkUnavailable(c.Request.Context(), p.Date, p.Time); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Time slot marked unavailable"})
}

// UnmarkUnavailable godoc
// @Summary      Remove a blackout
// @Description  Makes (date, time) bookable again. Idempotent.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        date  path      string  true  "Day (yyyy-MM-dd)"
// @Param        time  path      string  true  "Slot label (HH:MM)"
// @Success      200   {object}  api.MessageResponse
// @Failure      400   {object}  api.ErrorResponse
// @Failure      403   {object}  api.ErrorResponse
// @Router       /admin/availability/{date}/{time} [delete]
func (h *Handler) UnmarkUnavailable(c *gin.Context) {
	var p SlotParams
	if err := c.ShouldBindUri(&p); err != nil {
		c.JSON(http.StatusBadRequest, api.BindError(err))
		return
	}

	if err := h.service.UnmarkUnavailable(c.Request.Context(), p.Date, p.Time); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Time slot available again"})
}

// ListBlackouts godoc
// @Summary      List blackouts for a day
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        date  query     string  true  "Day (yyyy-MM-dd)"
// @Success      200   {array}   Entry
// @Failure      400   {object}  api.ErrorResponse
// @Failure      403   {object}  api.ErrorResponse
// @Router       /admin/blackouts [get]
func (h *Handler) ListBlackouts(c *gin.Context) {
	var q DateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.BindError(err))
		return
	}

	entries, err := h.service.ListByDate(c.Request.Context(), q.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, api.Err(api.CodeInvalidDate, err.Error()))
	case errors.Is(err, schedule.ErrInvalidTime):
		c.JSON(http.StatusBadRequest, api.Err(api.CodeInvalidTime, err.Error()))
	default:
		logger.Error("blackout request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, api.Err(api.CodeInternal, "Internal server error"))
	}
}
