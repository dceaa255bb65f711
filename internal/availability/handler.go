package availability

import (
	"errors"
	"net/http"

	"fitcoach/internal/api"
	"fitcoach/internal/logger"
	"fitcoach/internal/schedule"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	resolver Resolver
}

func NewHandler(resolver Resolver) *Handler {
	return &Handler{resolver: resolver}
}

type SlotsQuery struct {
	Date string `form:"date" binding:"required,isodate"`
}

// GetAvailableTimeSlots godoc
// @Summary      Slots for a day
// @Description  Returns the 14 hourly slots 08:00..21:00 with booked and unavailable flags.
// @Tags         slots
// @Produce      json
// @Param        date  query     string  true  "Day (yyyy-MM-dd)"
// @Success      200   {array}   TimeSlot
// @Failure      400   {object}  api.ErrorResponse
// @Failure      500   {object}  api.ErrorResponse
// @Router       /slots [get]
func (h *Handler) GetAvailableTimeSlots(c *gin.Context) {
	var q SlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.BindError(err))
		return
	}

	slots, err := h.resolver.GetAvailableTimeSlots(c.Request.Context(), q.Date)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, api.Err(api.CodeInvalidDate, err.Error()))
			return
		}
		logger.Error("failed to resolve slots", "date", q.Date, "error", err)
		c.JSON(http.StatusInternalServerError, api.Err(api.CodeInternal, "Failed to fetch time slots"))
		return
	}

	c.JSON(http.StatusOK, slots)
}
