package server

import (
	"context"
	"fmt"
	"net/http"

	"fitcoach/internal/api"
	"fitcoach/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Health godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
}

// mailQueue is the part of the email service the test route drives.
type mailQueue interface {
	Send(ctx context.Context, to, name, subject, body string) error
	QueueLength(ctx context.Context) int64
}

type testEmailQuery struct {
	Email string `form:"email" binding:"required,email"`
}

// TestEmail godoc
// @Summary      Queue a test email
// @Description  Pushes a fixed message through the notification queue and reports how many jobs are pending. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        email  query     string  true  "Recipient address"
// @Success      200    {object}  api.MessageResponse
// @Failure      400    {object}  api.ErrorResponse
// @Failure      403    {object}  api.ErrorResponse
// @Failure      500    {object}  api.ErrorResponse
// @Router       /admin/test-email [get]
func TestEmail(queue mailQueue) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q testEmailQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, api.BindError(err))
			return
		}

		ctx := c.Request.Context()
		err := queue.Send(ctx, q.Email, "", "FitCoach test email",
			"Booking confirmations and reminders will arrive at this address.")
		if err != nil {
			logger.Error("test email not queued", "to", q.Email, "error", err)
			c.JSON(http.StatusInternalServerError, api.Err(api.CodeInternal, "Failed to queue email"))
			return
		}

		pending := queue.QueueLength(ctx)
		c.JSON(http.StatusOK, api.MessageResponse{Message: fmt.Sprintf("Email queued (%d pending)", pending)})
	}
}

// Metrics serves the default prometheus registry.
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
