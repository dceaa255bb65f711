package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "fitcoach/docs"
	"fitcoach/internal/api"
	"fitcoach/internal/auth"
	"fitcoach/internal/availability"
	"fitcoach/internal/blackout"
	"fitcoach/internal/booking"
	"fitcoach/internal/catalog"
	"fitcoach/internal/config"
	"fitcoach/internal/email"
	"fitcoach/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps are the services the router dispatches to. Email is optional.
type Deps struct {
	Bookings     booking.Service
	Blackouts    blackout.Service
	Availability availability.Resolver
	Catalog      catalog.Service
	Email        *email.Service
}

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

func New(cfg *config.Config, deps Deps) *Server {
	api.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	bookingHandler := booking.NewHandler(deps.Bookings)
	blackoutHandler := blackout.NewHandler(deps.Blackouts)
	slotsHandler := availability.NewHandler(deps.Availability)
	catalogHandler := catalog.NewHandler(deps.Catalog)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/slots", slotsHandler.GetAvailableTimeSlots)
	router.GET("/gyms", catalogHandler.ListGyms)
	router.GET("/programs", catalogHandler.ListPrograms)
	router.GET("/donation-options", catalogHandler.ListDonationOptions)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.POST("/bookings", RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst), bookingHandler.CreateBooking)
		protected.GET("/bookings", bookingHandler.ListBookings)
		protected.GET("/bookings/:bookingID", bookingHandler.GetBooking)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.DELETE("/bookings/:bookingID", bookingHandler.DeleteBooking)
		admin.POST("/bookings/:bookingID/paid", bookingHandler.MarkPaid)
		admin.DELETE("/bookings/:bookingID/paid", bookingHandler.MarkUnpaid)

		admin.PUT("/availability/:date/:time", blackoutHandler.MarkUnavailable)
		admin.DELETE("/availability/:date/:time", blackoutHandler.UnmarkUnavailable)
		admin.GET("/blackouts", blackoutHandler.ListBlackouts)

		admin.POST("/gyms", catalogHandler.CreateGym)
		admin.DELETE("/gyms/:id", catalogHandler.DeleteGym)
		admin.POST("/programs", catalogHandler.CreateProgram)
		admin.DELETE("/programs/:id", catalogHandler.DeleteProgram)
		admin.POST("/donation-options", catalogHandler.CreateDonationOption)
		admin.DELETE("/donation-options/:id", catalogHandler.DeleteDonationOption)

		if deps.Email != nil {
			admin.GET("/test-email", TestEmail(deps.Email))
		}
	}

	return &Server{
		router: router,
		config: cfg,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks until the server stops. A graceful Shutdown is not an error.
func (s *Server) Start() error {
	logger.Info("HTTP server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
