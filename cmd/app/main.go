package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitcoach/internal/availability"
	"fitcoach/internal/blackout"
	"fitcoach/internal/booking"
	"fitcoach/internal/catalog"
	"fitcoach/internal/config"
	"fitcoach/internal/db"
	"fitcoach/internal/email"
	"fitcoach/internal/events"
	"fitcoach/internal/logger"
	"fitcoach/internal/memstore"
	"fitcoach/internal/reminder"
	"fitcoach/internal/server"

	"github.com/jmoiron/sqlx"
)

type storage struct {
	bookings  booking.Repository
	blackouts blackout.Repository
	catalog   catalog.Repository
	close     func()
}

func openStorage(cfg *config.Config) storage {
	if cfg.UsesMemoryStorage() {
		logger.Warn("Using in-memory storage; data is lost on restart")
		store := memstore.New()
		return storage{
			bookings:  store.Bookings(),
			blackouts: store.Blackouts(),
			catalog:   catalog.NewMemoryRepository(),
			close:     func() {},
		}
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	return storage{
		bookings:  booking.NewRepository(database),
		blackouts: blackout.NewRepository(database),
		catalog:   catalog.NewRepository(database),
		close:     func() { closeDB(database) },
	}
}

func closeDB(database *sqlx.DB) {
	if err := database.Close(); err != nil {
		logger.Errorf("Error closing database: %v", err)
	}
}

// @title FitCoach Booking API
// @version 1.0
// @description Time-slot booking and availability for a fitness-coaching platform.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Info("Starting FitCoach booking service", "storage", cfg.StorageDriver, "timezone", cfg.Location.String())

	store := openStorage(cfg)
	defer store.close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var cache *availability.Cache
	if cfg.Cache.Enabled {
		cache, err = availability.NewCache(cfg.Cache.Size)
		if err != nil {
			logger.Fatalf("Failed to create availability cache: %v", err)
		}
		logger.Info("Availability cache enabled", "size", cfg.Cache.Size)
	}

	var publisher *events.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = events.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		logger.Info("Event publisher connected", "exchange", cfg.RabbitMQ.Exchange)
	}

	bookingOpts := []booking.Option{
		booking.WithPublisher(publisher),
		booking.WithInvalidator(cache),
	}

	var emailService *email.Service
	if cfg.Email.Enabled {
		emailService = email.New(email.Options{
			From:           cfg.Email.From,
			FromName:       cfg.Email.FromName,
			SMTPHost:       cfg.Email.SMTPHost,
			SMTPPort:       cfg.Email.SMTPPort,
			SMTPUser:       cfg.Email.SMTPUser,
			SMTPPass:       cfg.Email.SMTPPass,
			SendGridAPIKey: cfg.Email.SendGridAPIKey,
			RedisAddr:      cfg.Email.RedisAddr,
		})
		defer emailService.Close()
		go emailService.Start(ctx)
		bookingOpts = append(bookingOpts, booking.WithNotifier(emailService))
		logger.Info("Email service initialized")

		if cfg.Reminder.Enabled {
			job := reminder.NewJob(store.bookings, emailService, cfg.Location)
			scheduler, err := reminder.Schedule(cfg.Reminder.Cron, job)
			if err != nil {
				logger.Fatalf("Failed to schedule reminders: %v", err)
			}
			scheduler.Start()
			defer scheduler.Stop()
			logger.Info("Reminder job scheduled", "cron", cfg.Reminder.Cron)
		}
	}

	srv := server.New(cfg, server.Deps{
		Bookings:     booking.NewService(store.bookings, cfg.Location, bookingOpts...),
		Blackouts:    blackout.NewService(store.blackouts, publisher, cache),
		Availability: availability.NewResolver(store.bookings, store.blackouts, cache),
		Catalog:      catalog.NewService(store.catalog),
		Email:        emailService,
	})

	serverErrChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
