package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fitcoach/internal/db"

	"github.com/jmoiron/sqlx"
)

const (
	constraintPrimaryKey = "bookings_pkey"

	bookingColumns = `id, user_id, user_email, program_id, gym_id, slot_date, slot_time,
		is_paid, health_disclosure_accepted, health_information, created_at`
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	booked, err := db.Exists(ctx, tx, `
		SELECT EXISTS(
			SELECT 1 FROM bookings WHERE slot_date = $1 AND slot_time = $2
		)
	`, b.Date, b.Time)
	if err != nil {
		return fmt.Errorf("check slot: %w", err)
	}
	if booked {
		return ErrSlotAlreadyBooked
	}

	blocked, err := db.Exists(ctx, tx, `
		SELECT EXISTS(
			SELECT 1 FROM blackouts WHERE slot_date = $1 AND slot_time = $2
		)
	`, b.Date, b.Time)
	if err != nil {
		return fmt.Errorf("check blackout: %w", err)
	}
	if blocked {
		return ErrSlotUnavailable
	}

	query := `
		INSERT INTO bookings (id, user_id, user_email, program_id, gym_id, slot_date, slot_time,
			is_paid, health_disclosure_accepted, health_information)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`
	err = tx.QueryRowxContext(ctx, query,
		b.ID, b.User, b.UserEmail, b.ProgramID, b.GymID, b.Date, b.Time,
		b.IsPaid, b.HealthDisclosureAccepted, b.HealthInformation,
	).Scan(&b.CreatedAt)
	if err != nil {
		// A concurrent insert for the same key lost the race after our checks.
		if constraint, ok := db.UniqueConstraint(err); ok {
			if constraint == constraintPrimaryKey {
				return ErrBookingExists
			}
			return ErrSlotAlreadyBooked
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit booking: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Delete(ctx context.Context, id string) (*Booking, error) {
	query := `DELETE FROM bookings WHERE id = $1 RETURNING ` + bookingColumns

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) SetPaid(ctx context.Context, id string, paid bool) error {
	query := `UPDATE bookings SET is_paid = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, paid)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY slot_date, slot_time`
	return r.selectBookings(ctx, query)
}

func (r *repository) ListByUser(ctx context.Context, user string) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY slot_date, slot_time`
	return r.selectBookings(ctx, query, user)
}

func (r *repository) ListByDate(ctx context.Context, date string) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE slot_date = $1 ORDER BY slot_time`
	return r.selectBookings(ctx, query, date)
}

func (r *repository) selectBookings(ctx context.Context, query string, args ...interface{}) ([]Booking, error) {
	bookings := []Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}
