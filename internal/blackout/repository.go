package blackout

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Mark(ctx context.Context, date, slotTime string) (bool, error) {
	query := `
		INSERT INTO blackouts (slot_date, slot_time)
		VALUES ($1, $2)
		ON CONFLICT (slot_date, slot_time) DO NOTHING
	`
	return r.exec(ctx, query, date, slotTime)
}

func (r *repository) Unmark(ctx context.Context, date, slotTime string) (bool, error) {
	query := `DELETE FROM blackouts WHERE slot_date = $1 AND slot_time = $2`
	return r.exec(ctx, query, date, slotTime)
}

func (r *repository) exec(ctx context.Context, query string, args ...interface{}) (bool, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *repository) ListByDate(ctx context.Context, date string) ([]Entry, error) {
	query := `
		SELECT slot_date, slot_time, created_at
		FROM blackouts
		WHERE slot_date = $1
		ORDER BY slot_time
	`

	entries := []Entry{}
	if err := r.db.SelectContext(ctx, &entries, query, date); err != nil {
		return nil, err
	}
	return entries, nil
}
