package catalog

import (
	"context"
	"errors"

	"fitcoach/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound      = errors.New("catalog item not found")
	ErrAlreadyExists = errors.New("catalog item with this id already exists")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateGym(ctx context.Context, g Gym) error {
	query := `INSERT INTO gyms (id, name, address, details) VALUES (:id, :name, :address, :details)`
	return r.insert(ctx, query, g)
}

func (r *repository) ListGyms(ctx context.Context) ([]Gym, error) {
	gyms := []Gym{}
	err := r.db.SelectContext(ctx, &gyms, `SELECT id, name, address, details FROM gyms ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return gyms, nil
}

func (r *repository) DeleteGym(ctx context.Context, id string) error {
	return r.delete(ctx, `DELETE FROM gyms WHERE id = $1`, id)
}

func (r *repository) CreateProgram(ctx context.Context, p Program) error {
	query := `INSERT INTO programs (id, title, description) VALUES (:id, :title, :description)`
	return r.insert(ctx, query, p)
}

func (r *repository) ListPrograms(ctx context.Context) ([]Program, error) {
	programs := []Program{}
	err := r.db.SelectContext(ctx, &programs, `SELECT id, title, description FROM programs ORDER BY title`)
	if err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *repository) DeleteProgram(ctx context.Context, id string) error {
	return r.delete(ctx, `DELETE FROM programs WHERE id = $1`, id)
}

func (r *repository) CreateDonationOption(ctx context.Context, o DonationOption) error {
	query := `INSERT INTO donation_options (id, method, details) VALUES (:id, :method, :details)`
	return r.insert(ctx, query, o)
}

func (r *repository) ListDonationOptions(ctx context.Context) ([]DonationOption, error) {
	options := []DonationOption{}
	err := r.db.SelectContext(ctx, &options, `SELECT id, method, details FROM donation_options ORDER BY method`)
	if err != nil {
		return nil, err
	}
	return options, nil
}

func (r *repository) DeleteDonationOption(ctx context.Context, id string) error {
	return r.delete(ctx, `DELETE FROM donation_options WHERE id = $1`, id)
}

func (r *repository) insert(ctx context.Context, query string, arg interface{}) error {
	_, err := r.db.NamedExecContext(ctx, query, arg)
	if _, dup := db.UniqueConstraint(err); dup {
		return ErrAlreadyExists
	}
	return err
}

func (r *repository) delete(ctx context.Context, query, id string) error {
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
