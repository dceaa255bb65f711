package catalog

import (
	"context"
	"strings"

	"fitcoach/internal/logger"

	"github.com/google/uuid"
)

type Service interface {
	CreateGym(ctx context.Context, req CreateGymRequest) (*Gym, error)
	ListGyms(ctx context.Context) ([]Gym, error)
	DeleteGym(ctx context.Context, id string) error

	CreateProgram(ctx context.Context, req CreateProgramRequest) (*Program, error)
	ListPrograms(ctx context.Context) ([]Program, error)
	DeleteProgram(ctx context.Context, id string) error

	CreateDonationOption(ctx context.Context, req CreateDonationOptionRequest) (*DonationOption, error)
	ListDonationOptions(ctx context.Context) ([]DonationOption, error)
	DeleteDonationOption(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func newID(requested string) string {
	if id := strings.TrimSpace(requested); id != "" {
		return id
	}
	return uuid.NewString()
}

func (s *service) CreateGym(ctx context.Context, req CreateGymRequest) (*Gym, error) {
	g := Gym{ID: newID(req.ID), Name: req.Name, Address: req.Address, Details: req.Details}
	if err := s.repo.CreateGym(ctx, g); err != nil {
		return nil, err
	}
	logger.Info("gym created", "gym_id", g.ID)
	return &g, nil
}

func (s *service) ListGyms(ctx context.Context) ([]Gym, error) {
	return s.repo.ListGyms(ctx)
}

func (s *service) DeleteGym(ctx context.Context, id string) error {
	return s.repo.DeleteGym(ctx, id)
}

func (s *service) CreateProgram(ctx context.Context, req CreateProgramRequest) (*Program, error) {
	p := Program{ID: newID(req.ID), Title: req.Title, Description: req.Description}
	if err := s.repo.CreateProgram(ctx, p); err != nil {
		return nil, err
	}
	logger.Info("program created", "program_id", p.ID)
	return &p, nil
}

func (s *service) ListPrograms(ctx context.Context) ([]Program, error) {
	return s.repo.ListPrograms(ctx)
}

func (s *service) DeleteProgram(ctx context.Context, id string) error {
	return s.repo.DeleteProgram(ctx, id)
}

func (s *service) CreateDonationOption(ctx context.Context, req CreateDonationOptionRequest) (*DonationOption, error) {
	o := DonationOption{ID: newID(req.ID), Method: req.Method, Details: req.Details}
	if err := s.repo.CreateDonationOption(ctx, o); err != nil {
		return nil, err
	}
	logger.Info("donation option created", "option_id", o.ID)
	return &o, nil
}

func (s *service) ListDonationOptions(ctx context.Context) ([]DonationOption, error) {
	return s.repo.ListDonationOptions(ctx)
}

func (s *service) DeleteDonationOption(ctx context.Context, id string) error {
	return s.repo.DeleteDonationOption(ctx, id)
}
