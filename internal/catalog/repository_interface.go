package catalog

import "context"

type Repository interface {
	CreateGym(ctx context.Context, g Gym) error
	ListGyms(ctx context.Context) ([]Gym, error)
	DeleteGym(ctx context.Context, id string) error

	CreateProgram(ctx context.Context, p Program) error
	ListPrograms(ctx context.Context) ([]Program, error)
	DeleteProgram(ctx context.Context, id string) error

	CreateDonationOption(ctx context.Context, o DonationOption) error
	ListDonationOptions(ctx context.Context) ([]DonationOption, error)
	DeleteDonationOption(ctx context.Context, id string) error
}
