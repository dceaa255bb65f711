package integration_test

import (
	"context"
	"testing"

	"fitcoach/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Integration(t *testing.T) {
	database := setupTestDB(t)
	svc := catalog.NewService(catalog.NewRepository(database))
	ctx := context.Background()

	gym, err := svc.CreateGym(ctx, catalog.CreateGymRequest{ID: "downtown", Name: "Downtown Fitness", Address: "1 Main St"})
	require.NoError(t, err)
	assert.Equal(t, "downtown", gym.ID)

	_, err = svc.CreateGym(ctx, catalog.CreateGymRequest{ID: "downtown", Name: "Again"})
	assert.ErrorIs(t, err, catalog.ErrAlreadyExists)

	program, err := svc.CreateProgram(ctx, catalog.CreateProgramRequest{Title: "Strength 101"})
	require.NoError(t, err)
	assert.NotEmpty(t, program.ID)

	_, err = svc.CreateDonationOption(ctx, catalog.CreateDonationOptionRequest{ID: "paypal", Method: "PayPal", Details: "coach@example.com"})
	require.NoError(t, err)

	gyms, err := svc.ListGyms(ctx)
	require.NoError(t, err)
	assert.Len(t, gyms, 1)

	options, err := svc.ListDonationOptions(ctx)
	require.NoError(t, err)
	assert.Len(t, options, 1)

	require.NoError(t, svc.DeleteGym(ctx, "downtown"))
	assert.ErrorIs(t, svc.DeleteGym(ctx, "downtown"), catalog.ErrNotFound)
}
