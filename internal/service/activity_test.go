package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/day-planner/backend/internal/domain"
	"github.com/day-planner/backend/internal/service"
)

func TestActivityService_ListByCity_OK(t *testing.T) {
	catalogue := goaCatalogue()
	svc := service.NewActivityService(
		&mockCityRepo{},
		&mockActivityRepo{
			listByCity: func(_ context.Context, id string) ([]domain.Activity, error) {
				assert.Equal(t, cityID, id)
				return catalogue, nil
			},
		},
	)

	got, err := svc.ListByCity(context.Background(), cityID)

	require.NoError(t, err)
	assert.Equal(t, catalogue, got)
}

func TestActivityService_ListByCity_CityNotFound(t *testing.T) {
	svc := service.NewActivityService(
		&mockCityRepo{
			getByID: func(_ context.Context, _ string) (domain.City, error) {
				return domain.City{}, domain.ErrNotFound
			},
		},
		&mockActivityRepo{},
	)

	_, err := svc.ListByCity(context.Background(), "nowhere")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityService_ListByCity_EmptyIsNonNil(t *testing.T) {
	svc := service.NewActivityService(
		&mockCityRepo{},
		&mockActivityRepo{
			listByCity: func(_ context.Context, _ string) ([]domain.Activity, error) {
				return nil, nil
			},
		},
	)

	got, err := svc.ListByCity(context.Background(), cityID)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
