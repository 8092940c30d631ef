package repositories

import (
	"context"

	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
)

type VehicleRepository struct {
	Storage *Storage
}

func (r VehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	return r.Storage.GetVehicles(ctx)
}

func (r VehicleRepository) Get(ctx context.Context, id string) (models.Vehicle, error) {
	v, err := r.Find(ctx, id)
	if err != nil {
		return models.Vehicle{}, err
	}
	if v == nil {
		return models.Vehicle{}, domain.NotFoundError{Resource: "vehicle"}
	}
	return *v, nil
}

// Find returns nil for unknown or dangling ids.
func (r VehicleRepository) Find(ctx context.Context, id string) (*models.Vehicle, error) {
	if id == "" {
		return nil, nil
	}
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return IndexVehicles(list).Lookup(id), nil
}

type VehicleIndex map[string]models.Vehicle

func IndexVehicles(list []models.Vehicle) VehicleIndex {
	idx := make(VehicleIndex, len(list))
	for _, v := range list {
		idx[v.ID] = v
	}
	return idx
}

func (idx VehicleIndex) Lookup(id string) *models.Vehicle {
	v, ok := idx[id]
	if !ok {
		return nil
	}
	return &v
}
