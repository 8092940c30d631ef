package services

import (
	"context"
	"strings"

	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
	"travelgo/internal/repositories"
	"travelgo/internal/utils"
)

type VehicleService struct {
	Storage   *repositories.Storage
	RequestID string
}

type VehicleInput struct {
	PlateNumber string `json:"plateNumber"`
	Capacity    int    `json:"capacity"`
	DriverName  string `json:"driverName"`
	Type        string `json:"type"`
}

func (in VehicleInput) normalize() (VehicleInput, error) {
	in.PlateNumber = strings.ToUpper(utils.NormalizeSpace(in.PlateNumber))
	in.DriverName = strings.TrimSpace(in.DriverName)
	in.Type = strings.TrimSpace(in.Type)
	if err := firstErr(
		required("plateNumber", in.PlateNumber),
		required("driverName", in.DriverName),
		required("type", in.Type),
	); err != nil {
		return in, err
	}
	if in.Capacity <= 0 {
		return in, domain.ValidationError{Field: "capacity", Msg: "harus lebih dari 0"}
	}
	return in, nil
}

func (s VehicleService) repo() repositories.VehicleRepository {
	return repositories.VehicleRepository{Storage: s.Storage}
}

func (s VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	if err := requireStorage(s.Storage); err != nil {
		return nil, err
	}
	return s.repo().List(ctx)
}

func (s VehicleService) Get(ctx context.Context, id string) (models.Vehicle, error) {
	if err := requireStorage(s.Storage); err != nil {
		return models.Vehicle{}, err
	}
	return s.repo().Get(ctx, id)
}

func (s VehicleService) Create(ctx context.Context, in VehicleInput) (models.Vehicle, error) {
	if err := requireStorage(s.Storage); err != nil {
		return models.Vehicle{}, err
	}
	in, err := in.normalize()
	if err != nil {
		return models.Vehicle{}, err
	}
	v := models.Vehicle{
		ID:          utils.NewID(),
		PlateNumber: in.PlateNumber,
		Capacity:    in.Capacity,
		DriverName:  in.DriverName,
		Type:        in.Type,
	}
	err = s.Storage.Atomically(func() error {
		list, err := s.repo().List(ctx)
		if err != nil {
			return err
		}
		return s.Storage.SetVehicles(ctx, append(list, v))
	})
	if err != nil {
		return models.Vehicle{}, err
	}
	utils.LogEvent(s.RequestID, "vehicle", "create", "vehicle_id="+v.ID+" plate="+v.PlateNumber)
	return v, nil
}

// Update replaces the vehicle fields. Schedules already using the vehicle keep
// their seat counts.
func (s VehicleService) Update(ctx context.Context, id string, in VehicleInput) (models.Vehicle, error) {
	if err := requireStorage(s.Storage); err != nil {
		return models.Vehicle{}, err
	}
	in, err := in.normalize()
	if err != nil {
		return models.Vehicle{}, err
	}
	var out models.Vehicle
	err = s.Storage.Atomically(func() error {
		list, err := s.repo().List(ctx)
		if err != nil {
			return err
		}
		for i := range list {
			if list[i].ID != id {
				continue
			}
			list[i].PlateNumber = in.PlateNumber
			list[i].Capacity = in.Capacity
			list[i].DriverName = in.DriverName
			list[i].Type = in.Type
			out = list[i]
			return s.Storage.SetVehicles(ctx, list)
		}
		return domain.NotFoundError{Resource: "vehicle"}
	})
	if err != nil {
		return models.Vehicle{}, err
	}
	utils.LogEvent(s.RequestID, "vehicle", "update", "vehicle_id="+id)
	return out, nil
}

// Delete removes the vehicle only; schedules pointing at it keep the dangling id.
func (s VehicleService) Delete(ctx context.Context, id string) error {
	if err := requireStorage(s.Storage); err != nil {
		return err
	}
	err := s.Storage.Atomically(func() error {
		list, err := s.repo().List(ctx)
		if err != nil {
			return err
		}
		for i := range list {
			if list[i].ID == id {
				return s.Storage.SetVehicles(ctx, append(list[:i:i], list[i+1:]...))
			}
		}
		return domain.NotFoundError{Resource: "vehicle"}
	})
	if err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "vehicle", "delete", "vehicle_id="+id)
	return nil
}
