package repositories

import (
	"context"

	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
)

type ScheduleRepository struct {
	Storage *Storage
}

func (r ScheduleRepository) List(ctx context.Context) ([]models.Schedule, error) {
	return r.Storage.GetSchedules(ctx)
}

func (r ScheduleRepository) Get(ctx context.Context, id string) (models.Schedule, error) {
	s, err := r.Find(ctx, id)
	if err != nil {
		return models.Schedule{}, err
	}
	if s == nil {
		return models.Schedule{}, domain.NotFoundError{Resource: "schedule"}
	}
	return *s, nil
}

// Find returns nil for unknown or dangling ids.
func (r ScheduleRepository) Find(ctx context.Context, id string) (*models.Schedule, error) {
	if id == "" {
		return nil, nil
	}
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return IndexSchedules(list).Lookup(id), nil
}

type ScheduleIndex map[string]models.Schedule

func IndexSchedules(list []models.Schedule) ScheduleIndex {
	idx := make(ScheduleIndex, len(list))
	for _, s := range list {
		idx[s.ID] = s
	}
	return idx
}

func (idx ScheduleIndex) Lookup(id string) *models.Schedule {
	s, ok := idx[id]
	if !ok {
		return nil
	}
	return &s
}

// AdjustSeats adds delta to the availableSeats of schedule id inside list and
// reports whether the schedule was present.
func AdjustSeats(list []models.Schedule, id string, delta int) bool {
	for i := range list {
		if list[i].ID == id {
			list[i].AvailableSeats += delta
			return true
		}
	}
	return false
}
