package services

import (
	"context"
	"fmt"
	"strings"

	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
	"travelgo/internal/repositories"
	"travelgo/internal/utils"
)

type ScheduleService struct {
	Storage   *repositories.Storage
	RequestID string
}

// ScheduleInput is the admin form. On create, nil seat fields are filled from
// the selected vehicle's capacity. On update they keep the stored counters.
type ScheduleInput struct {
	Origin         string                `json:"origin"`
	Destination    string                `json:"destination"`
	Date           string                `json:"date"`
	Time           string                `json:"time"`
	Price          int64                 `json:"price"`
	VehicleID      string                `json:"vehicleId"`
	TotalSeats     *int                  `json:"totalSeats"`
	AvailableSeats *int                  `json:"availableSeats"`
	Status         models.ScheduleStatus `json:"status"`
}

func (s ScheduleService) repo() repositories.ScheduleRepository {
	return repositories.ScheduleRepository{Storage: s.Storage}
}

// List returns every schedule with its vehicle (nil when dangling).
func (s ScheduleService) List(ctx context.Context) ([]models.ScheduleDetail, error) {
	if err := requireStorage(s.Storage); err != nil {
		return nil, err
	}
	schedules, err := s.repo().List(ctx)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.Storage.GetVehicles(ctx)
	if err != nil {
		return nil, err
	}
	return withVehicles(schedules, repositories.IndexVehicles(vehicles)), nil
}

func (s ScheduleService) Get(ctx context.Context, id string) (models.ScheduleDetail, error) {
	if err := requireStorage(s.Storage); err != nil {
		return models.ScheduleDetail{}, err
	}
	sch, err := s.repo().Get(ctx, id)
	if err != nil {
		return models.ScheduleDetail{}, err
	}
	v, err := repositories.VehicleRepository{Storage: s.Storage}.Find(ctx, sch.VehicleID)
	if err != nil {
		return models.ScheduleDetail{}, err
	}
	return models.ScheduleDetail{Schedule: sch, Vehicle: v}, nil
}

func (s ScheduleService) Create(ctx context.Context, in ScheduleInput) (models.Schedule, error) {
	if err := requireStorage(s.Storage); err != nil {
		return models.Schedule{}, err
	}
	var out models.Schedule
	err := s.Storage.Atomically(func() error {
		sch, err := s.build(ctx, in, nil)
		if err != nil {
			return err
		}
		sch.ID = utils.NewID()
		list, err := s.repo().List(ctx)
		if err != nil {
			return err
		}
		out = sch
		return s.Storage.SetSchedules(ctx, append(list, sch))
	})
	if err != nil {
		return models.Schedule{}, err
	}
	utils.LogEvent(s.RequestID, "schedule", "create",
		fmt.Sprintf("schedule_id=%s route=%s-%s date=%s", out.ID, out.Origin, out.Destination, out.Date))
	return out, nil
}

// Update replaces the fields of schedule id. Seats already sold stay sold
// unless the admin sets the counters explicitly. Existing bookings are not
// re-priced.
func (s ScheduleService) Update(ctx context.Context, id string, in ScheduleInput) (models.Schedule, error) {
	if err := requireStorage(s.Storage); err != nil {
		return models.Schedule{}, err
	}
	var out models.Schedule
	err := s.Storage.Atomically(func() error {
		list, err := s.repo().List(ctx)
		if err != nil {
			return err
		}
		for i := range list {
			if list[i].ID != id {
				continue
			}
			prev := list[i]
			sch, err := s.build(ctx, in, &prev)
			if err != nil {
				return err
			}
			sch.ID = id
			list[i] = sch
			out = sch
			return s.Storage.SetSchedules(ctx, list)
		}
		return domain.NotFoundError{Resource: "schedule"}
	})
	if err != nil {
		return models.Schedule{}, err
	}
	utils.LogEvent(s.RequestID, "schedule", "update", "schedule_id="+id)
	return out, nil
}

// Delete leaves bookings of the schedule in place; they render with
// placeholders afterwards.
func (s ScheduleService) Delete(ctx context.Context, id string) error {
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
				return s.Storage.SetSchedules(ctx, append(list[:i:i], list[i+1:]...))
			}
		}
		return domain.NotFoundError{Resource: "schedule"}
	})
	if err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "schedule", "delete", "schedule_id="+id)
	return nil
}

// build validates in. prev is the stored schedule on update and nil on create.
func (s ScheduleService) build(ctx context.Context, in ScheduleInput, prev *models.Schedule) (models.Schedule, error) {
	sch := models.Schedule{
		Origin:      utils.NormalizeSpace(in.Origin),
		Destination: utils.NormalizeSpace(in.Destination),
		Date:        strings.TrimSpace(in.Date),
		Time:        strings.TrimSpace(in.Time),
		Price:       in.Price,
		VehicleID:   strings.TrimSpace(in.VehicleID),
		Status:      in.Status,
	}
	if sch.Status == "" {
		sch.Status = models.ScheduleActive
	}
	if err := firstErr(
		required("origin", sch.Origin),
		required("destination", sch.Destination),
		required("date", sch.Date),
		required("time", sch.Time),
	); err != nil {
		return sch, err
	}
	if strings.EqualFold(sch.Origin, sch.Destination) {
		return sch, domain.ValidationError{Field: "destination", Msg: "harus berbeda dengan kota asal"}
	}
	if !utils.ValidDate(sch.Date) {
		return sch, domain.ValidationError{Field: "date", Msg: "format YYYY-MM-DD"}
	}
	if !utils.ValidTimeHM(sch.Time) {
		return sch, domain.ValidationError{Field: "time", Msg: "format HH:MM"}
	}
	if sch.Price <= 0 {
		return sch, domain.ValidationError{Field: "price", Msg: "harus lebih dari 0"}
	}
	if !sch.Status.Valid() {
		return sch, domain.ValidationError{Field: "status", Msg: "active atau inactive"}
	}

	capacity := -1
	if sch.VehicleID != "" {
		v, err := repositories.VehicleRepository{Storage: s.Storage}.Find(ctx, sch.VehicleID)
		if err != nil {
			return sch, err
		}
		if v == nil {
			return sch, domain.ValidationError{Field: "vehicleId", Msg: "kendaraan tidak ditemukan"}
		}
		capacity = v.Capacity
	}

	switch {
	case in.TotalSeats != nil:
		sch.TotalSeats = *in.TotalSeats
	case prev != nil && prev.VehicleID == sch.VehicleID:
		sch.TotalSeats = prev.TotalSeats
	case capacity >= 0:
		sch.TotalSeats = capacity
	default:
		return sch, domain.ValidationError{Field: "totalSeats", Msg: "wajib diisi bila kendaraan tidak dipilih"}
	}
	switch {
	case in.AvailableSeats != nil:
		sch.AvailableSeats = *in.AvailableSeats
	case prev != nil:
		// sold seats carry over to the new total
		sold := prev.TotalSeats - prev.AvailableSeats
		sch.AvailableSeats = max(sch.TotalSeats-sold, 0)
	default:
		sch.AvailableSeats = sch.TotalSeats
	}

	if sch.TotalSeats < 0 || sch.AvailableSeats < 0 || sch.AvailableSeats > sch.TotalSeats {
		return sch, domain.ValidationError{Field: "availableSeats", Msg: "harus di antara 0 dan total kursi"}
	}
	return sch, nil
}

func withVehicles(list []models.Schedule, vehicles repositories.VehicleIndex) []models.ScheduleDetail {
	out := make([]models.ScheduleDetail, 0, len(list))
	for _, sch := range list {
		out = append(out, models.ScheduleDetail{Schedule: sch, Vehicle: vehicles.Lookup(sch.VehicleID)})
	}
	return out
}
