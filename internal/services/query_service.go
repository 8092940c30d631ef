package services

import (
	"context"
	"sort"
	"strings"

	"travelgo/internal/domain/models"
	"travelgo/internal/repositories"
)

// Cities offered by the search form.
var Cities = []string{"Jakarta", "Bandung", "Yogyakarta", "Surabaya", "Semarang", "Malang"}

type SearchQuery struct {
	Origin      string
	Destination string
	Date        string
	Passengers  int
}

// QueryService holds the read-only views. Nothing here writes to the store.
type QueryService struct {
	Storage *repositories.Storage
}

func (s QueryService) Cities() []string {
	out := make([]string, len(Cities))
	copy(out, Cities)
	return out
}

// Search returns active schedules on exactly this route and date with at
// least q.Passengers free seats, in collection order.
func (s QueryService) Search(ctx context.Context, q SearchQuery) ([]models.ScheduleDetail, error) {
	if err := requireStorage(s.Storage); err != nil {
		return nil, err
	}
	if q.Passengers < 1 {
		q.Passengers = 1
	}
	schedules, err := s.Storage.GetSchedules(ctx)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.Storage.GetVehicles(ctx)
	if err != nil {
		return nil, err
	}

	origin := strings.TrimSpace(q.Origin)
	dest := strings.TrimSpace(q.Destination)
	date := strings.TrimSpace(q.Date)
	matched := make([]models.Schedule, 0)
	for _, sch := range schedules {
		if sch.Origin != origin || sch.Destination != dest || sch.Date != date {
			continue
		}
		if !sch.Bookable(q.Passengers) {
			continue
		}
		matched = append(matched, sch)
	}
	return withVehicles(matched, repositories.IndexVehicles(vehicles)), nil
}

// UserBookings lists userID's bookings, newest first.
func (s QueryService) UserBookings(ctx context.Context, userID string) ([]models.BookingDetail, error) {
	if err := requireStorage(s.Storage); err != nil {
		return nil, err
	}
	list, err := repositories.BookingRepository{Storage: s.Storage}.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, list)
}

// AllBookings lists every booking, newest first.
func (s QueryService) AllBookings(ctx context.Context) ([]models.BookingDetail, error) {
	if err := requireStorage(s.Storage); err != nil {
		return nil, err
	}
	list, err := s.Storage.GetBookings(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, list)
}

// BookingDetail enriches one booking already loaded by the caller.
func (s QueryService) BookingDetail(ctx context.Context, b models.Booking) (models.BookingDetail, error) {
	out, err := s.enrich(ctx, []models.Booking{b})
	if err != nil {
		return models.BookingDetail{}, err
	}
	return out[0], nil
}

func (s QueryService) enrich(ctx context.Context, list []models.Booking) ([]models.BookingDetail, error) {
	schedules, err := s.Storage.GetSchedules(ctx)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.Storage.GetVehicles(ctx)
	if err != nil {
		return nil, err
	}
	schIdx := repositories.IndexSchedules(schedules)
	vehIdx := repositories.IndexVehicles(vehicles)

	out := make([]models.BookingDetail, 0, len(list))
	for _, b := range list {
		d := models.BookingDetail{Booking: b, Schedule: schIdx.Lookup(b.ScheduleID)}
		if d.Schedule != nil {
			d.Vehicle = vehIdx.Lookup(d.Schedule.VehicleID)
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
