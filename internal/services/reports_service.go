package services

import (
	"context"

	"travelgo/internal/domain/models"
	"travelgo/internal/repositories"
)

type Dashboard struct {
	TotalRevenue    int64 `json:"totalRevenue"`
	TotalBookings   int   `json:"totalBookings"`
	TotalUsers      int   `json:"totalUsers"`
	ActiveSchedules int   `json:"activeSchedules"`
}

type ReportsService struct {
	Storage *repositories.Storage
}

// Dashboard counts revenue from paid and completed bookings only.
func (s ReportsService) Dashboard(ctx context.Context) (Dashboard, error) {
	var out Dashboard
	if err := requireStorage(s.Storage); err != nil {
		return out, err
	}
	users, err := s.Storage.GetUsers(ctx)
	if err != nil {
		return out, err
	}
	schedules, err := s.Storage.GetSchedules(ctx)
	if err != nil {
		return out, err
	}
	bookings, err := s.Storage.GetBookings(ctx)
	if err != nil {
		return out, err
	}

	for _, b := range bookings {
		if b.Status == models.StatusPaid || b.Status == models.StatusCompleted {
			out.TotalRevenue += b.TotalPrice
		}
	}
	out.TotalBookings = len(bookings)
	for _, u := range users {
		if u.Role == models.RoleUser {
			out.TotalUsers++
		}
	}
	for _, sch := range schedules {
		if sch.Status == models.ScheduleActive {
			out.ActiveSchedules++
		}
	}
	return out, nil
}
