package services

import (
	"context"
	"time"

	"travelgo/internal/domain/models"
	"travelgo/internal/repositories"
	"travelgo/internal/utils"
)

// Seed admin credentials, documented for first login.
const (
	SeedAdminEmail    = "admin@travel.com"
	SeedAdminPassword = "admin123"
)

type SeedService struct {
	Storage   *repositories.Storage
	Now       func() time.Time
	RequestID string
}

// Bootstrap fills every empty collection with its seed data in one commit.
// Collections that already hold records are left alone.
func (s SeedService) Bootstrap(ctx context.Context) error {
	if err := requireStorage(s.Storage); err != nil {
		return err
	}
	return s.Storage.Atomically(func() error {
		users, err := s.Storage.GetUsers(ctx)
		if err != nil {
			return err
		}
		vehicles, err := s.Storage.GetVehicles(ctx)
		if err != nil {
			return err
		}
		schedules, err := s.Storage.GetSchedules(ctx)
		if err != nil {
			return err
		}

		now := clock(s.Now)
		batch := repositories.NewBatch()
		if len(users) == 0 {
			batch.Users(seedUsers(now))
		}
		if len(vehicles) == 0 {
			batch.Vehicles(seedVehicles())
		}
		if len(schedules) == 0 {
			batch.Schedules(seedSchedules(now))
		}
		if batch.Len() == 0 {
			return nil
		}
		if err := s.Storage.Commit(ctx, batch); err != nil {
			return err
		}
		utils.LogEvent(s.RequestID, "seed", "bootstrap", "data awal dibuat")
		return nil
	})
}

func seedUsers(now time.Time) []models.User {
	return []models.User{{
		ID:        "admin-1",
		Email:     SeedAdminEmail,
		Password:  SeedAdminPassword,
		Name:      "Administrator",
		Phone:     "081234567890",
		Role:      models.RoleAdmin,
		CreatedAt: now,
	}}
}

func seedVehicles() []models.Vehicle {
	return []models.Vehicle{
		{ID: "v1", PlateNumber: "B 1234 XYZ", Capacity: 12, DriverName: "Ahmad Wijaya", Type: "Hiace"},
		{ID: "v2", PlateNumber: "B 5678 ABC", Capacity: 7, DriverName: "Budi Santoso", Type: "Innova"},
		{ID: "v3", PlateNumber: "B 9012 DEF", Capacity: 15, DriverName: "Candra Pratama", Type: "Elf"},
		{ID: "v4", PlateNumber: "B 3456 GHI", Capacity: 6, DriverName: "Dedi Hermawan", Type: "Avanza"},
	}
}

// seedSchedules dates its departures today and tomorrow relative to now.
func seedSchedules(now time.Time) []models.Schedule {
	today := utils.FormatDate(now)
	tomorrow := utils.FormatDate(now.AddDate(0, 0, 1))
	mk := func(id, from, to, date, at string, price int64, seats int, vehicleID string) models.Schedule {
		return models.Schedule{
			ID:             id,
			Origin:         from,
			Destination:    to,
			Date:           date,
			Time:           at,
			Price:          price,
			AvailableSeats: seats,
			TotalSeats:     seats,
			VehicleID:      vehicleID,
			Status:         models.ScheduleActive,
		}
	}
	return []models.Schedule{
		mk("s1", "Jakarta", "Bandung", today, "08:00", 150000, 12, "v1"),
		mk("s2", "Jakarta", "Bandung", today, "14:00", 150000, 7, "v2"),
		mk("s3", "Jakarta", "Yogyakarta", tomorrow, "06:00", 250000, 15, "v3"),
		mk("s4", "Bandung", "Jakarta", today, "10:00", 150000, 6, "v4"),
		mk("s5", "Jakarta", "Surabaya", tomorrow, "05:00", 350000, 12, "v1"),
		mk("s6", "Bandung", "Yogyakarta", tomorrow, "07:00", 200000, 7, "v2"),
	}
}
