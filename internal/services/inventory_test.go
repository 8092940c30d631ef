package services

import (
	"context"
	"testing"

	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
	"travelgo/internal/repositories"
)

func intPtr(v int) *int { return &v }

func TestDeleteVehicleLeavesScheduleWithPlaceholder(t *testing.T) {
	ctx := context.Background()
	store := newSeededStorage(t)

	if err := (VehicleService{Storage: store}).Delete(ctx, "v1"); err != nil {
		t.Fatalf("Delete vehicle returned error: %v", err)
	}
	detail, err := (ScheduleService{Storage: store}).Get(ctx, "s1")
	if err != nil {
		t.Fatalf("schedule must stay retrievable: %v", err)
	}
	if detail.Vehicle != nil {
		t.Fatalf("expected no vehicle, got %+v", detail.Vehicle)
	}
	if detail.VehicleID != "v1" {
		t.Fatalf("vehicle reference should be kept, got %q", detail.VehicleID)
	}

	list, err := (ScheduleService{Storage: store}).List(ctx)
	if err != nil || len(list) != 6 {
		t.Fatalf("List: %d %v", len(list), err)
	}
}

func TestVehicleValidation(t *testing.T) {
	svc := VehicleService{Storage: newSeededStorage(t)}
	_, err := svc.Create(context.Background(), VehicleInput{PlateNumber: "D 1 A", Capacity: 0, DriverName: "X", Type: "Hiace"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	v, err := svc.Create(context.Background(), VehicleInput{PlateNumber: " d  1 a ", Capacity: 8, DriverName: "X", Type: "Hiace"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if v.PlateNumber != "D 1 A" {
		t.Fatalf("plate not normalized: %q", v.PlateNumber)
	}
	if _, err := svc.Update(context.Background(), "missing", VehicleInput{PlateNumber: "A", Capacity: 1, DriverName: "B", Type: "C"}); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestScheduleSeatsDefaultFromVehicle(t *testing.T) {
	ctx := context.Background()
	svc := ScheduleService{Storage: newSeededStorage(t)}

	sch, err := svc.Create(ctx, ScheduleInput{
		Origin: "Semarang", Destination: "Malang", Date: "2025-02-01", Time: "09:30", Price: 300000, VehicleID: "v3",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if sch.TotalSeats != 15 || sch.AvailableSeats != 15 || sch.Status != "active" {
		t.Fatalf("unexpected seats/status: %+v", sch)
	}

	// manual override is allowed beyond vehicle capacity
	sch, err = svc.Update(ctx, sch.ID, ScheduleInput{
		Origin: "Semarang", Destination: "Malang", Date: "2025-02-01", Time: "09:30", Price: 300000, VehicleID: "v3",
		TotalSeats: intPtr(20), AvailableSeats: intPtr(18),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if sch.TotalSeats != 20 || sch.AvailableSeats != 18 {
		t.Fatalf("override not applied: %+v", sch)
	}
}

func TestScheduleValidation(t *testing.T) {
	svc := ScheduleService{Storage: newSeededStorage(t)}
	base := ScheduleInput{Origin: "Jakarta", Destination: "Bandung", Date: "2025-02-01", Time: "09:30", Price: 1, VehicleID: "v1"}

	cases := map[string]func(in *ScheduleInput){
		"same city":         func(in *ScheduleInput) { in.Destination = "Jakarta" },
		"bad date":          func(in *ScheduleInput) { in.Date = "01-02-2025" },
		"bad time":          func(in *ScheduleInput) { in.Time = "9.30" },
		"zero price":        func(in *ScheduleInput) { in.Price = 0 },
		"bad status":        func(in *ScheduleInput) { in.Status = "closed" },
		"unknown vehicle":   func(in *ScheduleInput) { in.VehicleID = "v9" },
		"no seats source":   func(in *ScheduleInput) { in.VehicleID = "" },
		"available > total": func(in *ScheduleInput) { in.TotalSeats, in.AvailableSeats = intPtr(5), intPtr(6) },
	}
	for name, edit := range cases {
		in := base
		edit(&in)
		if _, err := svc.Create(context.Background(), in); !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestScheduleUpdateKeepsSoldSeats(t *testing.T) {
	ctx := context.Background()
	store := newSeededStorage(t)
	bookings := newBookingService(store, nil)
	schedules := ScheduleService{Storage: store}

	b, err := bookings.Create(ctx, "u1", models.BookingInput{
		ScheduleID: "s1", NumberOfSeats: 3,
		PassengerName: "Siti", PassengerEmail: "siti@example.com", PassengerPhone: "0811",
		PaymentProof: pngProof,
	})
	if err != nil {
		t.Fatalf("Create booking returned error: %v", err)
	}

	cur, err := repositories.ScheduleRepository{Storage: store}.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get s1: %v", err)
	}
	in := ScheduleInput{
		Origin: cur.Origin, Destination: cur.Destination, Date: cur.Date, Time: cur.Time,
		Price: 175000, VehicleID: cur.VehicleID,
	}
	sch, err := schedules.Update(ctx, "s1", in)
	if err != nil {
		t.Fatalf("price update returned error: %v", err)
	}
	if sch.TotalSeats != 12 || sch.AvailableSeats != 9 {
		t.Fatalf("price update touched seats: %+v", sch)
	}

	// switching to a 7-seat vehicle keeps the 3 sold seats
	in.VehicleID = "v2"
	sch, err = schedules.Update(ctx, "s1", in)
	if err != nil {
		t.Fatalf("vehicle update returned error: %v", err)
	}
	if sch.TotalSeats != 7 || sch.AvailableSeats != 4 {
		t.Fatalf("unexpected seats after vehicle change: %+v", sch)
	}

	if err := bookings.Delete(ctx, b.ID); err != nil {
		t.Fatalf("Delete booking returned error: %v", err)
	}
	after, err := repositories.ScheduleRepository{Storage: store}.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get s1: %v", err)
	}
	if after.AvailableSeats != 7 || after.AvailableSeats > after.TotalSeats {
		t.Fatalf("refund broke seat bounds: available=%d total=%d", after.AvailableSeats, after.TotalSeats)
	}
}
