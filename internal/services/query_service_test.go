package services

import (
	"context"
	"testing"

	"travelgo/internal/domain/models"
	"travelgo/internal/utils"
)

func scheduleIDs(list []models.ScheduleDetail) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.ID)
	}
	return out
}

func TestSearchFiltersRouteDateAndSeats(t *testing.T) {
	ctx := context.Background()
	store := newSeededStorage(t)
	q := QueryService{Storage: store}
	today := utils.FormatDate(fixedNow)

	got, err := q.Search(ctx, SearchQuery{Origin: "Jakarta", Destination: "Bandung", Date: today, Passengers: 2})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	ids := scheduleIDs(got)
	if len(ids) != 2 || ids[0] != "s1" || ids[1] != "s2" {
		t.Fatalf("expected [s1 s2], got %v", ids)
	}
	if got[0].Vehicle == nil || got[0].Vehicle.PlateNumber != "B 1234 XYZ" {
		t.Fatalf("vehicle not attached: %+v", got[0].Vehicle)
	}

	got, _ = q.Search(ctx, SearchQuery{Origin: "Jakarta", Destination: "Bandung", Date: today, Passengers: 8})
	if ids := scheduleIDs(got); len(ids) != 1 || ids[0] != "s1" {
		t.Fatalf("expected only s1 for 8 passengers, got %v", ids)
	}

	got, _ = q.Search(ctx, SearchQuery{Origin: "Jakarta", Destination: "Bandung", Date: "1999-01-01", Passengers: 1})
	if len(got) != 0 {
		t.Fatalf("expected no results for other date, got %d", len(got))
	}

	got, _ = q.Search(ctx, SearchQuery{Origin: "jakarta", Destination: "Bandung", Date: today})
	if len(got) != 0 {
		t.Fatalf("origin must match exactly")
	}
}

func TestBookingViewsNewestFirstWithPlaceholders(t *testing.T) {
	ctx := context.Background()
	store := newSeededStorage(t)
	svc := BookingService{Storage: store, Now: tickingClock()}
	first := createBooking(t, svc, "s1", 1, "")
	second := createBooking(t, svc, "s3", 1, "")

	if err := (ScheduleService{Storage: store}).Delete(ctx, "s3"); err != nil {
		t.Fatalf("delete schedule: %v", err)
	}

	q := QueryService{Storage: store}
	list, err := q.UserBookings(ctx, "u1")
	if err != nil {
		t.Fatalf("UserBookings returned error: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("unexpected order")
	}
	if list[0].Schedule != nil || list[0].Vehicle != nil {
		t.Fatalf("dangling schedule should be nil")
	}
	if list[1].Schedule == nil || list[1].Vehicle == nil {
		t.Fatalf("live schedule should be attached")
	}

	if other, _ := q.UserBookings(ctx, "u2"); len(other) != 0 {
		t.Fatalf("foreign bookings leaked")
	}
	if all, _ := q.AllBookings(ctx); len(all) != 2 {
		t.Fatalf("AllBookings expected 2, got %d", len(all))
	}
}

func TestDashboardTotals(t *testing.T) {
	ctx := context.Background()
	store := newSeededStorage(t)
	svc := BookingService{Storage: store, Now: tickingClock()}
	auth := AuthService{Storage: store, Now: fixedClock}
	if _, _, err := auth.Register(ctx, RegisterInput{Email: "d@x", Password: "p", Name: "D", Phone: "1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	paid := createBooking(t, svc, "s1", 2, "")      // 300000
	completed := createBooking(t, svc, "s3", 1, "") // 250000
	createBooking(t, svc, "s5", 1, "")              // pending, not counted
	cancelled := createBooking(t, svc, "s2", 1, "") // not counted
	for id, st := range map[string]models.BookingStatus{
		paid.ID:      models.StatusPaid,
		completed.ID: models.StatusCompleted,
		cancelled.ID: models.StatusCancelled,
	} {
		if _, err := svc.OverrideStatus(ctx, id, st); err != nil {
			t.Fatalf("override: %v", err)
		}
	}

	d, err := (ReportsService{Storage: store}).Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	want := Dashboard{TotalRevenue: 550000, TotalBookings: 4, TotalUsers: 1, ActiveSchedules: 6}
	if d != want {
		t.Fatalf("Dashboard = %+v, want %+v", d, want)
	}
}

func TestCitiesIsCopy(t *testing.T) {
	q := QueryService{}
	c := q.Cities()
	c[0] = "X"
	if q.Cities()[0] != "Jakarta" {
		t.Fatalf("Cities must return a copy")
	}
}
