package repositories

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"travelgo/internal/db"
	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
)

type failingKV struct {
	*db.MemoryStore
	putErr error
}

func (f failingKV) Put(ctx context.Context, entries ...db.Entry) error {
	if f.putErr != nil {
		return f.putErr
	}
	return f.MemoryStore.Put(ctx, entries...)
}

func TestStorageCollectionsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStorage(db.NewMemoryStore())

	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	bookings := []models.Booking{{
		ID:             "b1",
		UserID:         "u1",
		ScheduleID:     "s1",
		PassengerName:  "Sari",
		PassengerEmail: "sari@example.com",
		PassengerPhone: "0812",
		NumberOfSeats:  2,
		TotalPrice:     300000,
		BookingCode:    "TRV12345678",
		Status:         models.StatusAwaitingVerification,
		PaymentProof:   "data:image/png;base64,AAAA",
		CreatedAt:      created,
	}}
	schedules := []models.Schedule{{
		ID: "s1", Origin: "Jakarta", Destination: "Bandung", Date: "2025-01-02", Time: "08:00",
		Price: 150000, AvailableSeats: 10, TotalSeats: 12, VehicleID: "v1", Status: models.ScheduleActive,
	}}

	if err := s.SetBookings(ctx, bookings); err != nil {
		t.Fatalf("set bookings: %v", err)
	}
	if err := s.SetSchedules(ctx, schedules); err != nil {
		t.Fatalf("set schedules: %v", err)
	}

	gotB, err := s.GetBookings(ctx)
	if err != nil {
		t.Fatalf("get bookings: %v", err)
	}
	if !reflect.DeepEqual(gotB, bookings) {
		t.Fatalf("bookings round trip mismatch\n got: %+v\nwant: %+v", gotB, bookings)
	}
	gotS, err := s.GetSchedules(ctx)
	if err != nil {
		t.Fatalf("get schedules: %v", err)
	}
	if !reflect.DeepEqual(gotS, schedules) {
		t.Fatalf("schedules round trip mismatch\n got: %+v\nwant: %+v", gotS, schedules)
	}
}

func TestStorageUninitializedCollectionIsEmpty(t *testing.T) {
	s := NewStorage(db.NewMemoryStore())
	users, err := s.GetUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", users)
	}
}

func TestStorageCorruptValueIsStorageError(t *testing.T) {
	ctx := context.Background()
	kv := db.NewMemoryStore()
	_ = kv.Put(ctx, db.Entry{Key: KeyVehicles, Value: []byte("{not json")})
	s := NewStorage(kv)

	_, err := s.GetVehicles(ctx)
	var se domain.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if !se.Corrupt || se.Key != KeyVehicles {
		t.Fatalf("unexpected storage error %+v", se)
	}
}

func TestStorageSetCurrentUserNilRemovesEntry(t *testing.T) {
	ctx := context.Background()
	kv := db.NewMemoryStore()
	s := NewStorage(kv)

	u := models.User{ID: "u1", Email: "a@b.c", Role: models.RoleUser}
	if err := s.SetCurrentUser(ctx, &u); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.GetCurrentUser(ctx)
	if err != nil || got == nil || got.ID != "u1" {
		t.Fatalf("expected stored session, got %+v err=%v", got, err)
	}
	if err := s.SetCurrentUser(ctx, nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, KeyCurrentUser); ok {
		t.Fatalf("session entry should be removed, not stored as null")
	}
	got, err = s.GetCurrentUser(ctx)
	if err != nil || got != nil {
		t.Fatalf("expected no session, got %+v err=%v", got, err)
	}
}

func TestStorageCommitFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	mem := db.NewMemoryStore()
	s := NewStorage(failingKV{MemoryStore: mem, putErr: errors.New("quota exceeded")})

	batch := NewBatch().
		Bookings([]models.Booking{{ID: "b1"}}).
		Schedules([]models.Schedule{{ID: "s1"}})
	err := s.Commit(ctx, batch)
	if !domain.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if _, ok, _ := mem.Get(ctx, KeyBookings); ok {
		t.Fatalf("bookings must not be written on failure")
	}
}

func TestStorageClear(t *testing.T) {
	ctx := context.Background()
	s := NewStorage(db.NewMemoryStore())
	_ = s.SetUsers(ctx, []models.User{{ID: "u1"}})
	_ = s.SetCurrentUser(ctx, &models.User{ID: "u1"})
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	users, _ := s.GetUsers(ctx)
	cur, _ := s.GetCurrentUser(ctx)
	if len(users) != 0 || cur != nil {
		t.Fatalf("expected empty store, users=%v cur=%v", users, cur)
	}
}

func TestAdjustSeats(t *testing.T) {
	list := []models.Schedule{{ID: "s1", AvailableSeats: 5}, {ID: "s2", AvailableSeats: 1}}
	if !AdjustSeats(list, "s2", 3) || list[1].AvailableSeats != 4 {
		t.Fatalf("expected s2 adjusted to 4, got %+v", list[1])
	}
	if AdjustSeats(list, "missing", 1) {
		t.Fatalf("missing schedule must report false")
	}
}
