package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"travelgo/internal/db"
	"travelgo/internal/repositories"
)

// 1x1 RGBA PNG.
const pngProof = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

var fixedNow = time.Date(2025, 1, 10, 1, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// tickingClock returns a clock that advances one minute per call.
func tickingClock() func() time.Time {
	t := fixedNow
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

// flakyKV fails every Put while failPut is set.
type flakyKV struct {
	*db.MemoryStore
	failPut bool
}

func (f *flakyKV) Put(ctx context.Context, entries ...db.Entry) error {
	if f.failPut {
		return errors.New("disk penuh")
	}
	return f.MemoryStore.Put(ctx, entries...)
}

func newSeededStorage(t *testing.T) *repositories.Storage {
	t.Helper()
	store := repositories.NewStorage(db.NewMemoryStore())
	if err := (SeedService{Storage: store, Now: fixedClock}).Bootstrap(context.Background()); err != nil {
		t.Fatalf("seed error: %v", err)
	}
	return store
}

func scheduleSeats(t *testing.T, store *repositories.Storage, id string) int {
	t.Helper()
	sch, err := repositories.ScheduleRepository{Storage: store}.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get schedule %s: %v", id, err)
	}
	return sch.AvailableSeats
}
