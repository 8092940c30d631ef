package repositories

import (
	"context"
	"encoding/json"
	"sync"

	"travelgo/internal/db"
	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
)

// Stable storage keys; changing them orphans existing deployments.
const (
	KeyUsers       = "travel_users"
	KeySchedules   = "travel_schedules"
	KeyVehicles    = "travel_vehicles"
	KeyBookings    = "travel_bookings"
	KeyCurrentUser = "travel_current_user"
)

var allKeys = []string{KeyUsers, KeySchedules, KeyVehicles, KeyBookings, KeyCurrentUser}

// Storage is the typed view over the key-value store: four collections that
// are always read and replaced whole, plus the session pointer.
type Storage struct {
	KV db.KV
	mu sync.Mutex
}

func NewStorage(kv db.KV) *Storage {
	return &Storage{KV: kv}
}

// Atomically runs fn under the process-wide write lock so a read-modify-write
// sequence cannot interleave with another one.
func (s *Storage) Atomically(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

func (s *Storage) GetUsers(ctx context.Context) ([]models.User, error) {
	return getList[models.User](ctx, s.KV, KeyUsers)
}

func (s *Storage) SetUsers(ctx context.Context, users []models.User) error {
	return s.Commit(ctx, NewBatch().Users(users))
}

func (s *Storage) GetVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return getList[models.Vehicle](ctx, s.KV, KeyVehicles)
}

func (s *Storage) SetVehicles(ctx context.Context, vehicles []models.Vehicle) error {
	return s.Commit(ctx, NewBatch().Vehicles(vehicles))
}

func (s *Storage) GetSchedules(ctx context.Context) ([]models.Schedule, error) {
	return getList[models.Schedule](ctx, s.KV, KeySchedules)
}

func (s *Storage) SetSchedules(ctx context.Context, schedules []models.Schedule) error {
	return s.Commit(ctx, NewBatch().Schedules(schedules))
}

func (s *Storage) GetBookings(ctx context.Context) ([]models.Booking, error) {
	return getList[models.Booking](ctx, s.KV, KeyBookings)
}

func (s *Storage) SetBookings(ctx context.Context, bookings []models.Booking) error {
	return s.Commit(ctx, NewBatch().Bookings(bookings))
}

// GetCurrentUser returns nil when no session is stored.
func (s *Storage) GetCurrentUser(ctx context.Context) (*models.User, error) {
	raw, ok, err := s.KV.Get(ctx, KeyCurrentUser)
	if err != nil {
		return nil, domain.StorageError{Op: "read", Key: KeyCurrentUser, Err: err}
	}
	if !ok {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, domain.StorageError{Op: "read", Key: KeyCurrentUser, Corrupt: true, Err: err}
	}
	return &u, nil
}

// SetCurrentUser stores the session pointer; nil removes the entry.
func (s *Storage) SetCurrentUser(ctx context.Context, u *models.User) error {
	return s.Commit(ctx, NewBatch().CurrentUser(u))
}

// Clear removes every persisted entry.
func (s *Storage) Clear(ctx context.Context) error {
	b := NewBatch()
	for _, k := range allKeys {
		b.entries = append(b.entries, db.Entry{Key: k})
	}
	return s.Commit(ctx, b)
}

// Commit writes every entry of b in one atomic store call.
func (s *Storage) Commit(ctx context.Context, b *Batch) error {
	if b.err != nil {
		return b.err
	}
	if err := s.KV.Put(ctx, b.entries...); err != nil {
		return domain.StorageError{Op: "write", Key: b.keys(), Err: err}
	}
	return nil
}

// Batch collects whole-collection replacements that are committed together.
type Batch struct {
	entries []db.Entry
	err     error
}

func NewBatch() *Batch {
	return &Batch{}
}

func (b *Batch) Users(v []models.User) *Batch { return putList(b, KeyUsers, v) }
func (b *Batch) Vehicles(v []models.Vehicle) *Batch { return putList(b, KeyVehicles, v) }
func (b *Batch) Schedules(v []models.Schedule) *Batch { return putList(b, KeySchedules, v) }
func (b *Batch) Bookings(v []models.Booking) *Batch { return putList(b, KeyBookings, v) }

func (b *Batch) CurrentUser(u *models.User) *Batch {
	if u == nil {
		b.entries = append(b.entries, db.Entry{Key: KeyCurrentUser})
		return b
	}
	return put(b, KeyCurrentUser, u)
}

func (b *Batch) Len() int { return len(b.entries) }

func (b *Batch) keys() string {
	out := ""
	for i, e := range b.entries {
		if i > 0 {
			out += ","
		}
		out += e.Key
	}
	return out
}

func putList[T any](b *Batch, key string, v []T) *Batch {
	if v == nil {
		v = []T{}
	}
	return put(b, key, v)
}

func put(b *Batch, key string, v any) *Batch {
	if b.err != nil {
		return b
	}
	raw, err := json.Marshal(v)
	if err != nil {
		b.err = domain.StorageError{Op: "encode", Key: key, Err: err}
		return b
	}
	b.entries = append(b.entries, db.Entry{Key: key, Value: raw})
	return b
}

func getList[T any](ctx context.Context, kv db.KV, key string) ([]T, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, domain.StorageError{Op: "read", Key: key, Err: err}
	}
	out := []T{}
	if !ok || len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, domain.StorageError{Op: "read", Key: key, Corrupt: true, Err: err}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
