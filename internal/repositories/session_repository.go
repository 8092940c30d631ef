package repositories

import (
	"context"

	"travelgo/internal/domain/models"
)

// SessionRepository holds the single persisted "current user" pointer.
type SessionRepository struct {
	Storage *Storage
}

func (r SessionRepository) Current(ctx context.Context) (*models.User, error) {
	return r.Storage.GetCurrentUser(ctx)
}

func (r SessionRepository) Set(ctx context.Context, u models.User) error {
	return r.Storage.SetCurrentUser(ctx, &u)
}

func (r SessionRepository) Clear(ctx context.Context) error {
	return r.Storage.SetCurrentUser(ctx, nil)
}
