package repositories

import (
	"context"

	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
)

type UserRepository struct {
	Storage *Storage
}

func (r UserRepository) List(ctx context.Context) ([]models.User, error) {
	return r.Storage.GetUsers(ctx)
}

func (r UserRepository) Get(ctx context.Context, id string) (models.User, error) {
	u, err := r.Find(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return *u, nil
}

// Find returns nil when no user has the id.
func (r UserRepository) Find(ctx context.Context, id string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// FindByEmail matches the email exactly (case-sensitive).
func (r UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}
