package services

import (
	"context"
	"sort"

	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
	"travelgo/internal/repositories"
	"travelgo/internal/utils"
)

type UserService struct {
	Storage   *repositories.Storage
	RequestID string
}

func (s UserService) repo() repositories.UserRepository {
	return repositories.UserRepository{Storage: s.Storage}
}

// ListCustomers returns role=user accounts, newest first.
func (s UserService) ListCustomers(ctx context.Context) ([]models.User, error) {
	if err := requireStorage(s.Storage); err != nil {
		return nil, err
	}
	users, err := s.repo().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role == models.RoleUser {
			out = append(out, u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a customer account. Their bookings and any stored session
// pointing at them stay untouched.
func (s UserService) Delete(ctx context.Context, id string) error {
	if err := requireStorage(s.Storage); err != nil {
		return err
	}
	err := s.Storage.Atomically(func() error {
		users, err := s.repo().List(ctx)
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].ID != id {
				continue
			}
			if users[i].IsAdmin() {
				return domain.ValidationError{Field: "id", Msg: "akun admin tidak dapat dihapus"}
			}
			return s.Storage.SetUsers(ctx, append(users[:i:i], users[i+1:]...))
		}
		return domain.NotFoundError{Resource: "user"}
	})
	if err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "user", "delete", "user_id="+id)
	return nil
}
