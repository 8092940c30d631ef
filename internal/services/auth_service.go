package services

import (
	"context"
	"strings"
	"time"

	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
	"travelgo/internal/repositories"
	"travelgo/internal/utils"
)

// AuthService is the session manager: login, registration, logout and the
// single persisted "current user" pointer.
type AuthService struct {
	Storage   *repositories.Storage
	Now       func() time.Time
	RequestID string

	// ValidateOnRestore drops a stored session whose user has been deleted.
	ValidateOnRestore bool
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

func (s AuthService) users() repositories.UserRepository {
	return repositories.UserRepository{Storage: s.Storage}
}

func (s AuthService) sessions() repositories.SessionRepository {
	return repositories.SessionRepository{Storage: s.Storage}
}

// Login succeeds iff a user has exactly this email and password. The caller
// only learns pass/fail.
func (s AuthService) Login(ctx context.Context, email, password string) (models.User, bool, error) {
	if err := requireStorage(s.Storage); err != nil {
		return models.User{}, false, err
	}
	var (
		found models.User
		ok    bool
	)
	err := s.Storage.Atomically(func() error {
		u, err := s.users().FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if u == nil || u.Password != password {
			return nil
		}
		if err := s.sessions().Set(ctx, *u); err != nil {
			return err
		}
		found, ok = *u, true
		return nil
	})
	if err != nil {
		return models.User{}, false, err
	}
	if !ok {
		utils.LogEvent(s.RequestID, "auth", "login_failed", "credential mismatch")
		return models.User{}, false, nil
	}
	utils.LogEvent(s.RequestID, "auth", "login", "user_id="+found.ID)
	return found, true, nil
}

// Register creates a role=user account and opens its session. ok is false,
// with nothing written, when the email is already taken.
func (s AuthService) Register(ctx context.Context, in RegisterInput) (models.User, bool, error) {
	if err := requireStorage(s.Storage); err != nil {
		return models.User{}, false, err
	}
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	if err := firstErr(
		required("email", in.Email),
		required("password", in.Password),
		required("name", in.Name),
		required("phone", in.Phone),
	); err != nil {
		return models.User{}, false, err
	}

	var (
		created models.User
		ok      bool
	)
	err := s.Storage.Atomically(func() error {
		users, err := s.users().List(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			if u.Email == in.Email {
				return nil
			}
		}
		created = models.User{
			ID:        utils.NewID(),
			Email:     in.Email,
			Password:  in.Password,
			Name:      in.Name,
			Phone:     in.Phone,
			Role:      models.RoleUser,
			CreatedAt: clock(s.Now),
		}
		users = append(users, created)
		if err := s.Storage.Commit(ctx, repositories.NewBatch().Users(users).CurrentUser(&created)); err != nil {
			return err
		}
		ok = true
		return nil
	})
	if err != nil {
		return models.User{}, false, err
	}
	if !ok {
		utils.LogEvent(s.RequestID, "auth", "register_rejected", "email sudah terdaftar")
		return models.User{}, false, nil
	}
	utils.LogEvent(s.RequestID, "auth", "register", "user_id="+created.ID)
	return created, true, nil
}

// Logout clears the session pointer unconditionally.
func (s AuthService) Logout(ctx context.Context) error {
	if err := requireStorage(s.Storage); err != nil {
		return err
	}
	return s.Storage.Atomically(func() error {
		return s.sessions().Clear(ctx)
	})
}

// Current restores the persisted session. Without ValidateOnRestore a session
// for a deleted user is returned as-is.
func (s AuthService) Current(ctx context.Context) (*models.User, error) {
	if err := requireStorage(s.Storage); err != nil {
		return nil, err
	}
	u, err := s.sessions().Current(ctx)
	if err != nil || u == nil || !s.ValidateOnRestore {
		return u, err
	}

	var out *models.User
	err = s.Storage.Atomically(func() error {
		live, err := s.users().Find(ctx, u.ID)
		if err != nil {
			return err
		}
		if live != nil {
			out = live
			return nil
		}
		utils.LogEvent(s.RequestID, "auth", "session_dropped", "user_id="+u.ID+" tidak ditemukan")
		return s.sessions().Clear(ctx)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ActorFromClaims resolves the identity behind a validated token.
func ActorFromClaims(c *Claims) domain.Actor {
	if c == nil {
		return domain.Actor{}
	}
	return domain.Actor{UserID: c.UserID, Role: c.Role}
}
