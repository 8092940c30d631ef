package services

import (
	"context"
	"reflect"
	"testing"

	"travelgo/internal/domain"
)

func TestRegisterDuplicateEmailLeavesUsersUntouched(t *testing.T) {
	ctx := context.Background()
	store := newSeededStorage(t)
	svc := AuthService{Storage: store, Now: fixedClock}

	u, ok, err := svc.Register(ctx, RegisterInput{Email: "budi@example.com", Password: "rahasia", Name: "Budi", Phone: "0812"})
	if err != nil || !ok {
		t.Fatalf("first register failed: ok=%v err=%v", ok, err)
	}
	if u.Role != "user" {
		t.Fatalf("expected role user, got %s", u.Role)
	}
	current, err := svc.Current(ctx)
	if err != nil || current == nil || current.ID != u.ID {
		t.Fatalf("register should open a session, got %+v err=%v", current, err)
	}

	before, _ := store.GetUsers(ctx)
	_, ok, err = svc.Register(ctx, RegisterInput{Email: "budi@example.com", Password: "lain", Name: "Budi 2", Phone: "0813"})
	if err != nil || ok {
		t.Fatalf("duplicate register should fail silently: ok=%v err=%v", ok, err)
	}
	after, _ := store.GetUsers(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("user collection changed on duplicate register")
	}

	// exact match only
	if _, ok, _ := svc.Register(ctx, RegisterInput{Email: "Budi@example.com", Password: "x", Name: "B", Phone: "1"}); !ok {
		t.Fatalf("email comparison must be case-sensitive")
	}
}

func TestRegisterRequiresFields(t *testing.T) {
	svc := AuthService{Storage: newSeededStorage(t), Now: fixedClock}
	_, _, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "x", Name: "", Phone: "1"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoginExactMatchOnly(t *testing.T) {
	ctx := context.Background()
	store := newSeededStorage(t)
	svc := AuthService{Storage: store, Now: fixedClock}

	cases := []struct {
		email, password string
		want            bool
	}{
		{"admin@travel.com", "admin123", true},
		{"admin@travel.com", "admin12", false},
		{"admin@travel.com", "admin1234", false},
		{"admin@travel", "admin123", false},
		{"ADMIN@travel.com", "admin123", false},
		{"", "", false},
	}
	for _, tc := range cases {
		if err := svc.Logout(ctx); err != nil {
			t.Fatalf("logout: %v", err)
		}
		u, ok, err := svc.Login(ctx, tc.email, tc.password)
		if err != nil {
			t.Fatalf("Login returned error: %v", err)
		}
		if ok != tc.want {
			t.Fatalf("Login(%q, %q) = %v, want %v", tc.email, tc.password, ok, tc.want)
		}
		current, _ := svc.Current(ctx)
		if tc.want && (current == nil || current.ID != u.ID) {
			t.Fatalf("successful login must set the session")
		}
		if !tc.want && current != nil {
			t.Fatalf("failed login must not set the session")
		}
	}
}

func TestStaleSessionPolicy(t *testing.T) {
	ctx := context.Background()
	store := newSeededStorage(t)
	auth := AuthService{Storage: store, Now: fixedClock}
	u, _, err := auth.Register(ctx, RegisterInput{Email: "c@x", Password: "p", Name: "C", Phone: "1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := (UserService{Storage: store}).Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	stale, err := auth.Current(ctx)
	if err != nil || stale == nil || stale.ID != u.ID {
		t.Fatalf("default restore keeps the stale session, got %+v err=%v", stale, err)
	}

	auth.ValidateOnRestore = true
	dropped, err := auth.Current(ctx)
	if err != nil || dropped != nil {
		t.Fatalf("validated restore should drop the session, got %+v err=%v", dropped, err)
	}
	if again, _ := store.GetCurrentUser(ctx); again != nil {
		t.Fatalf("session pointer should be removed")
	}
}
