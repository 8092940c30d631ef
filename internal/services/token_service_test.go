package services

import (
	"testing"
	"time"

	"travelgo/internal/domain/models"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	svc.Now = fixedClock
	tok, err := svc.Issue(models.User{ID: "u1", Email: "a@x", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	claims, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	actor := ActorFromClaims(claims)
	if actor.UserID != "u1" || !actor.IsAdmin() {
		t.Fatalf("unexpected actor %+v", actor)
	}

	other := NewTokenService("other", time.Hour)
	other.Now = fixedClock
	if _, err := other.Validate(tok); err == nil {
		t.Fatalf("token signed with another secret must fail")
	}

	later := NewTokenService("secret", time.Hour)
	later.Now = func() time.Time { return fixedNow.Add(2 * time.Hour) }
	if _, err := later.Validate(tok); err == nil {
		t.Fatalf("expired token must fail")
	}
}
