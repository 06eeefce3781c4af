package users

import (
	"context"
	"testing"

	"github.com/vanesatov/HotelesApi/internal/models"
)

func testService() *Service {
	repo := NewMemoryRepository(
		models.User{ID: "1", User: "alice", Email: "a@x.com", Token: "tok-alice"},
		models.User{ID: "2", User: "bob", Email: "b@x.com", Token: "tok-bob"},
	)
	return NewService(repo)
}

func TestValidateToken(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	ok, err := svc.ValidateToken(ctx, "tok-alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected known token to validate")
	}

	ok, err = svc.ValidateToken(ctx, "not-a-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected unknown token to be rejected")
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	u, err := svc.Login(ctx, "alice", "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil || u.User != "alice" {
		t.Fatalf("expected alice, got %v", u)
	}

	// right email, wrong user name
	u, err = svc.Login(ctx, "mallory", "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != nil {
		t.Fatalf("expected partial match to fail, got %v", u)
	}

	// right user name, wrong email
	u, err = svc.Login(ctx, "alice", "b@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != nil {
		t.Fatalf("expected partial match to fail, got %v", u)
	}

	// neither matches
	u, err = svc.Login(ctx, "nobody", "n@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != nil {
		t.Fatalf("expected unknown pair to fail, got %v", u)
	}
}

func TestLoginResultComesFromEmailLookup(t *testing.T) {
	// Two records sharing an email: the pair check passes against the second
	// record but the result is whatever the email lookup returns first. This
	// pins the store's historical two-step behavior.
	repo := NewMemoryRepository(
		models.User{ID: "1", User: "first", Email: "dup@x.com"},
		models.User{ID: "2", User: "second", Email: "dup@x.com"},
	)
	svc := NewService(repo)

	u, err := svc.Login(context.Background(), "second", "dup@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil {
		t.Fatalf("expected a user")
	}
	if u.User != "first" {
		t.Fatalf("expected the email lookup to win, got %q", u.User)
	}
}
