package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/vanesatov/HotelesApi/internal/models"
)

// fake repo for testing
type fakeRepo struct {
	store map[string]*Session
}

func (f *fakeRepo) Create(ctx context.Context, s *Session) error {
	if f.store == nil {
		f.store = map[string]*Session{}
	}
	f.store[s.ID] = s
	return nil
}
func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Session, error) {
	if f.store == nil {
		return nil, nil
	}
	s, ok := f.store[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}
func (f *fakeRepo) DeleteByID(ctx context.Context, id string) error {
	if f.store == nil {
		return nil
	}
	delete(f.store, id)
	return nil
}

func TestCreateAndGetSession(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()
	u := models.User{ID: "u1", User: "alice", Email: "a@x.com", Token: "tok"}
	id, err := svc.Create(ctx, u, time.Hour)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id == "" {
		t.Fatalf("expected session id")
	}
	sess, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if sess == nil || sess.User.Email != "a@x.com" {
		t.Fatalf("unexpected session: %v", sess)
	}
	// logout
	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	sess2, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get after delete error: %v", err)
	}
	if sess2 != nil {
		t.Fatalf("expected session to be gone after delete")
	}
}

func TestGetExpiredSessionCleansUp(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()
	id, err := svc.Create(ctx, models.User{User: "bob"}, -time.Minute)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	sess, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected expired session to be treated as missing")
	}
	if _, ok := repo.store[id]; ok {
		t.Fatalf("expected expired session to be removed from the store")
	}
}

func TestGetUnknownSession(t *testing.T) {
	svc := NewService(&fakeRepo{})
	sess, err := svc.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected nil session for unknown id")
	}
}
