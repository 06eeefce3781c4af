package sessions

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/vanesatov/HotelesApi/internal/models"
)

// Service wraps repository operations with business logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// Create stores a new session for the given user and returns the session id
// to be placed in the cookie.
func (s *Service) Create(ctx context.Context, user models.User, ttl time.Duration) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	id := hex.EncodeToString(b)
	sess := &Session{
		ID:        id,
		User:      user,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return "", err
	}
	return id, nil
}

// Get returns the session if the id is known and not expired. Expired
// sessions are cleaned up on access.
func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}
	if time.Now().UTC().After(sess.ExpiresAt) {
		_ = s.repo.DeleteByID(ctx, id)
		return nil, nil
	}
	return sess, nil
}

// Delete ends the session; the id may safely be unknown.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
