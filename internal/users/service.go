package users

import (
	"context"

	"github.com/vanesatov/HotelesApi/internal/models"
)

// Service encapsulates the security checks backed by the user store: bearer
// token validation for destructive API calls and the two-field login used by
// the web layer.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// ValidateToken reports whether any user record carries exactly this token.
// Tokens are pre-provisioned on user documents and never expire; a token is
// valid until the record is edited out-of-band.
func (s *Service) ValidateToken(ctx context.Context, token string) (bool, error) {
	return s.repo.ExistsByToken(ctx, token)
}

// Login succeeds only when a record matches BOTH the user name and the email.
// On success the returned record is looked up by email alone, mirroring the
// store's historical access pattern: if two records ever shared an email, the
// one returned is whichever the email lookup finds, not necessarily the one
// that satisfied the pair check. On failure the result is nil and callers
// must not reveal which field was wrong.
func (s *Service) Login(ctx context.Context, user, email string) (*models.User, error) {
	ok, err := s.repo.ExistsByEmailAndUser(ctx, email, user)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return s.repo.FindByEmail(ctx, email)
}
