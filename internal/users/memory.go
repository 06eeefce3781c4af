package users

import (
	"context"
	"sync"

	"github.com/vanesatov/HotelesApi/internal/models"
)

// MemoryRepository is an in-memory Repository used by unit tests and as a
// degraded mode when no MongoDB is configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryRepository(us ...models.User) *MemoryRepository {
	return &MemoryRepository{users: us}
}

func (m *MemoryRepository) FindByToken(ctx context.Context, token string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Token == token {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) ExistsByToken(ctx context.Context, token string) (bool, error) {
	u, err := m.FindByToken(ctx, token)
	return u != nil, err
}

func (m *MemoryRepository) ExistsByEmailAndUser(ctx context.Context, email, user string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email && u.User == user {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}
