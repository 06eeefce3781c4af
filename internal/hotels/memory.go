package hotels

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/vanesatov/HotelesApi/internal/models"
)

// MemoryRepository is an in-memory Repository used by unit tests and as a
// degraded mode when no MongoDB is configured. Insertion order is preserved
// so listings are deterministic.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]models.Hotel
	order []string
	seq   int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]models.Hotel)}
}

func (m *MemoryRepository) FindAll(ctx context.Context) ([]models.Hotel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Hotel, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.store[id])
	}
	return out, nil
}

func (m *MemoryRepository) FindByID(ctx context.Context, id string) (*models.Hotel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if h, ok := m.store[id]; ok {
		return &h, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepository) FindByProvince(ctx context.Context, province string) ([]models.Hotel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Hotel{}
	for _, id := range m.order {
		if m.store[id].Provinces == province {
			out = append(out, m.store[id])
		}
	}
	return out, nil
}

func (m *MemoryRepository) FindByModality(ctx context.Context, modality string) ([]models.Hotel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Hotel{}
	for _, id := range m.order {
		if strings.Contains(m.store[id].Modalities, modality) {
			out = append(out, m.store[id])
		}
	}
	return out, nil
}

func (m *MemoryRepository) Save(ctx context.Context, h *models.Hotel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if h.ID == "" {
		m.seq++
		h.ID = fmt.Sprintf("hotel_%04d", m.seq)
	}
	if _, exists := m.store[h.ID]; !exists {
		m.order = append(m.order, h.ID)
	}
	m.store[h.ID] = *h
	return nil
}

func (m *MemoryRepository) DeleteByID(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return nil
	}
	delete(m.store, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
