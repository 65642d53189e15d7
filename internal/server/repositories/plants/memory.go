package plants

import (
	"context"
	"sync"

	"github.com/verdant/planter/internal/common"
	"github.com/verdant/planter/internal/server/models"
)

// MemoryRepository is the local storage backend: plant records held in
// memory, seeded plants first. The core performs no concurrent mutation,
// but HTTP handlers run on multiple goroutines, so the store serializes
// its own access with a mutex.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*models.Plant
}

// NewMemoryRepository builds a store pre-populated with the seeded plants.
func NewMemoryRepository() *MemoryRepository {
	r := &MemoryRepository{byID: make(map[string]*models.Plant)}
	for _, p := range Seeded() {
		r.order = append(r.order, p.ID)
		r.byID[p.ID] = p
	}
	return r
}

// clonePlant deep-copies a record. The shallow struct copy would alias the
// Landmarks slice between caller and store.
func clonePlant(p *models.Plant) *models.Plant {
	cp := *p
	cp.Landmarks = append([]string(nil), p.Landmarks...)
	return &cp
}

func (r *MemoryRepository) Create(ctx context.Context, plant *models.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := clonePlant(plant)
	r.order = append(r.order, cp.ID)
	r.byID[cp.ID] = cp
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return clonePlant(p), nil
}

func (r *MemoryRepository) ListAll(ctx context.Context) ([]*models.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Plant, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clonePlant(r.byID[id]))
	}
	return out, nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.Plant
	for _, id := range r.order {
		p := r.byID[id]
		if p.IsUserPlanted && p.OwnerID == ownerID {
			out = append(out, clonePlant(p))
		}
	}
	return out, nil
}

// Delete removes a user-planted record. Seeded plants and unknown ids both
// report false with no error.
func (r *MemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok || !p.IsUserPlanted {
		return false, nil
	}

	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
