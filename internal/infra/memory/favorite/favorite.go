package infra_memory_favorite

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/humanbelnik/moviefav/internal/model"
)

// Repository keeps favorites in process memory, in insertion order.
type Repository struct {
	mu    sync.RWMutex
	items []model.Favorite
}

func New() *Repository {
	return &Repository{
		items: make([]model.Favorite, 0),
	}
}

func (r *Repository) Store(_ context.Context, f model.Favorite) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f.ID = uuid.NewString()
	r.items = append(r.items, f)
	return f.ID, nil
}

func (r *Repository) LoadByOwner(_ context.Context, ownerEmail string) ([]model.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ff := make([]model.Favorite, 0)
	for _, f := range r.items {
		if f.OwnerEmail == ownerEmail {
			ff = append(ff, f)
		}
	}
	return ff, nil
}

func (r *Repository) DeleteByOwner(_ context.Context, ownerEmail string, ID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, f := range r.items {
		if f.ID == ID && f.OwnerEmail == ownerEmail {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
