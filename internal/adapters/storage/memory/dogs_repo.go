package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dogs-adoption/internal/domain/dogs"
	"dogs-adoption/internal/platform/pagination"
)

// dogRepo guarda el orden de inserción para emular el orden natural de una tabla.
type dogRepo struct {
	mu    sync.RWMutex
	byID  map[string]dogs.Dog
	order []string
}

func NewDogRepo() dogs.Repository {
	return &dogRepo{
		byID: make(map[string]dogs.Dog),
	}
}

func (r *dogRepo) Create(ctx context.Context, d dogs.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dog id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("dog already exists")
	}
	r.byID[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

func (r *dogRepo) Update(ctx context.Context, d dogs.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[d.ID]; !exists {
		return dogs.ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *dogRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	return d, nil
}

func (r *dogRepo) FindByName(ctx context.Context, name string) (dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if d := r.byID[id]; d.Name == name {
			return d, nil
		}
	}
	return dogs.Dog{}, dogs.ErrNotFound
}

func (r *dogRepo) List(ctx context.Context, page pagination.Page) ([]dogs.Dog, error) {
	return r.filter(page, func(dogs.Dog) bool { return true }), nil
}

func (r *dogRepo) ListAdopted(ctx context.Context, page pagination.Page) ([]dogs.Dog, error) {
	return r.filter(page, func(d dogs.Dog) bool { return d.IsAdopted }), nil
}

func (r *dogRepo) ListByOwner(ctx context.Context, ownerID string) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Dog, 0)
	for _, id := range r.order {
		if d := r.byID[id]; d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *dogRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return dogs.ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *dogRepo) ClearOwner(ctx context.Context, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, d := range r.byID {
		if d.OwnerID == ownerID {
			d.OwnerID = ""
			r.byID[id] = d
		}
	}
	return nil
}

func (r *dogRepo) filter(page pagination.Page, keep func(dogs.Dog) bool) []dogs.Dog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]dogs.Dog, 0, len(r.order))
	for _, id := range r.order {
		if d := r.byID[id]; keep(d) {
			matched = append(matched, d)
		}
	}
	return pagination.Window(matched, page)
}
