package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dogs-adoption/internal/domain/users"
	"dogs-adoption/internal/platform/pagination"
)

type userRepo struct {
	mu      sync.RWMutex
	byID    map[string]users.User
	byEmail map[string]string // email -> id (índice único)
	order   []string
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID:    make(map[string]users.User),
		byEmail: make(map[string]string),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byID[u.ID]; exists {
		return errors.New("user already exists")
	}
	if _, taken := r.byEmail[u.Email]; taken {
		return users.ErrEmailTaken
	}

	u.Dogs = nil
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	r.order = append(r.order, u.ID)
	return nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, exists := r.byID[u.ID]
	if !exists {
		return users.ErrNotFound
	}
	if u.Email != prev.Email {
		if _, taken := r.byEmail[u.Email]; taken {
			return users.ErrEmailTaken
		}
		delete(r.byEmail, prev.Email)
		r.byEmail[u.Email] = u.ID
	}

	u.Dogs = nil
	r.byID[u.ID] = u
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *userRepo) List(ctx context.Context, page pagination.Page) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]users.User, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.byID[id])
	}
	return pagination.Window(all, page), nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return users.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
