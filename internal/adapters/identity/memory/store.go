package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dogs-adoption/internal/domain/identity"
)

// Store es el store de identidades en memoria; se siembra al arrancar y luego solo se lee.
type Store struct {
	mu         sync.RWMutex
	byUsername map[string]identity.Identity
}

func NewStore(seed ...identity.Identity) (*Store, error) {
	s := &Store{byUsername: make(map[string]identity.Identity, len(seed))}
	for _, id := range seed {
		username := strings.TrimSpace(id.Username)
		if username == "" {
			return nil, errors.New("identity store: username required")
		}
		if id.HashedPassword == "" {
			return nil, errors.New("identity store: hashed password required for " + username)
		}
		if _, exists := s.byUsername[username]; exists {
			return nil, errors.New("identity store: duplicate username " + username)
		}
		id.Username = username
		s.byUsername[username] = id
	}
	return s, nil
}

func (s *Store) Get(ctx context.Context, username string) (identity.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[strings.TrimSpace(username)]
	if !ok {
		return identity.Identity{}, identity.ErrNotFound
	}
	return id, nil
}
