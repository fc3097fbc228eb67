package memory

import (
	"context"
	"errors"
	"testing"

	"dogs-adoption/internal/domain/identity"
)

func TestStore_Get(t *testing.T) {
	s, err := NewStore(identity.Identity{
		Username:       "johndoe",
		Email:          "johndoe@example.com",
		HashedPassword: "$2a$04$hash",
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	got, err := s.Get(context.Background(), "johndoe")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Email != "johndoe@example.com" {
		t.Fatalf("unexpected identity %+v", got)
	}

	if _, err := s.Get(context.Background(), "alice"); !errors.Is(err, identity.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNewStore_RejectsInvalidSeed(t *testing.T) {
	tests := []struct {
		name string
		seed []identity.Identity
	}{
		{"empty username", []identity.Identity{{Username: " ", HashedPassword: "h"}}},
		{"missing hash", []identity.Identity{{Username: "johndoe"}}},
		{"duplicate", []identity.Identity{
			{Username: "johndoe", HashedPassword: "h"},
			{Username: "johndoe", HashedPassword: "h2"},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewStore(tc.seed...); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
