package users

import (
	"context"

	"dogs-adoption/internal/platform/pagination"
)

type Repository interface {
	// Create devuelve ErrEmailTaken si el email ya existe.
	Create(ctx context.Context, u User) error
	Update(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, page pagination.Page) ([]User, error)
	Delete(ctx context.Context, id string) error
}
