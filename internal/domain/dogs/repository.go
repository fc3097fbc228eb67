package dogs

import (
	"context"

	"dogs-adoption/internal/platform/pagination"
)

type Repository interface {
	Create(ctx context.Context, d Dog) error
	Update(ctx context.Context, d Dog) error
	GetByID(ctx context.Context, id string) (Dog, error)

	// FindByName devuelve el primer perro con ese nombre o ErrNotFound.
	FindByName(ctx context.Context, name string) (Dog, error)

	List(ctx context.Context, page pagination.Page) ([]Dog, error)
	ListAdopted(ctx context.Context, page pagination.Page) ([]Dog, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Dog, error)

	Delete(ctx context.Context, id string) error

	// ClearOwner deja sin dueño a todos los perros de ownerID.
	ClearOwner(ctx context.Context, ownerID string) error
}
