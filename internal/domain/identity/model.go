package identity

import "context"

// Identity es una cuenta que puede pedir tokens (tabla de una sola entrada en la práctica).
type Identity struct {
	Username       string
	Email          string
	FullName       string
	Disabled       bool
	HashedPassword string
}

// Store es el repositorio de identidades; de solo lectura en runtime.
type Store interface {
	// Get devuelve ErrNotFound si el username no existe.
	Get(ctx context.Context, username string) (Identity, error)
}
