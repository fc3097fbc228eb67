package dogs

import "context"

// PictureSource entrega la URL de foto para un perro nuevo.
// Implementaciones deben devolver siempre algo (fallback incluido).
type PictureSource interface {
	Picture(ctx context.Context) string
}

// OwnerResolver resuelve el id de un usuario por email.
// Lo implementa users.Service; se define acá para evitar ciclos (users -> dogs).
// Debe devolver ErrOwnerNotFound si el email no existe.
type OwnerResolver interface {
	OwnerIDByEmail(ctx context.Context, email string) (string, error)
}
