package auth

import (
	"context"
	"time"
)

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenCodec firma y valida tokens bearer.
// Parse devuelve el subject; falla si la firma, el algoritmo o la expiración no son válidos.
type TokenCodec interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Parse(token string) (string, error)
}
