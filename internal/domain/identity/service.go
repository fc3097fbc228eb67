package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dogs-adoption/internal/ports/auth"

	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL se usa cuando IssueToken recibe ttl <= 0.
const DefaultTokenTTL = 15 * time.Minute

var (
	ErrNotFound           = errors.New("identity not found")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrInactive           = errors.New("inactive user")
)

type Service struct {
	store      Store
	tokens     auth.TokenCodec
	bcryptCost int
}

func NewService(store Store, tokens auth.TokenCodec, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		store:      store,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Authenticate verifica usuario + password contra el hash bcrypt guardado.
func (s *Service) Authenticate(ctx context.Context, username, password string) (Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Identity{}, ErrInvalidCredentials
	}

	id, err := s.store.Get(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, fmt.Errorf("get identity: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(id.HashedPassword), []byte(password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}
	return id, nil
}

// IssueToken firma un token con sub=subject y expiración ahora+ttl.
func (s *Service) IssueToken(subject string, ttl time.Duration) (string, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", errors.New("issue token: empty subject")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return s.tokens.Issue(subject, ttl)
}

// ResolveIdentity valida el token y vuelve a buscar la identidad en el store.
// Cualquier falla se reporta como ErrInvalidToken.
func (s *Service) ResolveIdentity(ctx context.Context, token string) (Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, ErrInvalidToken
	}

	subject, err := s.tokens.Parse(token)
	if err != nil || strings.TrimSpace(subject) == "" {
		return Identity{}, ErrInvalidToken
	}

	id, err := s.store.Get(ctx, subject)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return id, nil
}

func (s *Service) RequireActive(id Identity) (Identity, error) {
	if id.Disabled {
		return Identity{}, ErrInactive
	}
	return id, nil
}

// Verify implementa auth.AuthVerifier para el middleware AuthContext.
func (s *Service) Verify(ctx context.Context, token string) (auth.Claims, error) {
	id, err := s.ResolveIdentity(ctx, token)
	if err != nil {
		return auth.Claims{}, err
	}
	return auth.Claims{
		Username: id.Username,
		Email:    id.Email,
		FullName: id.FullName,
		Disabled: id.Disabled,
	}, nil
}

// HashPassword genera el hash bcrypt con el costo configurado.
func (s *Service) HashPassword(password string) (string, error) {
	return HashPassword(password, s.bcryptCost)
}

func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", errors.New("hash password: empty password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
