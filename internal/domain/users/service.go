package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dogs-adoption/internal/domain/dogs"
	"dogs-adoption/internal/platform/pagination"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	dogs dogs.Repository
}

// NewService recibe el repo de perros (no el servicio) para armar la lista
// anidada y desasignar dueños al borrar, sin ciclo entre servicios.
func NewService(repo Repository, dogRepo dogs.Repository) *Service {
	return &Service{
		repo: repo,
		dogs: dogRepo,
	}
}

type CreateInput struct {
	Name     string
	LastName string
	Email    string
}

// UpdateInput es un update parcial: nil = no tocar.
type UpdateInput struct {
	Name     *string
	LastName *string
	Email    *string
}

func (s *Service) List(ctx context.Context, page pagination.Page) ([]User, error) {
	items, err := s.repo.List(ctx, page.Normalize())
	if err != nil {
		return nil, err
	}
	for i := range items {
		if err := s.attachDogs(ctx, &items[i]); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return User{}, ErrNotFound
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	if err := s.attachDogs(ctx, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// OwnerIDByEmail implementa dogs.OwnerResolver.
func (s *Service) OwnerIDByEmail(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return "", dogs.ErrOwnerNotFound
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", dogs.ErrOwnerNotFound
		}
		return "", err
	}
	return u.ID, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	u := User{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(in.Name),
		LastName: strings.TrimSpace(in.LastName),
		Email:    normalizeEmail(in.Email),
		Dogs:     []dogs.Dog{},
	}
	if u.Name == "" {
		return User{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !validEmail(u.Email) {
		return User{}, fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	}

	if _, err := s.repo.GetByEmail(ctx, u.Email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Update mergea solo los campos presentes en in sobre existing.
func (s *Service) Update(ctx context.Context, existing User, in UpdateInput) (User, error) {
	if strings.TrimSpace(existing.ID) == "" {
		return User{}, ErrNotFound
	}

	updated := existing
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return User{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		updated.Name = name
	}
	if in.LastName != nil {
		updated.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if !validEmail(email) {
			return User{}, fmt.Errorf("%w: email is not valid", ErrInvalidInput)
		}
		if email != existing.Email {
			if _, err := s.repo.GetByEmail(ctx, email); err == nil {
				return User{}, ErrEmailTaken
			} else if !errors.Is(err, ErrNotFound) {
				return User{}, err
			}
		}
		updated.Email = email
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return User{}, err
	}

	out, err := s.repo.GetByID(ctx, updated.ID)
	if err != nil {
		return User{}, err
	}
	if err := s.attachDogs(ctx, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// Remove borra el usuario por email y devuelve su snapshot previo.
// Sus perros quedan sin dueño (no se borran en cascada).
func (s *Service) Remove(ctx context.Context, email string) (User, error) {
	found, err := s.GetByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}

	if s.dogs != nil {
		if err := s.dogs.ClearOwner(ctx, found.ID); err != nil {
			return User{}, fmt.Errorf("detach dogs: %w", err)
		}
	}
	if err := s.repo.Delete(ctx, found.ID); err != nil {
		return User{}, err
	}
	return found, nil
}

func (s *Service) attachDogs(ctx context.Context, u *User) error {
	u.Dogs = []dogs.Dog{}
	if s.dogs == nil {
		return nil
	}
	owned, err := s.dogs.ListByOwner(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("list dogs of user: %w", err)
	}
	u.Dogs = owned
	return nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// validEmail es un chequeo mínimo (algo@algo), no RFC 5322.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " /")
}
