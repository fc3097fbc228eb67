package dogs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dogs-adoption/internal/platform/pagination"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("dog not found")
	ErrOwnerNotFound = errors.New("owner not found")
	ErrInvalidInput  = errors.New("invalid input")
)

type Service struct {
	repo     Repository
	pictures PictureSource
	owners   OwnerResolver
	now      func() time.Time
}

func NewService(repo Repository, pictures PictureSource, owners OwnerResolver) *Service {
	return &Service{
		repo:     repo,
		pictures: pictures,
		owners:   owners,
		now:      time.Now,
	}
}

type CreateInput struct {
	Name      string
	IsAdopted bool
}

// UpdateInput es un update parcial: nil = no tocar.
type UpdateInput struct {
	Name      *string
	IsAdopted *bool
}

func (in UpdateInput) Empty() bool {
	return in.Name == nil && in.IsAdopted == nil
}

func (s *Service) List(ctx context.Context, page pagination.Page) ([]Dog, error) {
	return s.repo.List(ctx, page.Normalize())
}

func (s *Service) ListAdopted(ctx context.Context, page pagination.Page) ([]Dog, error) {
	return s.repo.ListAdopted(ctx, page.Normalize())
}

func (s *Service) GetByName(ctx context.Context, name string) (Dog, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Dog{}, ErrNotFound
	}
	return s.repo.FindByName(ctx, name)
}

// Create da de alta un perro sin dueño.
func (s *Service) Create(ctx context.Context, in CreateInput) (Dog, error) {
	return s.create(ctx, "", in)
}

// CreateForOwner da de alta un perro cuyo dueño es el usuario con ese email.
func (s *Service) CreateForOwner(ctx context.Context, email string, in CreateInput) (Dog, error) {
	email = strings.TrimSpace(email)
	if email == "" || s.owners == nil {
		return Dog{}, ErrOwnerNotFound
	}

	ownerID, err := s.owners.OwnerIDByEmail(ctx, email)
	if err != nil {
		return Dog{}, err
	}
	return s.create(ctx, ownerID, in)
}

func (s *Service) create(ctx context.Context, ownerID string, in CreateInput) (Dog, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Dog{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	d := Dog{
		ID:         uuid.NewString(),
		Name:       name,
		Picture:    s.picture(ctx),
		CreateDate: s.now().Format(CreateDateLayout),
		IsAdopted:  in.IsAdopted,
		OwnerID:    ownerID,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

func (s *Service) picture(ctx context.Context) string {
	if s.pictures == nil {
		return ""
	}
	return s.pictures.Picture(ctx)
}

// Update mergea solo los campos presentes en in sobre existing.
// id, picture, create_date y dueño nunca cambian por esta vía.
func (s *Service) Update(ctx context.Context, existing Dog, in UpdateInput) (Dog, error) {
	if strings.TrimSpace(existing.ID) == "" {
		return Dog{}, ErrNotFound
	}

	updated := existing
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Dog{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		updated.Name = name
	}
	if in.IsAdopted != nil {
		updated.IsAdopted = *in.IsAdopted
	}

	if in.Empty() {
		return existing, nil
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return Dog{}, err
	}
	return s.repo.GetByID(ctx, updated.ID)
}

// Remove borra el primer perro con ese nombre y devuelve su snapshot previo.
// Si no existe devuelve ErrNotFound (no falla de otra forma).
func (s *Service) Remove(ctx context.Context, name string) (Dog, error) {
	found, err := s.GetByName(ctx, name)
	if err != nil {
		return Dog{}, err
	}

	snapshot, err := s.repo.GetByID(ctx, found.ID)
	if err != nil {
		return Dog{}, err
	}

	if err := s.repo.Delete(ctx, snapshot.ID); err != nil {
		return Dog{}, err
	}
	return snapshot, nil
}
