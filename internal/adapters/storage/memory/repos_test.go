package memory

import (
	"context"
	"errors"
	"testing"

	"dogs-adoption/internal/domain/dogs"
	"dogs-adoption/internal/domain/users"
	"dogs-adoption/internal/platform/pagination"
)

func TestDogRepo_FindByName_FirstMatch(t *testing.T) {
	repo := NewDogRepo()
	ctx := context.Background()

	for _, d := range []dogs.Dog{
		{ID: "d1", Name: "Rex"},
		{ID: "d2", Name: "Rex", IsAdopted: true},
		{ID: "d3", Name: "Luna", IsAdopted: true},
	} {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("Create %s: %v", d.ID, err)
		}
	}

	got, err := repo.FindByName(ctx, "Rex")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if got.ID != "d1" {
		t.Fatalf("expected first inserted match d1, got %s", got.ID)
	}

	if _, err := repo.FindByName(ctx, "Nope"); !errors.Is(err, dogs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDogRepo_ListAdopted_Paginates(t *testing.T) {
	repo := NewDogRepo()
	ctx := context.Background()

	for _, d := range []dogs.Dog{
		{ID: "d1", Name: "A", IsAdopted: true},
		{ID: "d2", Name: "B"},
		{ID: "d3", Name: "C", IsAdopted: true},
		{ID: "d4", Name: "D", IsAdopted: true},
	} {
		_ = repo.Create(ctx, d)
	}

	got, err := repo.ListAdopted(ctx, pagination.Page{Skip: 1, Limit: 5})
	if err != nil {
		t.Fatalf("ListAdopted: %v", err)
	}
	if len(got) != 2 || got[0].ID != "d3" || got[1].ID != "d4" {
		t.Fatalf("unexpected adopted page: %+v", got)
	}
}

func TestDogRepo_DeleteAndClearOwner(t *testing.T) {
	repo := NewDogRepo()
	ctx := context.Background()

	_ = repo.Create(ctx, dogs.Dog{ID: "d1", Name: "A", OwnerID: "u1"})
	_ = repo.Create(ctx, dogs.Dog{ID: "d2", Name: "B", OwnerID: "u1"})
	_ = repo.Create(ctx, dogs.Dog{ID: "d3", Name: "C", OwnerID: "u2"})

	if err := repo.ClearOwner(ctx, "u1"); err != nil {
		t.Fatalf("ClearOwner: %v", err)
	}
	owned, _ := repo.ListByOwner(ctx, "u1")
	if len(owned) != 0 {
		t.Fatalf("expected no dogs for u1, got %d", len(owned))
	}
	d3, _ := repo.GetByID(ctx, "d3")
	if d3.OwnerID != "u2" {
		t.Fatalf("ClearOwner touched another owner's dog")
	}

	if err := repo.Delete(ctx, "d1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "d1"); !errors.Is(err, dogs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	all, _ := repo.List(ctx, pagination.Default())
	if len(all) != 2 {
		t.Fatalf("expected 2 dogs left, got %d", len(all))
	}
}

func TestUserRepo_UniqueEmail(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, users.User{ID: "u1", Name: "Ann", Email: "ann@example.com"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, users.User{ID: "u2", Name: "Other", Email: "ann@example.com"})
	if !errors.Is(err, users.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserRepo_UpdateEmailReindexes(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	_ = repo.Create(ctx, users.User{ID: "u1", Name: "Ann", Email: "ann@example.com"})
	_ = repo.Create(ctx, users.User{ID: "u2", Name: "Bob", Email: "bob@example.com"})

	if err := repo.Update(ctx, users.User{ID: "u1", Name: "Ann", Email: "bob@example.com"}); !errors.Is(err, users.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if err := repo.Update(ctx, users.User{ID: "u1", Name: "Ann", Email: "ann2@example.com"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "ann@example.com"); !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("old email should not resolve, got %v", err)
	}
	if u, err := repo.GetByEmail(ctx, "ann2@example.com"); err != nil || u.ID != "u1" {
		t.Fatalf("new email should resolve to u1, got %+v %v", u, err)
	}
}

func TestUserRepo_Delete(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	_ = repo.Create(ctx, users.User{ID: "u1", Name: "Ann", Email: "ann@example.com"})
	if err := repo.Delete(ctx, "u1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "ann@example.com"); !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	list, _ := repo.List(ctx, pagination.Default())
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
}
