package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"dogs-adoption/internal/domain/dogs"
	"dogs-adoption/internal/platform/pagination"
)

const dogColumns = `id, name, picture, create_date, is_adopted, user_id`

type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dogs (id, name, picture, create_date, is_adopted, user_id)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		d.ID,
		d.Name,
		d.Picture,
		d.CreateDate,
		d.IsAdopted,
		toNullString(d.OwnerID),
	)
	return err
}

// Update solo toca los campos editables (name, is_adopted).
func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE dogs
		SET name = $2, is_adopted = $3
		WHERE id = $1
	`, d.ID, d.Name, d.IsAdopted)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return dogs.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+dogColumns+` FROM dogs WHERE id = $1`, id)
	return scanDog(row)
}

func (r *DogsRepo) FindByName(ctx context.Context, name string) (dogs.Dog, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+dogColumns+`
		FROM dogs
		WHERE name = $1
		ORDER BY seq
		LIMIT 1
	`, name)
	return scanDog(row)
}

func (r *DogsRepo) List(ctx context.Context, page pagination.Page) ([]dogs.Dog, error) {
	page = page.Normalize()
	return r.query(ctx, `
		SELECT `+dogColumns+`
		FROM dogs
		ORDER BY seq
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Skip)
}

func (r *DogsRepo) ListAdopted(ctx context.Context, page pagination.Page) ([]dogs.Dog, error) {
	page = page.Normalize()
	return r.query(ctx, `
		SELECT `+dogColumns+`
		FROM dogs
		WHERE is_adopted = TRUE
		ORDER BY seq
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Skip)
}

func (r *DogsRepo) ListByOwner(ctx context.Context, ownerID string) ([]dogs.Dog, error) {
	return r.query(ctx, `
		SELECT `+dogColumns+`
		FROM dogs
		WHERE user_id = $1
		ORDER BY seq
	`, ownerID)
}

func (r *DogsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return dogs.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) ClearOwner(ctx context.Context, ownerID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE dogs SET user_id = NULL WHERE user_id = $1`, ownerID)
	return err
}

func (r *DogsRepo) query(ctx context.Context, q string, args ...any) ([]dogs.Dog, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDog(s scanner) (dogs.Dog, error) {
	var (
		d     dogs.Dog
		owner sql.NullString
	)
	if err := s.Scan(&d.ID, &d.Name, &d.Picture, &d.CreateDate, &d.IsAdopted, &owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dogs.Dog{}, dogs.ErrNotFound
		}
		return dogs.Dog{}, err
	}
	if owner.Valid {
		d.OwnerID = owner.String
	}
	return d, nil
}

func toNullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
