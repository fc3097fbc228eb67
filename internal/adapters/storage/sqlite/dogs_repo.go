package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
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
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO dogs (id, name, picture, create_date, is_adopted, user_id) VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.Name, d.Picture, d.CreateDate, d.IsAdopted, nullable(d.OwnerID),
	)
	if err != nil {
		return fmt.Errorf("insert dog: %w", err)
	}
	return nil
}

func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE dogs SET name = ?, is_adopted = ? WHERE id = ?`,
		d.Name, d.IsAdopted, d.ID,
	)
	if err != nil {
		return fmt.Errorf("update dog: %w", err)
	}
	return affected(res, dogs.ErrNotFound)
}

func (r *DogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+dogColumns+` FROM dogs WHERE id = ?`, id)
	return scanDog(row)
}

func (r *DogsRepo) FindByName(ctx context.Context, name string) (dogs.Dog, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+dogColumns+` FROM dogs WHERE name = ? ORDER BY rowid LIMIT 1`, name)
	return scanDog(row)
}

func (r *DogsRepo) List(ctx context.Context, page pagination.Page) ([]dogs.Dog, error) {
	page = page.Normalize()
	return r.query(ctx,
		`SELECT `+dogColumns+` FROM dogs ORDER BY rowid LIMIT ? OFFSET ?`, page.Limit, page.Skip)
}

func (r *DogsRepo) ListAdopted(ctx context.Context, page pagination.Page) ([]dogs.Dog, error) {
	page = page.Normalize()
	return r.query(ctx,
		`SELECT `+dogColumns+` FROM dogs WHERE is_adopted = 1 ORDER BY rowid LIMIT ? OFFSET ?`, page.Limit, page.Skip)
}

func (r *DogsRepo) ListByOwner(ctx context.Context, ownerID string) ([]dogs.Dog, error) {
	return r.query(ctx,
		`SELECT `+dogColumns+` FROM dogs WHERE user_id = ? ORDER BY rowid`, ownerID)
}

func (r *DogsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dogs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete dog: %w", err)
	}
	return affected(res, dogs.ErrNotFound)
}

func (r *DogsRepo) ClearOwner(ctx context.Context, ownerID string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE dogs SET user_id = NULL WHERE user_id = ?`, ownerID); err != nil {
		return fmt.Errorf("clear owner: %w", err)
	}
	return nil
}

func (r *DogsRepo) query(ctx context.Context, q string, args ...any) ([]dogs.Dog, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query dogs: %w", err)
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
		return dogs.Dog{}, fmt.Errorf("scan dog: %w", err)
	}
	d.OwnerID = owner.String
	return d, nil
}

func nullable(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}

func affected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
