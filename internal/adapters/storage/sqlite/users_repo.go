package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dogs-adoption/internal/domain/users"
	"dogs-adoption/internal/platform/pagination"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, lastname, email) VALUES (?, ?, ?, ?)`,
		u.ID, u.Name, u.LastName, u.Email,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, lastname = ?, email = ? WHERE id = ?`,
		u.Name, u.LastName, u.Email, u.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrEmailTaken
		}
		return fmt.Errorf("update user: %w", err)
	}
	return affected(res, users.ErrNotFound)
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, lastname, email FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, lastname, email FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *UsersRepo) List(ctx context.Context, page pagination.Page) ([]users.User, error) {
	page = page.Normalize()
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, lastname, email FROM users ORDER BY rowid LIMIT ? OFFSET ?`, page.Limit, page.Skip)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return affected(res, users.ErrNotFound)
}

func scanUser(s scanner) (users.User, error) {
	var u users.User
	if err := s.Scan(&u.ID, &u.Name, &u.LastName, &u.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, fmt.Errorf("scan user: %w", err)
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
