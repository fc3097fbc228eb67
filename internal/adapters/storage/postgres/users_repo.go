package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"dogs-adoption/internal/domain/users"
	"dogs-adoption/internal/platform/pagination"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, lastname, email)
		VALUES ($1,$2,$3,$4)
	`, u.ID, u.Name, u.LastName, u.Email)
	return mapUserErr(err)
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET name = $2, lastname = $3, email = $4
		WHERE id = $1
	`, u.ID, u.Name, u.LastName, u.Email)
	if err != nil {
		return mapUserErr(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, users.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT id, name, lastname, email FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, lastname, email FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UsersRepo) List(ctx context.Context, page pagination.Page) ([]users.User, error) {
	page = page.Normalize()
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, lastname, email
		FROM users
		ORDER BY seq
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Skip)
	if err != nil {
		return nil, err
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func scanUser(s scanner) (users.User, error) {
	var u users.User
	if err := s.Scan(&u.ID, &u.Name, &u.LastName, &u.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

func mapUserErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return users.ErrEmailTaken
	}
	return err
}
