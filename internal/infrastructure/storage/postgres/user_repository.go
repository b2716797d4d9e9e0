package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"goldkeeper/internal/domain/user"
)

const userColumns = `id, username, password_hash, full_name, email, role, is_active, created_at, updated_at`

func NewUserRepository(pool DBTX, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With(slog.String("component", "user_repository")),
	}
}

type UserRepository struct {
	pool DBTX
	log  *slog.Logger
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (int, error) {
	const query = `
		INSERT INTO users (username, password_hash, full_name, email, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int
	err := r.pool.QueryRow(ctx, query,
		u.Username, u.Password, u.FullName, u.Email, string(u.Role), u.IsActive,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, user.ErrUsernameTaken
		}
		r.log.Error("failed to create user", slog.String("username", u.Username), slog.Any("error", err))
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.findOne(ctx, query, username)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (user.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list users", slog.Any("error", err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) error {
	const query = `
		UPDATE users
		SET full_name = $2, email = $3, role = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, u.ID, u.FullName, u.Email, string(u.Role), u.IsActive)
	if err != nil {
		r.log.Error("failed to update user", slog.Int("user_id", u.ID), slog.Any("error", err))
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete user", slog.Int("user_id", id), slog.Any("error", err))
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func scanUser(row pgx.Row) (user.User, error) {
	var (
		u    user.User
		role string
	)
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.FullName, &u.Email, &role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	u.Role = user.Role(role)
	return u, err
}
