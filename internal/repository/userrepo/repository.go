package userrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"texstock/internal/domain"
	"texstock/internal/errors"
	"texstock/internal/pkg/logger"
)

// UserRepository persists operator accounts.
type UserRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *UserRepository {
	return &UserRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// FindByEmail returns the account registered under the given e-mail.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
        SELECT id, full_name, email, password_hash, role, created_at, updated_at
        FROM users
        WHERE email = $1`

	var user domain.User
	err := r.DB.QueryRowContext(ctxTimeout, query, email).Scan(
		&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.User{}, errors.NewNotFoundError(fmt.Sprintf("no user with email %s", email))
	}
	if err != nil {
		r.logger.Error("failed to fetch user by email", err)
		return domain.User{}, errors.NewDBError("failed to fetch user by email", err)
	}

	return user, nil
}

// FindAll lists every account.
func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
        SELECT id, full_name, email, password_hash, role, created_at, updated_at
        FROM users
        ORDER BY email ASC`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("failed to list users", err)
		return nil, errors.NewDBError("failed to list users", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, errors.NewDBError("failed to scan user row", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("failed to iterate users", err)
	}

	return users, nil
}

// UpdateRole changes an account's role and returns the updated record.
func (r *UserRepository) UpdateRole(ctx context.Context, id string, role domain.UserRole) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
        UPDATE users
        SET role = $1, updated_at = $2
        WHERE id = $3
        RETURNING id, full_name, email, password_hash, role, created_at, updated_at`

	var user domain.User
	err := r.DB.QueryRowContext(ctxTimeout, query, role, time.Now(), id).Scan(
		&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.User{}, errors.NewNotFoundError(fmt.Sprintf("no user with id %s", id))
	}
	if err != nil {
		r.logger.Error("failed to update user role", err)
		return domain.User{}, errors.NewDBError("failed to update user role", err)
	}

	r.logger.Info("user role updated", map[string]interface{}{"id": id, "role": role})
	return user, nil
}
