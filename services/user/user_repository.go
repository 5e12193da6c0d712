package userservice

import (
	"context"
	"database/sql"
	"fmt"

	"assetdesk/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const userColumns = `id, email, password_hash, first_name, last_name, role, created_at, archived_at`

type UserRepository interface {
	CreateUser(ctx context.Context, user User) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
}

type PostgresUserRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &PostgresUserRepository{DB: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, user User) (User, error) {
	var created User
	err := r.DB.GetContext(ctx, &created, `
		INSERT INTO users (email, password_hash, first_name, last_name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Role)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return User{}, models.ConflictError{Tag: user.Email, Reason: "email already registered"}
		}
		return User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return created, nil
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := r.DB.GetContext(ctx, &user, `
		SELECT `+userColumns+` FROM users WHERE email = $1 AND archived_at IS NULL`, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, models.NotFoundError{Resource: "user", Key: email}
		}
		return User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	var user User
	err := r.DB.GetContext(ctx, &user, `
		SELECT `+userColumns+` FROM users WHERE id = $1 AND archived_at IS NULL`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, models.NotFoundError{Resource: "user", Key: id.String()}
		}
		return User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
