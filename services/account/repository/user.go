package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/safinity/safinity/internal/pkg/models"
)

// FindUserByEmail retrieves a user by exact email match
func (r *AccountRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// FindUserByPhone retrieves a user by exact phone match
func (r *AccountRepo) FindUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE phone_number = $1`, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by phone: %w", err)
	}
	return &user, nil
}

// FindUserByPhoneVariants retrieves a user whose stored phone matches any of
// the given representations. Stored numbers may predate canonicalization, so
// lookups try every plausible form instead of only the normalized one.
func (r *AccountRepo) FindUserByPhoneVariants(ctx context.Context, variants []string) (*models.User, error) {
	if len(variants) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM users WHERE phone_number IN (?)`, variants)
	if err != nil {
		return nil, fmt.Errorf("failed to build variant query: %w", err)
	}
	query = r.db.Rebind(query)

	var user models.User
	err = r.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by phone variants: %w", err)
	}
	return &user, nil
}

// FindUserByID retrieves a user by ID
func (r *AccountRepo) FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// CreateUser creates a new user in the database
func (r *AccountRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, email, phone_number, password_hash, country,
			full_name, date_of_birth, gender, address, profile_picture,
			is_verified, last_phone_change, created_at, updated_at
		) VALUES (:id, :email, :phone_number, :password_hash, :country,
			:full_name, :date_of_birth, :gender, :address, :profile_picture,
			:is_verified, :last_phone_change, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// UpdateUser updates all mutable fields of a user
func (r *AccountRepo) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	query := `
		UPDATE users SET
			email = :email,
			phone_number = :phone_number,
			country = :country,
			full_name = :full_name,
			date_of_birth = :date_of_birth,
			gender = :gender,
			address = :address,
			profile_picture = :profile_picture,
			last_phone_change = :last_phone_change,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

// DeleteUser removes a user and their emergency contacts in one transaction
func (r *AccountRepo) DeleteUser(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM emergency_contacts WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete emergency contacts: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user not found")
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
