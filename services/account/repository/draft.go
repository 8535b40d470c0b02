package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/safinity/safinity/internal/pkg/models"
)

// FindCurrentDraft returns the most recently created draft signup, the one
// the signup flow treats as active. Older drafts are superseded, not current.
func (r *AccountRepo) FindCurrentDraft(ctx context.Context) (*models.DraftSignup, error) {
	var draft models.DraftSignup
	err := r.db.GetContext(ctx, &draft, `
		SELECT * FROM draft_signups
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current draft: %w", err)
	}
	return &draft, nil
}

// FindOtherDrafts returns all drafts except the given one
func (r *AccountRepo) FindOtherDrafts(ctx context.Context, excludeID int64) ([]models.DraftSignup, error) {
	var drafts []models.DraftSignup
	err := r.db.SelectContext(ctx, &drafts, `
		SELECT * FROM draft_signups WHERE id != $1
	`, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get other drafts: %w", err)
	}
	return drafts, nil
}

// CreateDraft inserts a new draft signup and fills in its generated ID
func (r *AccountRepo) CreateDraft(ctx context.Context, draft *models.DraftSignup) error {
	now := time.Now()
	draft.CreatedAt = now
	draft.UpdatedAt = now

	query := `
		INSERT INTO draft_signups (email, phone_number, password_hash, country, created_at, updated_at)
		VALUES (:email, :phone_number, :password_hash, :country, :created_at, :updated_at)
		RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, query, draft)
	if err != nil {
		return fmt.Errorf("failed to insert draft: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&draft.ID); err != nil {
			return fmt.Errorf("failed to scan draft id: %w", err)
		}
	}
	return nil
}

// UpdateDraft persists the draft's current field values
func (r *AccountRepo) UpdateDraft(ctx context.Context, draft *models.DraftSignup) error {
	draft.UpdatedAt = time.Now()

	query := `
		UPDATE draft_signups SET
			email = :email,
			phone_number = :phone_number,
			password_hash = :password_hash,
			country = :country,
			updated_at = :updated_at
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, draft)
	if err != nil {
		return fmt.Errorf("failed to update draft: %w", err)
	}
	return nil
}

// DeleteDraft removes a draft signup
func (r *AccountRepo) DeleteDraft(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM draft_signups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// PromoteDraft creates the user and deletes the draft in one transaction.
// Either both happen or neither does.
func (r *AccountRepo) PromoteDraft(ctx context.Context, draftID int64, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (id, email, phone_number, password_hash, country,
			full_name, date_of_birth, gender, address, profile_picture,
			is_verified, last_phone_change, created_at, updated_at
		) VALUES (:id, :email, :phone_number, :password_hash, :country,
			:full_name, :date_of_birth, :gender, :address, :profile_picture,
			:is_verified, :last_phone_change, :created_at, :updated_at)
	`
	if _, err = tx.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert promoted user: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM draft_signups WHERE id = $1`, draftID); err != nil {
		return fmt.Errorf("failed to delete promoted draft: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
