package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/safinity/safinity/internal/pkg/models"
)

// ListEmergencyContacts returns all emergency contacts for a user
func (r *AccountRepo) ListEmergencyContacts(ctx context.Context, userID uuid.UUID) ([]models.EmergencyContact, error) {
	var contacts []models.EmergencyContact
	err := r.db.SelectContext(ctx, &contacts, `
		SELECT * FROM emergency_contacts
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency contacts: %w", err)
	}
	return contacts, nil
}

// SaveEmergencyContact inserts a contact, or updates the existing row when
// the user already has a contact with the same phone number. The
// (user_id, phone_number) pair is unique.
func (r *AccountRepo) SaveEmergencyContact(ctx context.Context, contact *models.EmergencyContact) error {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO emergency_contacts (id, user_id, name, phone_number, relationship, created_at)
		VALUES (:id, :user_id, :name, :phone_number, :relationship, :created_at)
		ON CONFLICT (user_id, phone_number) DO UPDATE SET
			name = EXCLUDED.name,
			relationship = EXCLUDED.relationship
		RETURNING id, created_at
	`
	rows, err := r.db.NamedQueryContext(ctx, query, contact)
	if err != nil {
		return fmt.Errorf("failed to save emergency contact: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&contact.ID, &contact.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan saved contact: %w", err)
		}
	}
	return nil
}

// DeleteEmergencyContact removes one contact belonging to the given user
func (r *AccountRepo) DeleteEmergencyContact(ctx context.Context, userID, contactID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM emergency_contacts WHERE id = $1 AND user_id = $2
	`, contactID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete emergency contact: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("emergency contact not found")
	}
	return nil
}
