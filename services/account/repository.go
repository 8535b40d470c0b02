package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/safinity/safinity/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/safinity/safinity/services/account AccountRepo

// AccountRepo represents the account repository interface. Lookup methods
// return (nil, nil) when no row matches; errors are reserved for real
// persistence failures.
type AccountRepo interface {
	// users
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByPhone(ctx context.Context, phone string) (*models.User, error)
	FindUserByPhoneVariants(ctx context.Context, variants []string) (*models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// draft signups
	FindCurrentDraft(ctx context.Context) (*models.DraftSignup, error)
	FindOtherDrafts(ctx context.Context, excludeID int64) ([]models.DraftSignup, error)
	CreateDraft(ctx context.Context, draft *models.DraftSignup) error
	UpdateDraft(ctx context.Context, draft *models.DraftSignup) error
	DeleteDraft(ctx context.Context, id int64) error
	PromoteDraft(ctx context.Context, draftID int64, user *models.User) error

	// emergency contacts
	ListEmergencyContacts(ctx context.Context, userID uuid.UUID) ([]models.EmergencyContact, error)
	SaveEmergencyContact(ctx context.Context, contact *models.EmergencyContact) error
	DeleteEmergencyContact(ctx context.Context, userID, contactID uuid.UUID) error

	// one-time codes
	StoreOTP(ctx context.Context, otp *models.OTP) error
	GetOTP(ctx context.Context, destination string) (*models.OTP, error)
	DeleteOTP(ctx context.Context, destination string) error
}
