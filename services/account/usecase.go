package account

import (
	"context"

	"github.com/safinity/safinity/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/safinity/safinity/services/account AccountUC

// AccountUC represents the account usecase interface
type AccountUC interface {
	// signup state machine
	CreateOrUpdateDraft(ctx context.Context, req *models.DraftRequest) (*models.DraftSignup, error)
	PromoteBasic(ctx context.Context) (*models.User, error)
	PromoteFull(ctx context.Context, profile *models.ProfileCompletion) (*models.User, error)

	// OTP lifecycle
	IssueOTP(ctx context.Context, destination string) *models.OTPResult
	VerifyOTP(ctx context.Context, destination, code string) *models.OTPResult

	// authentication
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	LookupCredentials(ctx context.Context, identifier, password string) (*models.User, error)

	// profile
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *models.ProfileUpdateRequest) (*models.User, error)
	DeleteAccount(ctx context.Context, userID string) error

	// emergency contacts
	ListContacts(ctx context.Context, userID string) ([]models.EmergencyContact, error)
	SaveContact(ctx context.Context, userID string, contact *models.EmergencyContact) (*models.EmergencyContact, error)
	DeleteContact(ctx context.Context, userID, contactID string) error
}
