package alert

import (
	"context"

	"github.com/google/uuid"

	"github.com/safinity/safinity/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/safinity/safinity/services/alert AlertRepo

// AlertRepo is the slice of persistence the dispatcher needs: the alerting
// user and their emergency contacts. Lookups return (nil, nil) when no row
// matches.
type AlertRepo interface {
	FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListEmergencyContacts(ctx context.Context, userID uuid.UUID) ([]models.EmergencyContact, error)
}
