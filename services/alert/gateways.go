package alert

import (
	"context"

	"github.com/safinity/safinity/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/safinity/safinity/services/alert SMSGateway,LocationProvider

// SMSGateway sends one SMS message to a contact
type SMSGateway interface {
	SendSMS(ctx context.Context, receiver, sender, text string) (*models.SMSResponse, error)
}

// LocationProvider reports the device's current position. Implementations
// may fail or time out; the dispatcher treats location as best-effort.
type LocationProvider interface {
	GetCurrentLocation(ctx context.Context) (*models.Location, error)
}
