package account

import (
	"context"

	"github.com/safinity/safinity/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/safinity/safinity/services/account SMSGateway

// SMSGateway sends one SMS message. HTTP 200 plus an absent-or-non-"error"
// application status means the gateway accepted the message.
type SMSGateway interface {
	SendSMS(ctx context.Context, receiver, sender, text string) (*models.SMSResponse, error)
}
