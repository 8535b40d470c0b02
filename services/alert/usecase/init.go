package usecase

import (
	"github.com/safinity/safinity/internal/pkg/models"
	"github.com/safinity/safinity/services/alert"
)

// AlertUC fans alert messages out to a user's emergency contacts
type AlertUC struct {
	cfg       *models.Config
	alertRepo alert.AlertRepo
	smsGW     alert.SMSGateway
	location  alert.LocationProvider
}

// NewAlertUC creates a new alert usecase instance. location may be nil when
// no provider is available; dispatches then omit the location line.
func NewAlertUC(
	cfg *models.Config,
	alertRepo alert.AlertRepo,
	smsGW alert.SMSGateway,
	location alert.LocationProvider,
) *AlertUC {
	return &AlertUC{
		cfg:       cfg,
		alertRepo: alertRepo,
		smsGW:     smsGW,
		location:  location,
	}
}
