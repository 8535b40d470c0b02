package alert

import (
	"context"

	"github.com/safinity/safinity/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/safinity/safinity/services/alert AlertUC

// AlertUC represents the alert usecase interface
type AlertUC interface {
	Dispatch(ctx context.Context, req *models.DispatchRequest) *models.DispatchResult
}
