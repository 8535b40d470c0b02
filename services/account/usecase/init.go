package usecase

import (
	"sync"

	"github.com/safinity/safinity/internal/pkg/models"
	"github.com/safinity/safinity/internal/pkg/ratelimit"
	"github.com/safinity/safinity/services/account"
)

// AccountUC orchestrates signup, authentication, OTP, and profile flows.
// signupMu serializes the whole check-then-write sequence of every draft
// mutation and promotion; the uniqueness checks and the write must not
// interleave with another signup step.
type AccountUC struct {
	cfg         *models.Config
	accountRepo account.AccountRepo
	smsGW       account.SMSGateway
	limiter     *ratelimit.LoginLimiter

	signupMu sync.Mutex
}

// NewAccountUC creates a new account usecase instance
func NewAccountUC(
	cfg *models.Config,
	accountRepo account.AccountRepo,
	smsGW account.SMSGateway,
	limiter *ratelimit.LoginLimiter,
) *AccountUC {
	return &AccountUC{
		cfg:         cfg,
		accountRepo: accountRepo,
		smsGW:       smsGW,
		limiter:     limiter,
	}
}
