package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/safinity/safinity/internal/pkg/logger"
	"github.com/safinity/safinity/internal/pkg/models"
	"github.com/safinity/safinity/internal/utils"
)

// generateOTPCode produces a uniformly random 6-digit code, leading zeros
// allowed
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// IssueOTP generates a fresh code for the destination, sends it by SMS, and
// stores it as the destination's only live code. A send failure leaves no
// live code behind: the newest issuance wins even when it fails.
func (u *AccountUC) IssueOTP(ctx context.Context, destination string) *models.OTPResult {
	dest := utils.NormalizePhoneNumber(destination)
	if dest == "" {
		return &models.OTPResult{Status: models.OTPStatusError, Message: "destination phone number is required"}
	}

	if err := u.accountRepo.DeleteOTP(ctx, dest); err != nil {
		logger.Warn("Failed to clear previous OTP",
			logger.String("destination", dest),
			logger.ErrorField(err))
	}

	code, err := generateOTPCode()
	if err != nil {
		return &models.OTPResult{Status: models.OTPStatusError, Message: "failed to generate verification code"}
	}

	text := fmt.Sprintf("Your Safinity verification code is %s. It expires in %d seconds.",
		code, u.cfg.OTP.TTLSecs)

	if _, err := u.smsGW.SendSMS(ctx, dest, u.cfg.SMS.SenderLabel, text); err != nil {
		logger.Error("Failed to send OTP",
			logger.String("destination", dest),
			logger.ErrorField(err))
		return &models.OTPResult{Status: models.OTPStatusError, Message: "failed to send verification code"}
	}

	otp := &models.OTP{
		Destination: dest,
		Code:        code,
		IssuedAt:    time.Now(),
	}
	if err := u.accountRepo.StoreOTP(ctx, otp); err != nil {
		logger.Error("Failed to store OTP",
			logger.String("destination", dest),
			logger.ErrorField(err))
		return &models.OTPResult{Status: models.OTPStatusError, Message: "failed to store verification code"}
	}

	logger.Info("OTP issued", logger.String("destination", dest))
	return &models.OTPResult{Status: models.OTPStatusPending, Message: "verification code sent"}
}

// VerifyOTP checks the supplied code against the destination's live code.
// Expired codes are purged on sight. A mismatch keeps the record so the user
// may retry within the validity window; a match consumes it.
func (u *AccountUC) VerifyOTP(ctx context.Context, destination, code string) *models.OTPResult {
	dest := utils.NormalizePhoneNumber(destination)

	otp, err := u.accountRepo.GetOTP(ctx, dest)
	if err != nil {
		logger.Error("Failed to look up OTP",
			logger.String("destination", dest),
			logger.ErrorField(err))
		return &models.OTPResult{Status: models.OTPStatusError, Message: "failed to check verification code"}
	}
	if otp == nil {
		return &models.OTPResult{Status: models.OTPStatusRejected, Message: "no code was sent to this number"}
	}

	ttl := time.Duration(u.cfg.OTP.TTLSecs) * time.Second
	if time.Since(otp.IssuedAt) > ttl {
		if err := u.accountRepo.DeleteOTP(ctx, dest); err != nil {
			logger.Warn("Failed to purge expired OTP",
				logger.String("destination", dest),
				logger.ErrorField(err))
		}
		return &models.OTPResult{Status: models.OTPStatusRejected, Message: "code has expired"}
	}

	if otp.Code != code {
		return &models.OTPResult{Status: models.OTPStatusRejected, Message: "invalid code"}
	}

	if err := u.accountRepo.DeleteOTP(ctx, dest); err != nil {
		logger.Warn("Failed to consume OTP",
			logger.String("destination", dest),
			logger.ErrorField(err))
	}
	return &models.OTPResult{Status: models.OTPStatusApproved, Message: "code verified"}
}
