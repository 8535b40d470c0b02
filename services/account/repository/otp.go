package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/safinity/safinity/internal/pkg/constants"
	"github.com/safinity/safinity/internal/pkg/models"
)

// StoreOTP writes the live code for a destination, replacing any prior one.
// The Redis TTL is kept well past the code's validity window so verification
// can tell an expired code apart from one that was never sent.
func (r *AccountRepo) StoreOTP(ctx context.Context, otp *models.OTP) error {
	key := fmt.Sprintf(constants.KeyOTP, otp.Destination)

	payload, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal otp: %w", err)
	}

	retention := time.Duration(r.cfg.OTP.TTLSecs) * time.Second * 10
	if err := r.redisClient.Set(ctx, key, string(payload), retention); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}
	return nil
}

// GetOTP returns the live code for a destination, or nil when none exists
func (r *AccountRepo) GetOTP(ctx context.Context, destination string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyOTP, destination)

	payload, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get otp: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(payload), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal otp: %w", err)
	}
	return &otp, nil
}

// DeleteOTP removes the live code for a destination
func (r *AccountRepo) DeleteOTP(ctx context.Context, destination string) error {
	key := fmt.Sprintf(constants.KeyOTP, destination)
	return r.redisClient.Delete(ctx, key)
}
