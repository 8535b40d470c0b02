package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safinity/safinity/internal/pkg/database"
	"github.com/safinity/safinity/internal/pkg/models"
)

func setupOTPRepoTest(t *testing.T) (*AccountRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	repo := &AccountRepo{
		redisClient: &database.RedisClient{Client: client},
		cfg: &models.Config{
			OTP: models.OTPConfig{TTLSecs: 60},
		},
	}
	return repo, mr
}

func TestStoreAndGetOTP(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	ctx := context.Background()
	issued := time.Now().Truncate(time.Second)

	otp := &models.OTP{
		Destination: "+923001234567",
		Code:        "042317",
		IssuedAt:    issued,
	}
	require.NoError(t, repo.StoreOTP(ctx, otp))

	got, err := repo.GetOTP(ctx, "+923001234567")
	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "042317", got.Code)
	assert.True(t, got.IssuedAt.Equal(issued))
}

func TestGetOTP_None(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	got, err := repo.GetOTP(context.Background(), "+923001234567")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreOTP_OverwritesPrevious(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	ctx := context.Background()

	first := &models.OTP{Destination: "+923001234567", Code: "111111", IssuedAt: time.Now()}
	require.NoError(t, repo.StoreOTP(ctx, first))

	second := &models.OTP{Destination: "+923001234567", Code: "222222", IssuedAt: time.Now()}
	require.NoError(t, repo.StoreOTP(ctx, second))

	got, err := repo.GetOTP(ctx, "+923001234567")
	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "222222", got.Code)
}

func TestDeleteOTP(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	ctx := context.Background()

	otp := &models.OTP{Destination: "+923001234567", Code: "042317", IssuedAt: time.Now()}
	require.NoError(t, repo.StoreOTP(ctx, otp))
	require.NoError(t, repo.DeleteOTP(ctx, "+923001234567"))

	got, err := repo.GetOTP(ctx, "+923001234567")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreOTP_RetentionOutlivesValidity(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	ctx := context.Background()

	otp := &models.OTP{Destination: "+923001234567", Code: "042317", IssuedAt: time.Now()}
	require.NoError(t, repo.StoreOTP(ctx, otp))

	// Past the code's validity window the record must still be readable so
	// verification can report "expired" rather than "no code was sent"
	mr.FastForward(2 * time.Minute)

	got, err := repo.GetOTP(ctx, "+923001234567")
	assert.NoError(t, err)
	assert.NotNil(t, got)
}
