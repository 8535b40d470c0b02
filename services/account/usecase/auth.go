package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/safinity/safinity/internal/pkg/jwt"
	"github.com/safinity/safinity/internal/pkg/logger"
	"github.com/safinity/safinity/internal/pkg/models"
	"github.com/safinity/safinity/internal/utils"
	"github.com/safinity/safinity/services/account"
)

// Login authenticates by email or phone plus password and returns a signed
// token. Failed attempts count against the identifier's rolling window; a
// success resets it.
func (u *AccountUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Identifier == "" || req.Password == "" {
		return nil, account.NewAccountError(account.CodeMissingRequiredField,
			"identifier and password are required")
	}

	allowed, err := u.limiter.Allow(ctx, req.Identifier)
	if err != nil {
		return nil, account.NewPersistenceError(err)
	}
	if !allowed {
		return nil, account.NewAccountError(account.CodeTooManyAttempts,
			"too many failed attempts, try again later")
	}

	user, err := u.LookupCredentials(ctx, req.Identifier, req.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		if err := u.limiter.RecordFailure(ctx, req.Identifier); err != nil {
			logger.Warn("Failed to record login failure", logger.ErrorField(err))
		}
		return nil, account.NewAccountError(account.CodeInvalidCredentials,
			"invalid credentials")
	}

	if err := u.limiter.Reset(ctx, req.Identifier); err != nil {
		logger.Warn("Failed to reset login attempts", logger.ErrorField(err))
	}

	identifier := ""
	if user.Email != nil {
		identifier = *user.Email
	} else if user.PhoneNumber != nil {
		identifier = *user.PhoneNumber
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, identifier, u.cfg)
	if err != nil {
		return nil, account.NewPersistenceError(err)
	}

	logger.Info("User logged in", logger.String("user_id", user.ID.String()))
	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		ExpiresAt: expiresAt,
	}, nil
}

// LookupCredentials resolves an identifier to a user and, when a password is
// supplied, checks it against the stored hash. An identifier containing "@"
// is treated as an email; anything else is tried as a phone number, first in
// canonical form, then across all variant representations. Returns
// (nil, nil) when no user matches or the password is wrong.
func (u *AccountUC) LookupCredentials(ctx context.Context, identifier, password string) (*models.User, error) {
	var (
		user *models.User
		err  error
	)

	if strings.Contains(identifier, "@") {
		user, err = u.accountRepo.FindUserByEmail(ctx, identifier)
		if err != nil {
			return nil, account.NewPersistenceError(err)
		}
	} else {
		normalized := utils.NormalizePhoneNumber(identifier)
		user, err = u.accountRepo.FindUserByPhone(ctx, normalized)
		if err != nil {
			return nil, account.NewPersistenceError(err)
		}
		if user == nil {
			user, err = u.accountRepo.FindUserByPhoneVariants(ctx, utils.PhoneNumberVariants(identifier))
			if err != nil {
				return nil, account.NewPersistenceError(err)
			}
		}
	}

	if user == nil {
		return nil, nil
	}

	if password != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return nil, nil
		}
	}
	return user, nil
}
