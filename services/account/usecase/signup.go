package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/safinity/safinity/internal/pkg/logger"
	"github.com/safinity/safinity/internal/pkg/models"
	"github.com/safinity/safinity/internal/utils"
	"github.com/safinity/safinity/services/account"
)

// CreateOrUpdateDraft applies one signup step. The incoming phone number is
// normalized before any check. Collisions with active users clear the
// current draft and fail; collisions with other drafts fail without touching
// the current draft. Fields absent from the request are left as they are on
// an existing draft, never cleared.
func (u *AccountUC) CreateOrUpdateDraft(ctx context.Context, req *models.DraftRequest) (*models.DraftSignup, error) {
	u.signupMu.Lock()
	defer u.signupMu.Unlock()

	var email, phone, country *string
	if req.Email != nil && *req.Email != "" {
		email = req.Email
	}
	if req.PhoneNumber != nil && *req.PhoneNumber != "" {
		normalized := utils.NormalizePhoneNumber(*req.PhoneNumber)
		phone = &normalized
	}
	if req.Country != nil && *req.Country != "" {
		country = req.Country
	}

	// Email match wins when both identifiers collide with different users
	if email != nil {
		existing, err := u.accountRepo.FindUserByEmail(ctx, *email)
		if err != nil {
			return nil, account.NewPersistenceError(err)
		}
		if existing != nil {
			u.clearCurrentDraft(ctx)
			return nil, account.NewAccountError(account.CodeUserExistsEmail,
				"an account with this email already exists")
		}
	}
	if phone != nil {
		existing, err := u.accountRepo.FindUserByPhoneVariants(ctx, utils.PhoneNumberVariants(*phone))
		if err != nil {
			return nil, account.NewPersistenceError(err)
		}
		if existing != nil {
			u.clearCurrentDraft(ctx)
			return nil, account.NewAccountError(account.CodeUserExistsPhone,
				"an account with this phone number already exists")
		}
	}

	var passwordHash *string
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, account.NewPersistenceError(err)
		}
		h := string(hashed)
		passwordHash = &h
	}

	draft, err := u.accountRepo.FindCurrentDraft(ctx)
	if err != nil {
		return nil, account.NewPersistenceError(err)
	}

	if draft != nil {
		others, err := u.accountRepo.FindOtherDrafts(ctx, draft.ID)
		if err != nil {
			return nil, account.NewPersistenceError(err)
		}
		for _, other := range others {
			if email != nil && other.Email != nil && *other.Email == *email {
				return nil, account.NewAccountError(account.CodeDuplicateDraftEmail,
					"this email is already in use")
			}
			if phone != nil && other.PhoneNumber != nil && *other.PhoneNumber == *phone {
				return nil, account.NewAccountError(account.CodeDuplicateDraftPhone,
					"this phone number is already in use")
			}
		}

		if email != nil {
			draft.Email = email
		}
		if phone != nil {
			draft.PhoneNumber = phone
		}
		if passwordHash != nil {
			draft.PasswordHash = passwordHash
		}
		if country != nil {
			draft.Country = country
		}

		if err := u.accountRepo.UpdateDraft(ctx, draft); err != nil {
			return nil, account.NewPersistenceError(err)
		}
		return draft, nil
	}

	draft = &models.DraftSignup{
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: passwordHash,
		Country:      country,
	}
	if err := u.accountRepo.CreateDraft(ctx, draft); err != nil {
		return nil, account.NewPersistenceError(err)
	}

	logger.Info("Draft signup created", logger.Int64("draft_id", draft.ID))
	return draft, nil
}

// PromoteBasic turns the current draft into a verified user carrying only
// the identity fields. Profile completion follows as a separate step.
func (u *AccountUC) PromoteBasic(ctx context.Context) (*models.User, error) {
	u.signupMu.Lock()
	defer u.signupMu.Unlock()

	draft, err := u.accountRepo.FindCurrentDraft(ctx)
	if err != nil {
		return nil, account.NewPersistenceError(err)
	}
	if draft == nil {
		return nil, account.NewAccountError(account.CodeMissingDraft,
			"no temporary signup data found")
	}

	if isEmptyStr(draft.Email) || isEmptyStr(draft.PhoneNumber) ||
		isEmptyStr(draft.PasswordHash) || isEmptyStr(draft.Country) {
		return nil, account.NewAccountError(account.CodeMissingRequiredField,
			"email, phone number, password, and country are all required")
	}

	if err := u.recheckCollisions(ctx, draft); err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        draft.Email,
		PhoneNumber:  draft.PhoneNumber,
		PasswordHash: *draft.PasswordHash,
		Country:      draft.Country,
		IsVerified:   true,
	}
	if err := u.accountRepo.PromoteDraft(ctx, draft.ID, user); err != nil {
		return nil, account.NewPersistenceError(err)
	}

	logger.Info("Draft promoted to user",
		logger.Int64("draft_id", draft.ID),
		logger.String("user_id", user.ID.String()),
		logger.String("signup_state", string(user.SignupState())))
	return user, nil
}

// PromoteFull turns the current draft into a fully populated user in one
// write, taking the profile fields alongside the draft's identity fields.
func (u *AccountUC) PromoteFull(ctx context.Context, profile *models.ProfileCompletion) (*models.User, error) {
	u.signupMu.Lock()
	defer u.signupMu.Unlock()

	if profile.FullName == "" || profile.DateOfBirth == "" || profile.Gender == "" {
		return nil, account.NewAccountError(account.CodeMissingRequiredField,
			"full name, date of birth, and gender are all required")
	}

	draft, err := u.accountRepo.FindCurrentDraft(ctx)
	if err != nil {
		return nil, account.NewPersistenceError(err)
	}
	if draft == nil {
		return nil, account.NewAccountError(account.CodeMissingDraft,
			"no temporary signup data found")
	}

	if err := u.recheckCollisions(ctx, draft); err != nil {
		return nil, err
	}

	var passwordHash string
	if draft.PasswordHash != nil {
		passwordHash = *draft.PasswordHash
	}

	user := &models.User{
		Email:          draft.Email,
		PhoneNumber:    draft.PhoneNumber,
		PasswordHash:   passwordHash,
		Country:        draft.Country,
		FullName:       &profile.FullName,
		DateOfBirth:    &profile.DateOfBirth,
		Gender:         &profile.Gender,
		Address:        profile.Address,
		ProfilePicture: profile.ProfilePicture,
		IsVerified:     true,
	}
	if err := u.accountRepo.PromoteDraft(ctx, draft.ID, user); err != nil {
		return nil, account.NewPersistenceError(err)
	}

	logger.Info("Draft promoted to full user",
		logger.Int64("draft_id", draft.ID),
		logger.String("user_id", user.ID.String()),
		logger.String("signup_state", string(user.SignupState())))
	return user, nil
}

// recheckCollisions re-validates the draft against active users right before
// promotion. A user created since the draft was written wins; the stale
// draft is discarded.
func (u *AccountUC) recheckCollisions(ctx context.Context, draft *models.DraftSignup) error {
	if draft.Email != nil && *draft.Email != "" {
		existing, err := u.accountRepo.FindUserByEmail(ctx, *draft.Email)
		if err != nil {
			return account.NewPersistenceError(err)
		}
		if existing != nil {
			if err := u.accountRepo.DeleteDraft(ctx, draft.ID); err != nil {
				logger.Warn("Failed to delete colliding draft", logger.ErrorField(err))
			}
			return account.NewAccountError(account.CodeUserExistsEmail,
				"an account with this email already exists")
		}
	}
	if draft.PhoneNumber != nil && *draft.PhoneNumber != "" {
		existing, err := u.accountRepo.FindUserByPhoneVariants(ctx, utils.PhoneNumberVariants(*draft.PhoneNumber))
		if err != nil {
			return account.NewPersistenceError(err)
		}
		if existing != nil {
			if err := u.accountRepo.DeleteDraft(ctx, draft.ID); err != nil {
				logger.Warn("Failed to delete colliding draft", logger.ErrorField(err))
			}
			return account.NewAccountError(account.CodeUserExistsPhone,
				"an account with this phone number already exists")
		}
	}
	return nil
}

// clearCurrentDraft drops the current draft, if any. Best-effort: the caller
// is already on a failure path.
func (u *AccountUC) clearCurrentDraft(ctx context.Context) {
	draft, err := u.accountRepo.FindCurrentDraft(ctx)
	if err != nil || draft == nil {
		return
	}
	if err := u.accountRepo.DeleteDraft(ctx, draft.ID); err != nil {
		logger.Warn("Failed to clear current draft",
			logger.Int64("draft_id", draft.ID),
			logger.ErrorField(err))
	}
}

func isEmptyStr(s *string) bool {
	return s == nil || *s == ""
}
