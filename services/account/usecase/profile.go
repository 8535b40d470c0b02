package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/safinity/safinity/internal/pkg/logger"
	"github.com/safinity/safinity/internal/pkg/models"
	"github.com/safinity/safinity/internal/utils"
	"github.com/safinity/safinity/services/account"
)

const phoneChangeCooldownHours = 24

// ProfileSession tracks one in-progress profile edit: the phone number at
// edit-start, whether it has been changed, and whether the change has been
// proven by OTP.
type ProfileSession struct {
	uc            *AccountUC
	user          *models.User
	originalPhone string
	phoneChanged  bool
	otpVerified   bool
}

// BeginEdit opens an edit session over the given user's current state
func (u *AccountUC) BeginEdit(user *models.User) *ProfileSession {
	original := ""
	if user.PhoneNumber != nil {
		original = *user.PhoneNumber
	}
	return &ProfileSession{
		uc:            u,
		user:          user,
		originalPhone: original,
	}
}

// CheckPhoneChangeAllowed reports whether the user may change their phone
// number, and if not, the hours remaining in the cooldown rounded to one
// decimal.
func CheckPhoneChangeAllowed(user *models.User) (bool, float64) {
	if user.LastPhoneChange == nil {
		return true, 0
	}
	elapsed := time.Since(*user.LastPhoneChange).Hours()
	if elapsed >= phoneChangeCooldownHours {
		return true, 0
	}
	remaining := math.Round((phoneChangeCooldownHours-elapsed)*10) / 10
	return false, remaining
}

// OnPhoneFieldChanged reacts to the phone field taking a new value. Editing
// back to the original number needs no re-verification. A genuine change is
// subject to the 24-hour cooldown and must be confirmed by OTP before Save
// will accept it.
func (s *ProfileSession) OnPhoneFieldChanged(newValue string) error {
	newNorm := utils.NormalizePhoneNumber(newValue)
	origNorm := utils.NormalizePhoneNumber(s.originalPhone)

	if newNorm == origNorm {
		s.phoneChanged = false
		s.otpVerified = true
		return nil
	}

	allowed, remaining := CheckPhoneChangeAllowed(s.user)
	if !allowed {
		return account.NewAccountError(account.CodePhoneChangeCooldown,
			fmt.Sprintf("you can change your phone number again in %.1f hours", remaining))
	}

	s.phoneChanged = true
	s.otpVerified = false
	return nil
}

// RequestOTP sends a verification code to the candidate phone number
func (s *ProfileSession) RequestOTP(ctx context.Context, newPhone string) *models.OTPResult {
	return s.uc.IssueOTP(ctx, newPhone)
}

// ConfirmOTP verifies the code sent to the candidate number. Approval marks
// the change verified; rejection abandons the change and the field reverts
// to the original number.
func (s *ProfileSession) ConfirmOTP(ctx context.Context, newPhone, code string) *models.OTPResult {
	result := s.uc.VerifyOTP(ctx, newPhone, code)
	if result.Status == models.OTPStatusApproved {
		s.otpVerified = true
	} else {
		s.phoneChanged = false
		s.otpVerified = false
	}
	return result
}

// Save validates and applies the edited fields. An unverified phone change
// refuses to save; an email collision with another user refuses without
// touching anything. A genuine phone change stamps last_phone_change as part
// of the same update.
func (s *ProfileSession) Save(ctx context.Context, req *models.ProfileUpdateRequest) (*models.User, error) {
	if req.Email != nil && *req.Email != "" && !strings.Contains(*req.Email, "@") {
		return nil, account.NewAccountError(account.CodeMissingRequiredField,
			"email address is not valid")
	}

	var newPhone *string
	if req.PhoneNumber != nil && *req.PhoneNumber != "" {
		normalized := utils.NormalizePhoneNumber(*req.PhoneNumber)
		if utils.MeaningfulDigits(normalized) < 6 {
			return nil, account.NewAccountError(account.CodeMissingRequiredField,
				"phone number is not valid")
		}
		newPhone = &normalized
	}

	if s.phoneChanged && !s.otpVerified {
		return nil, account.NewAccountError(account.CodeOTPRequired,
			"verify your new phone number before saving")
	}

	if req.Email != nil && *req.Email != "" {
		if s.user.Email == nil || *s.user.Email != *req.Email {
			existing, err := s.uc.accountRepo.FindUserByEmail(ctx, *req.Email)
			if err != nil {
				return nil, account.NewPersistenceError(err)
			}
			if existing != nil && existing.ID != s.user.ID {
				return nil, account.NewAccountError(account.CodeUserExistsEmail,
					"this email is already in use by another account")
			}
		}
		s.user.Email = req.Email
	}

	if newPhone != nil {
		storedPhone := ""
		if s.user.PhoneNumber != nil {
			storedPhone = *s.user.PhoneNumber
		}
		if *newPhone != utils.NormalizePhoneNumber(storedPhone) {
			now := time.Now()
			s.user.LastPhoneChange = &now
		}
		s.user.PhoneNumber = newPhone
	}

	if req.FullName != nil {
		s.user.FullName = req.FullName
	}
	if req.DateOfBirth != nil {
		s.user.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != nil {
		s.user.Gender = req.Gender
	}
	if req.Address != nil {
		s.user.Address = req.Address
	}
	if req.ProfilePicture != nil {
		s.user.ProfilePicture = req.ProfilePicture
	}

	if err := s.uc.accountRepo.UpdateUser(ctx, s.user); err != nil {
		return nil, account.NewPersistenceError(err)
	}

	s.phoneChanged = false
	s.otpVerified = false
	s.originalPhone = ""
	if s.user.PhoneNumber != nil {
		s.originalPhone = *s.user.PhoneNumber
	}

	logger.Info("Profile updated", logger.String("user_id", s.user.ID.String()))
	return s.user, nil
}

// GetProfile returns a user by ID
func (u *AccountUC) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, account.NewAccountError(account.CodeNotFound, "user not found")
	}

	user, err := u.accountRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, account.NewPersistenceError(err)
	}
	if user == nil {
		return nil, account.NewAccountError(account.CodeNotFound, "user not found")
	}
	return user, nil
}

// UpdateProfile applies an in-place profile edit for one request. A phone
// change without an OTP code issues one to the new number and stops; a
// request carrying the code confirms it before saving.
func (u *AccountUC) UpdateProfile(ctx context.Context, userID string, req *models.ProfileUpdateRequest) (*models.User, error) {
	user, err := u.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	session := u.BeginEdit(user)

	if req.PhoneNumber != nil && *req.PhoneNumber != "" {
		if err := session.OnPhoneFieldChanged(*req.PhoneNumber); err != nil {
			return nil, err
		}
		if session.phoneChanged {
			if req.OTPCode == nil || *req.OTPCode == "" {
				result := session.RequestOTP(ctx, *req.PhoneNumber)
				if result.Status == models.OTPStatusError {
					return nil, account.NewAccountError(account.CodePersistenceError, result.Message)
				}
				return nil, account.NewAccountError(account.CodeOTPRequired,
					"verification code sent to the new number, resubmit with otp_code to confirm")
			}
			result := session.ConfirmOTP(ctx, *req.PhoneNumber, *req.OTPCode)
			if result.Status != models.OTPStatusApproved {
				return nil, account.NewAccountError(account.CodeOTPRequired, result.Message)
			}
		}
	}

	return session.Save(ctx, req)
}

// DeleteAccount terminates a user account. Emergency contacts go with it.
func (u *AccountUC) DeleteAccount(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return account.NewAccountError(account.CodeNotFound, "user not found")
	}

	if err := u.accountRepo.DeleteUser(ctx, id); err != nil {
		return account.NewPersistenceError(err)
	}

	logger.Info("Account deleted", logger.String("user_id", userID))
	return nil
}

// ListContacts returns the user's emergency contacts
func (u *AccountUC) ListContacts(ctx context.Context, userID string) ([]models.EmergencyContact, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, account.NewAccountError(account.CodeNotFound, "user not found")
	}

	contacts, err := u.accountRepo.ListEmergencyContacts(ctx, id)
	if err != nil {
		return nil, account.NewPersistenceError(err)
	}
	return contacts, nil
}

// SaveContact creates or updates an emergency contact. The contact's phone
// number is normalized; a second save with the same number updates the
// existing contact in place.
func (u *AccountUC) SaveContact(ctx context.Context, userID string, contact *models.EmergencyContact) (*models.EmergencyContact, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, account.NewAccountError(account.CodeNotFound, "user not found")
	}

	if contact.Name == "" || contact.PhoneNumber == "" {
		return nil, account.NewAccountError(account.CodeMissingRequiredField,
			"contact name and phone number are required")
	}
	if contact.Relationship == "" {
		contact.Relationship = models.RelationOther
	}

	contact.UserID = id
	contact.PhoneNumber = utils.NormalizePhoneNumber(contact.PhoneNumber)

	if err := u.accountRepo.SaveEmergencyContact(ctx, contact); err != nil {
		return nil, account.NewPersistenceError(err)
	}
	return contact, nil
}

// DeleteContact removes one emergency contact
func (u *AccountUC) DeleteContact(ctx context.Context, userID, contactID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return account.NewAccountError(account.CodeNotFound, "user not found")
	}
	cid, err := uuid.Parse(contactID)
	if err != nil {
		return account.NewAccountError(account.CodeNotFound, "emergency contact not found")
	}

	if err := u.accountRepo.DeleteEmergencyContact(ctx, uid, cid); err != nil {
		return account.NewPersistenceError(err)
	}
	return nil
}
