package models

import (
	"time"

	"github.com/google/uuid"
)

// Gender values accepted on a user profile
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Relationship types for emergency contacts
const (
	RelationFriend = "Friend"
	RelationFamily = "Family"
	RelationOther  = "Other"
)

// User represents an active account
type User struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Email           *string    `json:"email,omitempty" db:"email"`
	PhoneNumber     *string    `json:"phone_number,omitempty" db:"phone_number"`
	PasswordHash    string     `json:"-" db:"password_hash"`
	Country         *string    `json:"country,omitempty" db:"country"`
	FullName        *string    `json:"full_name,omitempty" db:"full_name"`
	DateOfBirth     *string    `json:"date_of_birth,omitempty" db:"date_of_birth"` // DD/MM/YYYY
	Gender          *string    `json:"gender,omitempty" db:"gender"`
	Address         *string    `json:"address,omitempty" db:"address"`
	ProfilePicture  *string    `json:"profile_picture,omitempty" db:"profile_picture"`
	IsVerified      bool       `json:"is_verified" db:"is_verified"`
	LastPhoneChange *time.Time `json:"last_phone_change,omitempty" db:"last_phone_change"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// DraftSignup is a pending registration. At most one draft is "current"
// at a time; the most recently created one wins.
type DraftSignup struct {
	ID           int64     `json:"id" db:"id"`
	Email        *string   `json:"email,omitempty" db:"email"`
	PhoneNumber  *string   `json:"phone_number,omitempty" db:"phone_number"`
	PasswordHash *string   `json:"-" db:"password_hash"`
	Country      *string   `json:"country,omitempty" db:"country"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// SignupState tags where a registration sits in the signup state machine
type SignupState string

const (
	SignupDraftCreated    SignupState = "draft_created"
	SignupPhoneVerified   SignupState = "phone_verified"
	SignupProfileComplete SignupState = "profile_complete"
)

// State reports where the registration behind this draft sits
func (d *DraftSignup) State() SignupState {
	return SignupDraftCreated
}

// SignupState reports how far the account progressed through signup: a
// verified account without profile fields stopped at phone verification,
// one with a full name completed its profile.
func (u *User) SignupState() SignupState {
	if !u.IsVerified {
		return SignupDraftCreated
	}
	if u.FullName != nil && *u.FullName != "" {
		return SignupProfileComplete
	}
	return SignupPhoneVerified
}

// EmergencyContact belongs to exactly one user. The (user_id, phone_number)
// pair is unique; saving an existing pair updates the row in place.
type EmergencyContact struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	PhoneNumber  string    `json:"phone_number" db:"phone_number"`
	Relationship string    `json:"relationship" db:"relationship"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// DraftRequest carries the fields supplied by one signup step. Nil fields
// are left untouched on an existing draft, never cleared.
type DraftRequest struct {
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Password    *string `json:"password,omitempty"`
	Country     *string `json:"country,omitempty"`
}

// ProfileCompletion carries the full-profile promotion payload
type ProfileCompletion struct {
	FullName       string  `json:"full_name"`
	DateOfBirth    string  `json:"date_of_birth"`
	Gender         string  `json:"gender"`
	Address        *string `json:"address,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// ProfileUpdateRequest carries an in-place profile edit
type ProfileUpdateRequest struct {
	Email          *string `json:"email,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	FullName       *string `json:"full_name,omitempty"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	Address        *string `json:"address,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
	OTPCode        *string `json:"otp_code,omitempty"` // required when the phone number changes
}
