package models

import (
	"time"
)

// OTP is the live one-time code for a destination. Exactly one record per
// destination; a new issuance overwrites any prior unconsumed record.
type OTP struct {
	Destination string    `json:"destination"`
	Code        string    `json:"code"`
	IssuedAt    time.Time `json:"issued_at"`
}

// OTP result statuses
const (
	OTPStatusPending  = "pending"
	OTPStatusApproved = "approved"
	OTPStatusRejected = "rejected"
	OTPStatusError    = "error"
)

// OTPResult is the outcome of an issue or verify call
type OTPResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RegisterRequest is one signup step's payload
type RegisterRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
	Country     string `json:"country"`
}

// VerifyRequest verifies an OTP and promotes the current draft
type VerifyRequest struct {
	Destination string `json:"destination" validate:"required"`
	Code        string `json:"code" validate:"required"`
}

// LoginRequest authenticates by email or phone plus password
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	ExpiresAt int64  `json:"expires_at"`
}
