package constants

// Redis key formats
const (
	// KeyOTP holds the live OTP record for a destination phone number
	KeyOTP = "safinity:otp:%s"

	// KeyLoginAttempts counts failed login attempts per identifier
	KeyLoginAttempts = "safinity:login:attempts:%s"
)
