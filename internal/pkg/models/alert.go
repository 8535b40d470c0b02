package models

// AlertKind selects the message template for a dispatch
type AlertKind string

const (
	AlertEmergency  AlertKind = "emergency"
	AlertWarning    AlertKind = "warning"
	AlertCheck      AlertKind = "check"
	AlertAccidental AlertKind = "accidental"
	AlertCustom     AlertKind = "custom"
)

// Dispatch aggregate statuses
const (
	DispatchSuccess = "success"
	DispatchPartial = "partial"
	DispatchError   = "error"
)

// Contact-level outcomes
const (
	ContactSendSuccess = "success"
	ContactSendError   = "error"
)

// ContactResult is the per-contact outcome of one dispatch
type ContactResult struct {
	ContactName string `json:"contact_name"`
	PhoneNumber string `json:"phone_number"`
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
}

// DispatchResult aggregates the per-contact outcomes of one dispatch
type DispatchResult struct {
	Status        string          `json:"status"`
	Message       string          `json:"message"`
	SuccessCount  int             `json:"success_count"`
	TotalContacts int             `json:"total_contacts"`
	Geohash       string          `json:"geohash,omitempty"`
	Details       []ContactResult `json:"details,omitempty"`
}

// DispatchRequest triggers an alert fan-out
type DispatchRequest struct {
	UserID     string    `json:"user_id" validate:"required"`
	Kind       AlertKind `json:"kind" validate:"required"`
	CustomText string    `json:"custom_text,omitempty"`
}

// Location is a point reported by the location provider
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SMSResponse is the gateway's reply to one send attempt. HTTP 200 plus an
// absent-or-non-"error" application status means delivered-to-gateway.
type SMSResponse struct {
	HTTPStatus int    `json:"http_status"`
	Status     string `json:"status,omitempty"`
	Message    string `json:"message,omitempty"`
}
