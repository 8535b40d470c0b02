package models

import "time"

// Device bridge event names as decoded by the hardware button bridge
const (
	DeviceConnected    = "connected"
	DeviceDisconnected = "disconnected"
	DeviceReconnecting = "reconnecting"
	DeviceSinglePress  = "single_press"
	DeviceDoublePress  = "double_press"
	DeviceTriplePress  = "triple_press"
)

// DeviceEvent is one decoded event from the panic-button bridge
type DeviceEvent struct {
	Event      string    `json:"event"`
	UserID     string    `json:"user_id"`
	DeviceID   string    `json:"device_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
