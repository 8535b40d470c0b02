package nsq

import (
	"context"
	"time"

	"github.com/safinity/safinity/internal/pkg/logger"
	"github.com/safinity/safinity/internal/pkg/models"
	nsqpkg "github.com/safinity/safinity/internal/pkg/nsq"
	"github.com/safinity/safinity/services/alert"
)

const handleTimeout = 30 * time.Second

// DeviceEventHandler consumes decoded panic-button events and converts
// presses into alert dispatches
type DeviceEventHandler struct {
	alertUC alert.AlertUC
}

// NewDeviceEventHandler creates a new device event handler
func NewDeviceEventHandler(alertUC alert.AlertUC) *DeviceEventHandler {
	return &DeviceEventHandler{alertUC: alertUC}
}

// HandleMessage processes one device event message. Connection-state events
// are logged and acknowledged; press events trigger a dispatch. Dispatch
// outcomes never requeue the message: the fan-out already reported
// per-contact failures and a redelivery would re-alert every contact.
func (h *DeviceEventHandler) HandleMessage(message []byte) error {
	var event models.DeviceEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		logger.Error("Invalid device event payload", logger.ErrorField(err))
		return nil
	}

	kind, ok := pressKind(event.Event)
	if !ok {
		logger.Info("Device connection event",
			logger.String("event", event.Event),
			logger.String("device_id", event.DeviceID))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	result := h.alertUC.Dispatch(ctx, &models.DispatchRequest{
		UserID: event.UserID,
		Kind:   kind,
	})

	logger.Info("Device-triggered alert processed",
		logger.String("event", event.Event),
		logger.String("user_id", event.UserID),
		logger.String("status", result.Status))
	return nil
}

// pressKind maps button presses to alert kinds: single press checks in,
// double press warns, triple press is a full emergency
func pressKind(event string) (models.AlertKind, bool) {
	switch event {
	case models.DeviceSinglePress:
		return models.AlertCheck, true
	case models.DeviceDoublePress:
		return models.AlertWarning, true
	case models.DeviceTriplePress:
		return models.AlertEmergency, true
	default:
		return "", false
	}
}
