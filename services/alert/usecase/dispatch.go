package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"

	"github.com/safinity/safinity/internal/pkg/logger"
	"github.com/safinity/safinity/internal/pkg/models"
)

// Dispatch sends the alert to every emergency contact of the user and
// aggregates the per-contact outcomes. It never returns an error: every
// gateway or location failure becomes a status field in the result. No
// retries; one attempt per contact.
func (u *AlertUC) Dispatch(ctx context.Context, req *models.DispatchRequest) *models.DispatchResult {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return &models.DispatchResult{Status: models.DispatchError, Message: "invalid user ID"}
	}

	user, err := u.alertRepo.FindUserByID(ctx, userID)
	if err != nil {
		logger.Error("Failed to load alerting user",
			logger.String("user_id", req.UserID),
			logger.ErrorField(err))
		return &models.DispatchResult{Status: models.DispatchError, Message: "failed to load user"}
	}
	if user == nil {
		return &models.DispatchResult{Status: models.DispatchError, Message: "user not found"}
	}

	contacts, err := u.alertRepo.ListEmergencyContacts(ctx, userID)
	if err != nil {
		logger.Error("Failed to load emergency contacts",
			logger.String("user_id", req.UserID),
			logger.ErrorField(err))
		return &models.DispatchResult{Status: models.DispatchError, Message: "failed to load emergency contacts"}
	}
	if len(contacts) == 0 {
		return &models.DispatchResult{Status: models.DispatchError, Message: "no emergency contacts found"}
	}

	message := composeMessage(user, req.Kind, req.CustomText)

	var locationTag string
	if line, tag := u.locationLine(ctx); line != "" {
		message += line
		locationTag = tag
	}

	result := &models.DispatchResult{
		TotalContacts: len(contacts),
		Geohash:       locationTag,
		Details:       make([]models.ContactResult, 0, len(contacts)),
	}

	for _, contact := range contacts {
		detail := models.ContactResult{
			ContactName: contact.Name,
			PhoneNumber: contact.PhoneNumber,
		}

		resp, err := u.smsGW.SendSMS(ctx, contact.PhoneNumber, u.cfg.SMS.SenderLabel, message)
		if err != nil {
			detail.Status = models.ContactSendError
			detail.Message = err.Error()
		} else {
			detail.Status = models.ContactSendSuccess
			detail.Message = resp.Message
			if detail.Message == "" {
				detail.Message = "Message sent"
			}
			result.SuccessCount++
		}
		result.Details = append(result.Details, detail)
	}

	switch {
	case result.SuccessCount == result.TotalContacts:
		result.Status = models.DispatchSuccess
		result.Message = fmt.Sprintf("Alert sent to all %d contacts", result.TotalContacts)
	case result.SuccessCount > 0:
		result.Status = models.DispatchPartial
		result.Message = fmt.Sprintf("Alert sent to %d out of %d contacts",
			result.SuccessCount, result.TotalContacts)
	default:
		result.Status = models.DispatchError
		result.Message = "Alert could not be sent to any contact"
	}

	logger.Info("Alert dispatched",
		logger.String("user_id", req.UserID),
		logger.String("kind", string(req.Kind)),
		logger.String("status", result.Status),
		logger.Int("success_count", result.SuccessCount),
		logger.Int("total_contacts", result.TotalContacts))

	return result
}

// composeMessage builds the per-kind message body. Custom text is used
// verbatim.
func composeMessage(user *models.User, kind models.AlertKind, customText string) string {
	name := ""
	if user.FullName != nil {
		name = *user.FullName
	}
	phone := ""
	if user.PhoneNumber != nil {
		phone = *user.PhoneNumber
	}

	switch kind {
	case models.AlertEmergency:
		return fmt.Sprintf("EMERGENCY ALERT: %s has triggered an emergency alert. "+
			"Please contact them immediately at %s.", name, phone)
	case models.AlertWarning:
		return fmt.Sprintf("WARNING: %s has triggered a warning alert. "+
			"Please check on them when possible at %s.", name, phone)
	case models.AlertCheck:
		return fmt.Sprintf("CHECK-IN: %s would like you to check on them. "+
			"Please contact them when convenient at %s.", name, phone)
	case models.AlertAccidental:
		return fmt.Sprintf("ACCIDENTAL ALERT: %s's previous alert was triggered by mistake. "+
			"No action is required. The user is safe.", name)
	case models.AlertCustom:
		return customText
	default:
		return fmt.Sprintf("ALERT: %s has triggered an alert. "+
			"Please contact them at %s.", name, phone)
	}
}

// locationLine fetches the current position with a bounded timeout and
// formats the map-link line plus a geohash tag for the result. Any provider
// failure yields an empty line; location never blocks or fails a dispatch.
func (u *AlertUC) locationLine(ctx context.Context) (string, string) {
	if u.location == nil {
		return "", ""
	}

	timeout := time.Duration(u.cfg.Alert.LocationTimeoutMs) * time.Millisecond
	if timeout == 0 {
		timeout = 3 * time.Second
	}
	locCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	loc, err := u.location.GetCurrentLocation(locCtx)
	if err != nil || loc == nil {
		if err != nil {
			logger.Warn("Location unavailable for alert", logger.ErrorField(err))
		}
		return "", ""
	}

	line := fmt.Sprintf("\nLocation: https://maps.google.com/?q=%v,%v", loc.Latitude, loc.Longitude)
	tag := geohash.Encode(loc.Latitude, loc.Longitude)
	return line, tag
}
