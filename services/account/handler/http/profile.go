package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safinity/safinity/internal/pkg/models"
	"github.com/safinity/safinity/internal/utils"
	"github.com/safinity/safinity/services/account"
)

// ProfileHandler handles HTTP requests for profile and emergency contacts
type ProfileHandler struct {
	accountUC account.AccountUC
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(accountUC account.AccountUC) *ProfileHandler {
	return &ProfileHandler{accountUC: accountUC}
}

// GetProfile handles profile retrieval requests
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.accountUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return accountErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", user)
}

// UpdateProfile handles in-place profile edits, including the OTP-confirmed
// phone change flow
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req models.ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.accountUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return accountErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", user)
}

// DeleteAccount handles account termination
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), userID); err != nil {
		return accountErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Account deleted", nil)
}

// ListContacts returns the user's emergency contacts
func (h *ProfileHandler) ListContacts(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	contacts, err := h.accountUC.ListContacts(c.Request().Context(), userID)
	if err != nil {
		return accountErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Contacts retrieved", contacts)
}

// SaveContact creates or updates an emergency contact
func (h *ProfileHandler) SaveContact(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var contact models.EmergencyContact
	if err := c.Bind(&contact); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	saved, err := h.accountUC.SaveContact(c.Request().Context(), userID, &contact)
	if err != nil {
		return accountErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Contact saved", saved)
}

// DeleteContact removes one emergency contact
func (h *ProfileHandler) DeleteContact(c echo.Context) error {
	userID := c.Param("id")
	contactID := c.Param("contactId")
	if userID == "" || contactID == "" {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	if err := h.accountUC.DeleteContact(c.Request().Context(), userID, contactID); err != nil {
		return accountErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Contact deleted", nil)
}
