package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safinity/safinity/internal/pkg/logger"
	"github.com/safinity/safinity/internal/pkg/models"
	"github.com/safinity/safinity/internal/utils"
	"github.com/safinity/safinity/services/account"
)

// AuthHandler handles HTTP requests for signup and authentication
type AuthHandler struct {
	accountUC account.AccountUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountUC account.AccountUC) *AuthHandler {
	return &AuthHandler{accountUC: accountUC}
}

// Register handles one signup step: it creates or updates the draft and
// sends a verification code to the draft's phone number when one is set
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	draftReq := &models.DraftRequest{}
	if req.Email != "" {
		draftReq.Email = &req.Email
	}
	if req.PhoneNumber != "" {
		draftReq.PhoneNumber = &req.PhoneNumber
	}
	if req.Password != "" {
		draftReq.Password = &req.Password
	}
	if req.Country != "" {
		draftReq.Country = &req.Country
	}

	draft, err := h.accountUC.CreateOrUpdateDraft(c.Request().Context(), draftReq)
	if err != nil {
		return accountErrorResponse(c, err)
	}

	var otpResult *models.OTPResult
	if draft.PhoneNumber != nil {
		otpResult = h.accountUC.IssueOTP(c.Request().Context(), *draft.PhoneNumber)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Signup step saved", echo.Map{
		"draft": draft,
		"otp":   otpResult,
	})
}

// Verify checks the OTP and promotes the current draft. A payload carrying
// profile fields takes the one-write full-promotion path; otherwise the
// basic path is used and the profile is completed later.
func (h *AuthHandler) Verify(c echo.Context) error {
	var req struct {
		models.VerifyRequest
		Profile *models.ProfileCompletion `json:"profile,omitempty"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Destination == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "Destination and code are required")
	}

	result := h.accountUC.VerifyOTP(c.Request().Context(), req.Destination, req.Code)
	if result.Status != models.OTPStatusApproved {
		return utils.BadRequestResponse(c, result.Message)
	}

	var (
		user *models.User
		err  error
	)
	if req.Profile != nil {
		user, err = h.accountUC.PromoteFull(c.Request().Context(), req.Profile)
	} else {
		user, err = h.accountUC.PromoteBasic(c.Request().Context())
	}
	if err != nil {
		return accountErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account verified", user)
}

// ResendOTP issues a fresh verification code for a destination
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req struct {
		Destination string `json:"destination"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Destination == "" {
		return utils.BadRequestResponse(c, "Destination is required")
	}

	result := h.accountUC.IssueOTP(c.Request().Context(), req.Destination)
	if result.Status == models.OTPStatusError {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, result.Message)
	}
	return utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// Login authenticates by email or phone plus password
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.accountUC.Login(c.Request().Context(), &req)
	if err != nil {
		return accountErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// accountErrorResponse maps typed account errors onto HTTP statuses
func accountErrorResponse(c echo.Context, err error) error {
	var accErr *account.AccountError
	if !errors.As(err, &accErr) {
		logger.Error("Unexpected account error", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	switch accErr.Code {
	case account.CodeUserExistsEmail, account.CodeUserExistsPhone,
		account.CodeDuplicateDraftEmail, account.CodeDuplicateDraftPhone:
		return utils.ConflictResponse(c, accErr.Message)
	case account.CodeMissingDraft, account.CodeNotFound:
		return utils.NotFoundResponse(c, accErr.Message)
	case account.CodeMissingRequiredField, account.CodeOTPRequired,
		account.CodePhoneChangeCooldown:
		return utils.BadRequestResponse(c, accErr.Message)
	case account.CodeInvalidCredentials:
		return utils.UnauthorizedResponse(c, accErr.Message)
	case account.CodeTooManyAttempts:
		return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, accErr.Message)
	default:
		logger.Error("Account operation failed",
			logger.String("code", accErr.Code),
			logger.ErrorField(accErr))
		return utils.InternalServerErrorResponse(c, "")
	}
}
