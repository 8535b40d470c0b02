package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/safinity/safinity/internal/pkg/models"
	"github.com/safinity/safinity/services/account"
	"github.com/safinity/safinity/services/account/mocks"
)

func strPtr(s string) *string {
	return &s
}

func newAuthContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountUC := mocks.NewMockAccountUC(ctrl)
	authHandler := NewAuthHandler(mockAccountUC)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"email": "a@x.com", "phone_number": "03001234567", "password": "secret1"}`)

	draft := &models.DraftSignup{
		ID:          1,
		Email:       strPtr("a@x.com"),
		PhoneNumber: strPtr("+923001234567"),
	}
	mockAccountUC.EXPECT().
		CreateOrUpdateDraft(gomock.Any(), gomock.Any()).
		Return(draft, nil)
	mockAccountUC.EXPECT().
		IssueOTP(gomock.Any(), "+923001234567").
		Return(&models.OTPResult{Status: models.OTPStatusPending, Message: "Verification code sent"})

	// Act
	err := authHandler.Register(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
}

func TestRegister_NoPhoneSkipsOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountUC := mocks.NewMockAccountUC(ctrl)
	authHandler := NewAuthHandler(mockAccountUC)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/register", `{"email": "a@x.com"}`)

	draft := &models.DraftSignup{ID: 1, Email: strPtr("a@x.com")}
	mockAccountUC.EXPECT().
		CreateOrUpdateDraft(gomock.Any(), gomock.Any()).
		Return(draft, nil)

	// No IssueOTP expectation: nothing to verify yet
	err := authHandler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegister_EmailCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountUC := mocks.NewMockAccountUC(ctrl)
	authHandler := NewAuthHandler(mockAccountUC)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/register", `{"email": "a@x.com"}`)

	mockAccountUC.EXPECT().
		CreateOrUpdateDraft(gomock.Any(), gomock.Any()).
		Return(nil, account.NewAccountError(account.CodeUserExistsEmail, "An account with this email already exists"))

	err := authHandler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "An account with this email already exists", response["error"])
}

func TestVerify_BasicPromotion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountUC := mocks.NewMockAccountUC(ctrl)
	authHandler := NewAuthHandler(mockAccountUC)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/verify",
		`{"destination": "+923001234567", "code": "123456"}`)

	mockAccountUC.EXPECT().
		VerifyOTP(gomock.Any(), "+923001234567", "123456").
		Return(&models.OTPResult{Status: models.OTPStatusApproved})
	mockAccountUC.EXPECT().
		PromoteBasic(gomock.Any()).
		Return(&models.User{ID: uuid.New(), Email: strPtr("a@x.com"), IsVerified: true}, nil)

	err := authHandler.Verify(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerify_FullPromotionWithProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountUC := mocks.NewMockAccountUC(ctrl)
	authHandler := NewAuthHandler(mockAccountUC)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/verify",
		`{"destination": "+923001234567", "code": "123456",
		  "profile": {"full_name": "Jane Doe", "date_of_birth": "01/01/1990", "gender": "female"}}`)

	mockAccountUC.EXPECT().
		VerifyOTP(gomock.Any(), "+923001234567", "123456").
		Return(&models.OTPResult{Status: models.OTPStatusApproved})
	mockAccountUC.EXPECT().
		PromoteFull(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, profile *models.ProfileCompletion) (*models.User, error) {
			assert.Equal(t, "Jane Doe", profile.FullName)
			return &models.User{ID: uuid.New(), FullName: strPtr("Jane Doe"), IsVerified: true}, nil
		})

	err := authHandler.Verify(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerify_RejectedCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountUC := mocks.NewMockAccountUC(ctrl)
	authHandler := NewAuthHandler(mockAccountUC)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/verify",
		`{"destination": "+923001234567", "code": "000000"}`)

	mockAccountUC.EXPECT().
		VerifyOTP(gomock.Any(), "+923001234567", "000000").
		Return(&models.OTPResult{Status: models.OTPStatusRejected, Message: "The verification code is invalid"})

	// No promotion expectation
	err := authHandler.Verify(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "The verification code is invalid", response["error"])
}

func TestVerify_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authHandler := NewAuthHandler(mocks.NewMockAccountUC(ctrl))

	c, rec := newAuthContext(t, http.MethodPost, "/auth/verify", `{"destination": ""}`)

	err := authHandler.Verify(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResendOTP_GatewayFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountUC := mocks.NewMockAccountUC(ctrl)
	authHandler := NewAuthHandler(mockAccountUC)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/otp/resend",
		`{"destination": "+923001234567"}`)

	mockAccountUC.EXPECT().
		IssueOTP(gomock.Any(), "+923001234567").
		Return(&models.OTPResult{Status: models.OTPStatusError, Message: "Failed to send verification code"})

	err := authHandler.ResendOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestLogin_HandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountUC := mocks.NewMockAccountUC(ctrl)
	authHandler := NewAuthHandler(mockAccountUC)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"identifier": "a@x.com", "password": "secret1"}`)

	mockAccountUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(&models.AuthResponse{UserID: uuid.New().String(), Token: "jwt-token"}, nil)

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_HandlerLockout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountUC := mocks.NewMockAccountUC(ctrl)
	authHandler := NewAuthHandler(mockAccountUC)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"identifier": "a@x.com", "password": "secret1"}`)

	mockAccountUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, account.NewAccountError(account.CodeTooManyAttempts, "Too many login attempts"))

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestLogin_HandlerInvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountUC := mocks.NewMockAccountUC(ctrl)
	authHandler := NewAuthHandler(mockAccountUC)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"identifier": "a@x.com", "password": "wrong"}`)

	mockAccountUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, account.NewAccountError(account.CodeInvalidCredentials, "Invalid credentials"))

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
