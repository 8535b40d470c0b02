package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safinity/safinity/internal/pkg/models"
	"github.com/safinity/safinity/services/alert/mocks"
)

func strPtr(s string) *string {
	return &s
}

func alertConfig() *models.Config {
	return &models.Config{
		SMS:   models.SMSConfig{SenderLabel: "Default"},
		Alert: models.AlertConfig{LocationTimeoutMs: 500},
	}
}

func alertingUser() *models.User {
	return &models.User{
		ID:          uuid.New(),
		FullName:    strPtr("Jane Doe"),
		PhoneNumber: strPtr("+923001234567"),
	}
}

func threeContacts(userID uuid.UUID) []models.EmergencyContact {
	return []models.EmergencyContact{
		{ID: uuid.New(), UserID: userID, Name: "Mom", PhoneNumber: "+923001111111"},
		{ID: uuid.New(), UserID: userID, Name: "Dad", PhoneNumber: "+923002222222"},
		{ID: uuid.New(), UserID: userID, Name: "Ali", PhoneNumber: "+923003333333"},
	}
}

func TestDispatch_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlertRepo(ctrl)
	mockGW := mocks.NewMockSMSGateway(ctrl)
	uc := NewAlertUC(alertConfig(), mockRepo, mockGW, nil)

	user := alertingUser()
	contacts := threeContacts(user.ID)

	mockRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(user, nil)
	mockRepo.EXPECT().ListEmergencyContacts(gomock.Any(), user.ID).Return(contacts, nil)

	mockGW.EXPECT().SendSMS(gomock.Any(), "+923001111111", "Default", gomock.Any()).
		Return(&models.SMSResponse{HTTPStatus: 200}, nil)
	mockGW.EXPECT().SendSMS(gomock.Any(), "+923002222222", "Default", gomock.Any()).
		Return(nil, errors.New("request timed out"))
	mockGW.EXPECT().SendSMS(gomock.Any(), "+923003333333", "Default", gomock.Any()).
		Return(&models.SMSResponse{HTTPStatus: 200}, nil)

	result := uc.Dispatch(context.Background(), &models.DispatchRequest{
		UserID: user.ID.String(),
		Kind:   models.AlertEmergency,
	})

	assert.Equal(t, models.DispatchPartial, result.Status)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 3, result.TotalContacts)
	require.Len(t, result.Details, 3)
	assert.Equal(t, models.ContactSendSuccess, result.Details[0].Status)
	assert.Equal(t, models.ContactSendError, result.Details[1].Status)
	assert.Equal(t, models.ContactSendSuccess, result.Details[2].Status)
}

func TestDispatch_AllSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlertRepo(ctrl)
	mockGW := mocks.NewMockSMSGateway(ctrl)
	uc := NewAlertUC(alertConfig(), mockRepo, mockGW, nil)

	user := alertingUser()
	contacts := threeContacts(user.ID)

	mockRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(user, nil)
	mockRepo.EXPECT().ListEmergencyContacts(gomock.Any(), user.ID).Return(contacts, nil)
	mockGW.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.SMSResponse{HTTPStatus: 200}, nil).Times(3)

	result := uc.Dispatch(context.Background(), &models.DispatchRequest{
		UserID: user.ID.String(),
		Kind:   models.AlertCheck,
	})

	assert.Equal(t, models.DispatchSuccess, result.Status)
	assert.Equal(t, 3, result.SuccessCount)
}

func TestDispatch_NoContactsSendsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlertRepo(ctrl)
	mockGW := mocks.NewMockSMSGateway(ctrl)
	uc := NewAlertUC(alertConfig(), mockRepo, mockGW, nil)

	user := alertingUser()
	mockRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(user, nil)
	mockRepo.EXPECT().ListEmergencyContacts(gomock.Any(), user.ID).Return(nil, nil)

	// No SendSMS expectation: the gateway must not be touched
	result := uc.Dispatch(context.Background(), &models.DispatchRequest{
		UserID: user.ID.String(),
		Kind:   models.AlertEmergency,
	})

	assert.Equal(t, models.DispatchError, result.Status)
	assert.Contains(t, result.Message, "no emergency contacts")
}

func TestDispatch_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlertRepo(ctrl)
	uc := NewAlertUC(alertConfig(), mockRepo, mocks.NewMockSMSGateway(ctrl), nil)

	userID := uuid.New()
	mockRepo.EXPECT().FindUserByID(gomock.Any(), userID).Return(nil, nil)

	result := uc.Dispatch(context.Background(), &models.DispatchRequest{
		UserID: userID.String(),
		Kind:   models.AlertEmergency,
	})
	assert.Equal(t, models.DispatchError, result.Status)
}

func TestDispatch_MessageTemplates(t *testing.T) {
	user := alertingUser()

	tests := []struct {
		kind     models.AlertKind
		custom   string
		contains string
	}{
		{models.AlertEmergency, "", "EMERGENCY ALERT: Jane Doe"},
		{models.AlertWarning, "", "WARNING: Jane Doe"},
		{models.AlertCheck, "", "CHECK-IN: Jane Doe"},
		{models.AlertAccidental, "", "ACCIDENTAL ALERT: Jane Doe's previous alert"},
		{models.AlertCustom, "meet me at the corner", "meet me at the corner"},
	}
	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			msg := composeMessage(user, tc.kind, tc.custom)
			assert.Contains(t, msg, tc.contains)
		})
	}

	t.Run("emergency includes callback number", func(t *testing.T) {
		msg := composeMessage(user, models.AlertEmergency, "")
		assert.Contains(t, msg, "+923001234567")
	})
}

func TestDispatch_LocationAppended(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlertRepo(ctrl)
	mockGW := mocks.NewMockSMSGateway(ctrl)
	mockLoc := mocks.NewMockLocationProvider(ctrl)
	uc := NewAlertUC(alertConfig(), mockRepo, mockGW, mockLoc)

	user := alertingUser()
	contacts := threeContacts(user.ID)[:1]

	mockRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(user, nil)
	mockRepo.EXPECT().ListEmergencyContacts(gomock.Any(), user.ID).Return(contacts, nil)
	mockLoc.EXPECT().GetCurrentLocation(gomock.Any()).
		Return(&models.Location{Latitude: 24.8607, Longitude: 67.0011}, nil)

	var sentText string
	mockGW.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, text string) (*models.SMSResponse, error) {
			sentText = text
			return &models.SMSResponse{HTTPStatus: 200}, nil
		})

	result := uc.Dispatch(context.Background(), &models.DispatchRequest{
		UserID: user.ID.String(),
		Kind:   models.AlertEmergency,
	})

	assert.Equal(t, models.DispatchSuccess, result.Status)
	assert.Contains(t, sentText, "https://maps.google.com/?q=24.8607,67.0011")
	assert.NotEmpty(t, result.Geohash)
}

func TestDispatch_LocationFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlertRepo(ctrl)
	mockGW := mocks.NewMockSMSGateway(ctrl)
	mockLoc := mocks.NewMockLocationProvider(ctrl)
	uc := NewAlertUC(alertConfig(), mockRepo, mockGW, mockLoc)

	user := alertingUser()
	contacts := threeContacts(user.ID)[:1]

	mockRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(user, nil)
	mockRepo.EXPECT().ListEmergencyContacts(gomock.Any(), user.ID).Return(contacts, nil)
	mockLoc.EXPECT().GetCurrentLocation(gomock.Any()).Return(nil, errors.New("gps unavailable"))

	var sentText string
	mockGW.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, text string) (*models.SMSResponse, error) {
			sentText = text
			return &models.SMSResponse{HTTPStatus: 200}, nil
		})

	result := uc.Dispatch(context.Background(), &models.DispatchRequest{
		UserID: user.ID.String(),
		Kind:   models.AlertEmergency,
	})

	assert.Equal(t, models.DispatchSuccess, result.Status)
	assert.NotContains(t, sentText, "Location:")
	assert.Empty(t, result.Geohash)
}
