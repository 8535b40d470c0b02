package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/safinity/safinity/internal/pkg/models"
	"github.com/safinity/safinity/services/account"
	"github.com/safinity/safinity/services/account/mocks"
)

func strPtr(s string) *string {
	return &s
}

func assertAccountCode(t *testing.T, err error, code string) {
	t.Helper()
	var accErr *account.AccountError
	require.ErrorAs(t, err, &accErr)
	assert.Equal(t, code, accErr.Code)
}

func TestCreateOrUpdateDraft_CreatesNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(testConfig(), mockRepo, mocks.NewMockSMSGateway(ctrl), nil)

	mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(nil, nil)
	mockRepo.EXPECT().FindUserByPhoneVariants(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().FindCurrentDraft(gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, draft *models.DraftSignup) error {
			draft.ID = 1
			return nil
		})

	draft, err := uc.CreateOrUpdateDraft(context.Background(), &models.DraftRequest{
		Email:       strPtr("a@x.com"),
		PhoneNumber: strPtr("03001234567"),
		Password:    strPtr("secret1"),
	})
	require.NoError(t, err)
	require.NotNil(t, draft)

	assert.Equal(t, "+923001234567", *draft.PhoneNumber)
	require.NotNil(t, draft.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*draft.PasswordHash), []byte("secret1")))
}

func TestCreateOrUpdateDraft_MergesWithoutClearing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(testConfig(), mockRepo, mocks.NewMockSMSGateway(ctrl), nil)

	current := &models.DraftSignup{
		ID:          5,
		Email:       strPtr("a@x.com"),
		PhoneNumber: strPtr("+923001234567"),
	}
	mockRepo.EXPECT().FindCurrentDraft(gomock.Any()).Return(current, nil)
	mockRepo.EXPECT().FindOtherDrafts(gomock.Any(), int64(5)).Return(nil, nil)
	mockRepo.EXPECT().UpdateDraft(gomock.Any(), gomock.Any()).Return(nil)

	// Only the country is supplied; email and phone stay as they are
	draft, err := uc.CreateOrUpdateDraft(context.Background(), &models.DraftRequest{
		Country: strPtr("Pakistan"),
	})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", *draft.Email)
	assert.Equal(t, "+923001234567", *draft.PhoneNumber)
	assert.Equal(t, "Pakistan", *draft.Country)
}

func TestCreateOrUpdateDraft_UserEmailCollisionClearsDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(testConfig(), mockRepo, mocks.NewMockSMSGateway(ctrl), nil)

	existing := &models.User{ID: uuid.New(), Email: strPtr("a@x.com")}
	current := &models.DraftSignup{ID: 5}

	mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(existing, nil)
	mockRepo.EXPECT().FindCurrentDraft(gomock.Any()).Return(current, nil)
	mockRepo.EXPECT().DeleteDraft(gomock.Any(), int64(5)).Return(nil)

	_, err := uc.CreateOrUpdateDraft(context.Background(), &models.DraftRequest{
		Email: strPtr("a@x.com"),
	})
	assertAccountCode(t, err, account.CodeUserExistsEmail)
}

func TestCreateOrUpdateDraft_UserPhoneCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(testConfig(), mockRepo, mocks.NewMockSMSGateway(ctrl), nil)

	existing := &models.User{ID: uuid.New(), PhoneNumber: strPtr("+923001234567")}

	mockRepo.EXPECT().FindUserByPhoneVariants(gomock.Any(), gomock.Any()).Return(existing, nil)
	mockRepo.EXPECT().FindCurrentDraft(gomock.Any()).Return(nil, nil)

	_, err := uc.CreateOrUpdateDraft(context.Background(), &models.DraftRequest{
		PhoneNumber: strPtr("03001234567"),
	})
	assertAccountCode(t, err, account.CodeUserExistsPhone)
}

func TestCreateOrUpdateDraft_DuplicateDraftEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(testConfig(), mockRepo, mocks.NewMockSMSGateway(ctrl), nil)

	current := &models.DraftSignup{ID: 5, PhoneNumber: strPtr("+923001111111")}
	other := models.DraftSignup{ID: 3, Email: strPtr("a@x.com")}

	mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(nil, nil)
	mockRepo.EXPECT().FindCurrentDraft(gomock.Any()).Return(current, nil)
	mockRepo.EXPECT().FindOtherDrafts(gomock.Any(), int64(5)).Return([]models.DraftSignup{other}, nil)

	// No UpdateDraft expectation: the current draft stays untouched
	_, err := uc.CreateOrUpdateDraft(context.Background(), &models.DraftRequest{
		Email: strPtr("a@x.com"),
	})
	assertAccountCode(t, err, account.CodeDuplicateDraftEmail)
}

func TestPromoteBasic_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(testConfig(), mockRepo, mocks.NewMockSMSGateway(ctrl), nil)

	draft := &models.DraftSignup{
		ID:           5,
		Email:        strPtr("a@x.com"),
		PhoneNumber:  strPtr("+923001234567"),
		PasswordHash: strPtr("$2a$10$hash"),
		Country:      strPtr("Pakistan"),
	}
	mockRepo.EXPECT().FindCurrentDraft(gomock.Any()).Return(draft, nil)
	mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(nil, nil)
	mockRepo.EXPECT().FindUserByPhoneVariants(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().PromoteDraft(gomock.Any(), int64(5), gomock.Any()).Return(nil)

	user, err := uc.PromoteBasic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", *user.Email)
	assert.True(t, user.IsVerified)
	assert.Nil(t, user.FullName)
}

func TestPromoteBasic_MissingDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(testConfig(), mockRepo, mocks.NewMockSMSGateway(ctrl), nil)

	mockRepo.EXPECT().FindCurrentDraft(gomock.Any()).Return(nil, nil)

	_, err := uc.PromoteBasic(context.Background())
	assertAccountCode(t, err, account.CodeMissingDraft)
}

func TestPromoteBasic_CollisionDeletesDraftWithoutPromoting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(testConfig(), mockRepo, mocks.NewMockSMSGateway(ctrl), nil)

	draft := &models.DraftSignup{
		ID:           5,
		Email:        strPtr("a@x.com"),
		PhoneNumber:  strPtr("+923001234567"),
		PasswordHash: strPtr("$2a$10$hash"),
		Country:      strPtr("Pakistan"),
	}
	existing := &models.User{ID: uuid.New(), Email: strPtr("a@x.com")}

	mockRepo.EXPECT().FindCurrentDraft(gomock.Any()).Return(draft, nil)
	mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(existing, nil)
	mockRepo.EXPECT().DeleteDraft(gomock.Any(), int64(5)).Return(nil)

	// No PromoteDraft expectation: the users table must gain no row
	_, err := uc.PromoteBasic(context.Background())
	assertAccountCode(t, err, account.CodeUserExistsEmail)
}

func TestPromoteBasic_IncompleteDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(testConfig(), mockRepo, mocks.NewMockSMSGateway(ctrl), nil)

	draft := &models.DraftSignup{ID: 5, Email: strPtr("a@x.com")}
	mockRepo.EXPECT().FindCurrentDraft(gomock.Any()).Return(draft, nil)

	_, err := uc.PromoteBasic(context.Background())
	assertAccountCode(t, err, account.CodeMissingRequiredField)
}

func TestPromoteFull_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(testConfig(), mockRepo, mocks.NewMockSMSGateway(ctrl), nil)

	draft := &models.DraftSignup{
		ID:           5,
		Email:        strPtr("a@x.com"),
		PhoneNumber:  strPtr("+923001234567"),
		PasswordHash: strPtr("$2a$10$hash"),
		Country:      strPtr("Pakistan"),
	}
	mockRepo.EXPECT().FindCurrentDraft(gomock.Any()).Return(draft, nil)
	mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(nil, nil)
	mockRepo.EXPECT().FindUserByPhoneVariants(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().PromoteDraft(gomock.Any(), int64(5), gomock.Any()).Return(nil)

	user, err := uc.PromoteFull(context.Background(), &models.ProfileCompletion{
		FullName:    "Jane Doe",
		DateOfBirth: "01/01/1990",
		Gender:      models.GenderFemale,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", *user.FullName)
	assert.True(t, user.IsVerified)
}

func TestPromoteFull_MissingProfileFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAccountUC(testConfig(), mocks.NewMockAccountRepo(ctrl), mocks.NewMockSMSGateway(ctrl), nil)

	_, err := uc.PromoteFull(context.Background(), &models.ProfileCompletion{
		FullName: "Jane Doe",
	})
	assertAccountCode(t, err, account.CodeMissingRequiredField)
}
