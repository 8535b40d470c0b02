package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safinity/safinity/internal/pkg/database"
	"github.com/safinity/safinity/internal/pkg/models"
)

func setupAccountRepoTest(t *testing.T) (*AccountRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &AccountRepo{
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
		cfg:         &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func userColumns() []string {
	return []string{
		"id", "email", "phone_number", "password_hash", "country",
		"full_name", "date_of_birth", "gender", "address", "profile_picture",
		"is_verified", "last_phone_change", "created_at", "updated_at",
	}
}

func userRow(id uuid.UUID, email, phone string) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id, email, phone, "$2a$10$hash", "Pakistan",
		"Jane Doe", "01/01/1990", "Female", nil, nil,
		true, nil, now, now,
	}
}

func TestFindUserByEmail(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	rows := sqlmock.NewRows(userColumns()).
		AddRow(userRow(userID, "a@x.com", "+923001234567")...)
	mock.ExpectQuery("^SELECT \\* FROM users WHERE email").
		WithArgs("a@x.com").
		WillReturnRows(rows)

	user, err := repo.FindUserByEmail(context.Background(), "a@x.com")
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "a@x.com", *user.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT \\* FROM users WHERE email").
		WithArgs("missing@x.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	user, err := repo.FindUserByEmail(context.Background(), "missing@x.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestFindUserByPhoneVariants(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440001")
	rows := sqlmock.NewRows(userColumns()).
		AddRow(userRow(userID, "b@x.com", "03001234567")...)
	mock.ExpectQuery("^SELECT \\* FROM users WHERE phone_number IN").
		WithArgs("+923001234567", "03001234567", "923001234567").
		WillReturnRows(rows)

	user, err := repo.FindUserByPhoneVariants(context.Background(),
		[]string{"+923001234567", "03001234567", "923001234567"})
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "03001234567", *user.PhoneNumber)
}

func TestFindUserByPhoneVariants_Empty(t *testing.T) {
	repo, _, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	user, err := repo.FindUserByPhoneVariants(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestCreateUser(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	email := "a@x.com"
	phone := "+923001234567"
	user := &models.User{
		Email:        &email,
		PhoneNumber:  &phone,
		PasswordHash: "$2a$10$hash",
		IsVerified:   true,
	}
	err := repo.CreateUser(context.Background(), user)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestDeleteUser(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("^DELETE FROM emergency_contacts WHERE user_id").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("^DELETE FROM users WHERE id").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("^DELETE FROM emergency_contacts WHERE user_id").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("^DELETE FROM users WHERE id").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteUser(context.Background(), userID)
	assert.Error(t, err)
}

func TestUpdateUser_DBError(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^UPDATE users SET").
		WillReturnError(errors.New("connection reset"))

	user := &models.User{ID: uuid.New()}
	err := repo.UpdateUser(context.Background(), user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update user")
}
