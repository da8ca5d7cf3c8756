package repositories_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/cookiecash/trading-wallet/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{
	"user_id", "email", "password_hash", "role", "is_blocked", "created_at", "updated_at",
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewUserReadRepository(db)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(
			userID, "alice@example.com", "hash", models.RoleUser, false, now, now,
		))

	user, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.UserID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewUserReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	user, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewUserReadRepository(db)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(
			userID, "alice@example.com", "hash", models.RoleAdmin, false, now, now,
		))

	user, err := repo.GetByID(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewUserWriteRepository(db, nil)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(userID))

	saved, err := repo.Save(context.Background(), "alice@example.com", "hash", models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, userID, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_SetBlocked(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewUserWriteRepository(db, nil)

	userID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs(userID, true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetBlocked(context.Background(), userID, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_SetBlocked_UnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewUserWriteRepository(db, nil)

	userID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs(userID, true).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetBlocked(context.Background(), userID, true)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
