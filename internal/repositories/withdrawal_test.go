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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var withdrawalRowColumns = []string{
	"withdrawal_id", "user_id", "amount", "status", "processed_by", "notes", "requested_at", "processed_at",
}

func TestWithdrawalReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewWithdrawalReadRepository(db)

	withdrawalID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM withdrawals")).
		WithArgs(withdrawalID).
		WillReturnRows(sqlmock.NewRows(withdrawalRowColumns).AddRow(
			withdrawalID, userID, "75", models.WithdrawalStatusPending, nil, "", time.Now(), nil,
		))

	w, err := repo.GetByID(context.Background(), withdrawalID)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, models.WithdrawalStatusPending, w.Status)
	assert.True(t, w.Amount.Equal(decimal.NewFromInt(75)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalReadRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewWithdrawalReadRepository(db)

	withdrawalID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM withdrawals")).
		WithArgs(withdrawalID).
		WillReturnRows(sqlmock.NewRows(withdrawalRowColumns))

	w, err := repo.GetByID(context.Background(), withdrawalID)
	require.NoError(t, err)
	assert.Nil(t, w)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewWithdrawalWriteRepository(db, nil)

	w := &models.WithdrawalDB{
		WithdrawalID: uuid.New(),
		UserID:       uuid.New(),
		Amount:       decimal.NewFromInt(50),
		Status:       models.WithdrawalStatusPending,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO withdrawals")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(context.Background(), w))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalWriteRepository_Resolve(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewWithdrawalWriteRepository(db, nil)

	withdrawalID := uuid.New()
	adminID := uuid.New()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("AND status = 'pending'")).
		WithArgs(withdrawalID, models.WithdrawalStatusApproved, adminID, "ok", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Resolve(context.Background(), withdrawalID, models.WithdrawalStatusApproved, adminID, "ok", now)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalWriteRepository_Resolve_AlreadyProcessed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewWithdrawalWriteRepository(db, nil)

	withdrawalID := uuid.New()
	adminID := uuid.New()
	now := time.Now()

	// Zero affected rows: the request already left the pending state.
	mock.ExpectExec(regexp.QuoteMeta("AND status = 'pending'")).
		WithArgs(withdrawalID, models.WithdrawalStatusRejected, adminID, "", now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Resolve(context.Background(), withdrawalID, models.WithdrawalStatusRejected, adminID, "", now)
	assert.ErrorIs(t, err, repositories.ErrNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}
