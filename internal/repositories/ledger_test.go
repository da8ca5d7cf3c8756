package repositories_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/cookiecash/trading-wallet/internal/repositories"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	_ = logger.Initialize("error")
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

var ledgerRowColumns = []string{
	"transaction_id", "user_id", "transaction_type", "amount",
	"balance_before", "balance_after", "profit_before", "profit_after",
	"reference_id", "description", "created_at",
}

func TestLedgerReadRepository_GetLatest(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewLedgerReadRepository(db)

	userID := uuid.New()
	txID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_transactions")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(ledgerRowColumns).AddRow(
			txID, userID, models.TxTypeDeposit, "100",
			"0", "100", "0", "0",
			nil, "initial deposit", time.Now(),
		))

	entry, err := repo.GetLatest(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, txID, entry.TransactionID)
	assert.True(t, entry.BalanceAfter.Equal(decimal.NewFromInt(100)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerReadRepository_GetLatest_NoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewLedgerReadRepository(db)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_transactions")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(ledgerRowColumns))

	entry, err := repo.GetLatest(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerReadRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewLedgerReadRepository(db)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_transactions")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(ledgerRowColumns).
			AddRow(uuid.New(), userID, models.TxTypeDeposit, "100", "0", "100", "0", "0", nil, "", time.Now()).
			AddRow(uuid.New(), userID, models.TxTypeWithdraw, "30", "100", "70", "0", "0", nil, "", time.Now()))

	entries, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[1].BalanceBefore.Equal(entries[0].BalanceAfter))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerWriteRepository_Append_NoTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewLedgerWriteRepository(db, nil)

	entry := &models.WalletTransactionDB{
		TransactionID: uuid.New(),
		UserID:        uuid.New(),
		Type:          models.TxTypeDeposit,
		Amount:        decimal.NewFromInt(100),
		BalanceBefore: decimal.Zero,
		BalanceAfter:  decimal.NewFromInt(100),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wallet_transactions")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Append(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerWriteRepository_Append_InTransaction(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	repo := repositories.NewLedgerWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })

	entry := &models.WalletTransactionDB{
		TransactionID: uuid.New(),
		UserID:        uuid.New(),
		Type:          models.TxTypeWithdraw,
		Amount:        decimal.NewFromInt(30),
		BalanceBefore: decimal.NewFromInt(100),
		BalanceAfter:  decimal.NewFromInt(70),
	}

	mock.ExpectExec(regexp.QuoteMeta("pg_advisory_xact_lock")).
		WithArgs(entry.UserID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT balance_after::text, profit_after::text")).
		WithArgs(entry.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"balance_after", "profit_after"}).AddRow("100", "0"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wallet_transactions")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Append(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerWriteRepository_Append_TipMoved(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	repo := repositories.NewLedgerWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })

	entry := &models.WalletTransactionDB{
		TransactionID: uuid.New(),
		UserID:        uuid.New(),
		Type:          models.TxTypeWithdraw,
		Amount:        decimal.NewFromInt(30),
		BalanceBefore: decimal.NewFromInt(100),
		BalanceAfter:  decimal.NewFromInt(70),
	}

	mock.ExpectExec(regexp.QuoteMeta("pg_advisory_xact_lock")).
		WithArgs(entry.UserID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// Another writer appended a row since the caller read the chain tip.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT balance_after::text, profit_after::text")).
		WithArgs(entry.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"balance_after", "profit_after"}).AddRow("130", "0"))

	assert.ErrorIs(t, repo.Append(context.Background(), entry), repositories.ErrLedgerConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerWriteRepository_Append_ProfitTipMoved(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	repo := repositories.NewLedgerWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })

	entry := &models.WalletTransactionDB{
		TransactionID: uuid.New(),
		UserID:        uuid.New(),
		Type:          models.TxTypeWithdraw,
		Amount:        decimal.NewFromInt(30),
		BalanceBefore: decimal.NewFromInt(100),
		BalanceAfter:  decimal.NewFromInt(70),
		ProfitBefore:  decimal.Zero,
		ProfitAfter:   decimal.Zero,
	}

	mock.ExpectExec(regexp.QuoteMeta("pg_advisory_xact_lock")).
		WithArgs(entry.UserID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// A profit adjustment landed in between: balance_after still matches but
	// profit_after does not, so the caller's profit_before is stale.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT balance_after::text, profit_after::text")).
		WithArgs(entry.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"balance_after", "profit_after"}).AddRow("100", "25"))

	assert.ErrorIs(t, repo.Append(context.Background(), entry), repositories.ErrLedgerConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerWriteRepository_Append_FirstRowMustStartAtZero(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	repo := repositories.NewLedgerWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })

	entry := &models.WalletTransactionDB{
		TransactionID: uuid.New(),
		UserID:        uuid.New(),
		Type:          models.TxTypeDeposit,
		Amount:        decimal.NewFromInt(100),
		BalanceBefore: decimal.NewFromInt(50),
		BalanceAfter:  decimal.NewFromInt(150),
	}

	mock.ExpectExec(regexp.QuoteMeta("pg_advisory_xact_lock")).
		WithArgs(entry.UserID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT balance_after::text, profit_after::text")).
		WithArgs(entry.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"balance_after", "profit_after"}))

	assert.ErrorIs(t, repo.Append(context.Background(), entry), repositories.ErrLedgerConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
