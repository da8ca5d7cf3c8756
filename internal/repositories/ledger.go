package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// ErrLedgerConflict is returned when a competing write is detected on the
// same user's chain between the caller's read and the append.
var ErrLedgerConflict = errors.New("ledger chain conflict")

const ledgerColumns = `
	transaction_id, user_id, transaction_type, amount,
	balance_before, balance_after, profit_before, profit_after,
	reference_id, description, created_at
`

// LedgerReadRepository handles ledger read operations.
type LedgerReadRepository struct {
	db *sqlx.DB
}

func NewLedgerReadRepository(db *sqlx.DB) *LedgerReadRepository {
	return &LedgerReadRepository{db: db}
}

// GetLatest returns the most recent ledger row for a user, or nil if the
// user has no transactions yet.
func (r *LedgerReadRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*models.WalletTransactionDB, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM wallet_transactions
		WHERE user_id = $1
		ORDER BY seq DESC
		LIMIT 1
	`

	var entry models.WalletTransactionDB
	err := r.db.GetContext(ctx, &entry, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByUser returns a user's full transaction history in creation order.
func (r *LedgerReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WalletTransactionDB, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM wallet_transactions
		WHERE user_id = $1
		ORDER BY seq ASC
	`

	var entries []models.WalletTransactionDB
	if err := r.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByUserAndType returns a user's transactions of one type, newest first.
func (r *LedgerReadRepository) ListByUserAndType(ctx context.Context, userID uuid.UUID, txType string) ([]models.WalletTransactionDB, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM wallet_transactions
		WHERE user_id = $1 AND transaction_type = $2
		ORDER BY seq DESC
	`

	var entries []models.WalletTransactionDB
	if err := r.db.SelectContext(ctx, &entries, query, userID, txType); err != nil {
		return nil, err
	}
	return entries, nil
}

// LedgerWriteRepository appends ledger rows. Rows are never updated or
// deleted.
type LedgerWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLedgerWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LedgerWriteRepository {
	return &LedgerWriteRepository{db: db, txGetter: txGetter}
}

func (r *LedgerWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Append writes a new ledger row. When running inside a transaction it first
// takes a per-user advisory lock and re-checks that the caller's
// balance_before and profit_before still match the tip of the chain; a
// mismatch means a competing write slipped in and the append fails with
// ErrLedgerConflict.
func (r *LedgerWriteRepository) Append(ctx context.Context, entry *models.WalletTransactionDB) error {
	executor := r.executor(ctx)

	if tx, ok := executor.(*sqlx.Tx); ok {
		if _, err := tx.ExecContext(ctx,
			`SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, entry.UserID); err != nil {
			return err
		}

		var tip struct {
			BalanceAfter string `db:"balance_after"`
			ProfitAfter  string `db:"profit_after"`
		}
		err := tx.GetContext(ctx, &tip, `
			SELECT balance_after::text, profit_after::text
			FROM wallet_transactions
			WHERE user_id = $1
			ORDER BY seq DESC
			LIMIT 1
		`, entry.UserID)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			if !entry.BalanceBefore.IsZero() || !entry.ProfitBefore.IsZero() {
				return ErrLedgerConflict
			}
		case err != nil:
			return err
		default:
			balance, perr := decimal.NewFromString(tip.BalanceAfter)
			if perr != nil {
				return perr
			}
			profit, perr := decimal.NewFromString(tip.ProfitAfter)
			if perr != nil {
				return perr
			}
			if !balance.Equal(entry.BalanceBefore) || !profit.Equal(entry.ProfitBefore) {
				return ErrLedgerConflict
			}
		}
	}

	query := `
		INSERT INTO wallet_transactions (
			transaction_id, user_id, transaction_type, amount,
			balance_before, balance_after, profit_before, profit_after,
			reference_id, description, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	`

	_, err := executor.ExecContext(ctx, query,
		entry.TransactionID, entry.UserID, entry.Type, entry.Amount,
		entry.BalanceBefore, entry.BalanceAfter, entry.ProfitBefore, entry.ProfitAfter,
		entry.ReferenceID, entry.Description,
	)

	logger.Log.Infow("append ledger row",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", entry.UserID,
		"transaction_type", entry.Type,
		"amount", entry.Amount,
		"error", err,
	)

	return err
}
