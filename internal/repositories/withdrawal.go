package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrNotPending is returned when a status transition is attempted on a
// withdrawal that already left the pending state.
var ErrNotPending = errors.New("withdrawal is not pending")

// WithdrawalReadRepository handles withdrawal read operations.
type WithdrawalReadRepository struct {
	db *sqlx.DB
}

func NewWithdrawalReadRepository(db *sqlx.DB) *WithdrawalReadRepository {
	return &WithdrawalReadRepository{db: db}
}

// GetByID returns a withdrawal by id, or nil if none exists.
func (r *WithdrawalReadRepository) GetByID(ctx context.Context, withdrawalID uuid.UUID) (*models.WithdrawalDB, error) {
	const query = `
		SELECT withdrawal_id, user_id, amount, status, processed_by, notes, requested_at, processed_at
		FROM withdrawals
		WHERE withdrawal_id = $1
	`

	var w models.WithdrawalDB
	err := r.db.GetContext(ctx, &w, query, withdrawalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListByUser returns a user's withdrawal requests, newest first.
func (r *WithdrawalReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalDB, error) {
	const query = `
		SELECT withdrawal_id, user_id, amount, status, processed_by, notes, requested_at, processed_at
		FROM withdrawals
		WHERE user_id = $1
		ORDER BY requested_at DESC
	`

	var ws []models.WithdrawalDB
	if err := r.db.SelectContext(ctx, &ws, query, userID); err != nil {
		return nil, err
	}
	return ws, nil
}

// List returns all withdrawal requests, newest first.
func (r *WithdrawalReadRepository) List(ctx context.Context) ([]models.WithdrawalDB, error) {
	const query = `
		SELECT withdrawal_id, user_id, amount, status, processed_by, notes, requested_at, processed_at
		FROM withdrawals
		ORDER BY requested_at DESC
	`

	var ws []models.WithdrawalDB
	if err := r.db.SelectContext(ctx, &ws, query); err != nil {
		return nil, err
	}
	return ws, nil
}

// WithdrawalWriteRepository handles withdrawal write operations.
type WithdrawalWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWithdrawalWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WithdrawalWriteRepository {
	return &WithdrawalWriteRepository{db: db, txGetter: txGetter}
}

func (r *WithdrawalWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new pending withdrawal request.
func (r *WithdrawalWriteRepository) Save(ctx context.Context, w *models.WithdrawalDB) error {
	query := `
		INSERT INTO withdrawals (withdrawal_id, user_id, amount, status, notes, requested_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		w.WithdrawalID, w.UserID, w.Amount, w.Status, w.Notes,
	)

	logger.Log.Infow("save withdrawal",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", w.UserID,
		"amount", w.Amount,
		"error", err,
	)

	return err
}

// Resolve moves a pending withdrawal to a terminal status. The WHERE clause
// makes the transition exactly-once: resolving a request that already left
// pending affects zero rows and fails with ErrNotPending.
func (r *WithdrawalWriteRepository) Resolve(ctx context.Context, withdrawalID uuid.UUID, status string, adminID uuid.UUID, notes string, processedAt time.Time) error {
	query := `
		UPDATE withdrawals
		SET status = $2, processed_by = $3, notes = $4, processed_at = $5
		WHERE withdrawal_id = $1 AND status = 'pending'
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, withdrawalID, status, adminID, notes, processedAt)

	logger.Log.Infow("resolve withdrawal",
		"query", strings.Join(strings.Fields(query), " "),
		"withdrawal_id", withdrawalID,
		"status", status,
		"processed_by", adminID,
		"error", err,
	)

	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotPending
	}
	return nil
}
