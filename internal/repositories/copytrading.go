package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// CopySubscriptionRepository handles copy-trading subscription bookkeeping.
type CopySubscriptionRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCopySubscriptionRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CopySubscriptionRepository {
	return &CopySubscriptionRepository{db: db, txGetter: txGetter}
}

func (r *CopySubscriptionRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Upsert creates a follower→trader subscription or, when the pair already
// exists, reactivates it with the new allocation.
func (r *CopySubscriptionRepository) Upsert(ctx context.Context, followerID, traderID uuid.UUID, allocation decimal.Decimal) error {
	query := `
		INSERT INTO copy_trading_subscriptions (subscription_id, follower_id, trader_id, allocation, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW(), NOW())
		ON CONFLICT (follower_id, trader_id)
		DO UPDATE SET allocation = EXCLUDED.allocation, is_active = TRUE, updated_at = NOW()
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, uuid.New(), followerID, traderID, allocation)

	logger.Log.Infow("upsert copy subscription",
		"query", strings.Join(strings.Fields(query), " "),
		"follower_id", followerID,
		"trader_id", traderID,
		"allocation", allocation,
		"error", err,
	)

	return err
}

// Deactivate clears the active flag on a follower→trader subscription.
func (r *CopySubscriptionRepository) Deactivate(ctx context.Context, followerID, traderID uuid.UUID) error {
	query := `
		UPDATE copy_trading_subscriptions
		SET is_active = FALSE, updated_at = NOW()
		WHERE follower_id = $1 AND trader_id = $2 AND is_active = TRUE
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, followerID, traderID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListActiveByFollower returns a follower's active subscriptions, newest first.
func (r *CopySubscriptionRepository) ListActiveByFollower(ctx context.Context, followerID uuid.UUID) ([]models.CopySubscriptionDB, error) {
	const query = `
		SELECT subscription_id, follower_id, trader_id, allocation, is_active, created_at, updated_at
		FROM copy_trading_subscriptions
		WHERE follower_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
	`

	var subs []models.CopySubscriptionDB
	if err := r.db.SelectContext(ctx, &subs, query, followerID); err != nil {
		return nil, err
	}
	return subs, nil
}
