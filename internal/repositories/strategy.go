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

// StrategyReadRepository handles strategy catalog reads.
type StrategyReadRepository struct {
	db *sqlx.DB
}

func NewStrategyReadRepository(db *sqlx.DB) *StrategyReadRepository {
	return &StrategyReadRepository{db: db}
}

// List returns all active strategies ordered by category and expected ROI.
func (r *StrategyReadRepository) List(ctx context.Context) ([]models.StrategyDB, error) {
	const query = `
		SELECT strategy_id, name, description, category, risk_level, expected_roi,
		       min_investment, max_investment, is_active, created_at
		FROM strategies
		WHERE is_active = TRUE
		ORDER BY category, expected_roi DESC
	`

	var strategies []models.StrategyDB
	if err := r.db.SelectContext(ctx, &strategies, query); err != nil {
		return nil, err
	}
	return strategies, nil
}

// GetByID returns an active strategy by id, or nil if none exists.
func (r *StrategyReadRepository) GetByID(ctx context.Context, strategyID uuid.UUID) (*models.StrategyDB, error) {
	const query = `
		SELECT strategy_id, name, description, category, risk_level, expected_roi,
		       min_investment, max_investment, is_active, created_at
		FROM strategies
		WHERE strategy_id = $1 AND is_active = TRUE
	`

	var s models.StrategyDB
	err := r.db.GetContext(ctx, &s, query, strategyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// StrategySubscriptionRepository handles strategy subscription bookkeeping.
type StrategySubscriptionRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewStrategySubscriptionRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *StrategySubscriptionRepository {
	return &StrategySubscriptionRepository{db: db, txGetter: txGetter}
}

func (r *StrategySubscriptionRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new active strategy subscription.
func (r *StrategySubscriptionRepository) Save(ctx context.Context, sub *models.StrategySubscriptionDB) error {
	query := `
		INSERT INTO strategy_subscriptions (subscription_id, user_id, strategy_id, invested_amount, is_active, subscribed_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		sub.SubscriptionID, sub.UserID, sub.StrategyID, sub.InvestedAmount,
	)

	logger.Log.Infow("save strategy subscription",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", sub.UserID,
		"strategy_id", sub.StrategyID,
		"invested_amount", sub.InvestedAmount,
		"error", err,
	)

	return err
}

// GetActive returns the user's active subscription to a strategy, or nil.
func (r *StrategySubscriptionRepository) GetActive(ctx context.Context, userID, strategyID uuid.UUID) (*models.StrategySubscriptionDB, error) {
	const query = `
		SELECT subscription_id, user_id, strategy_id, invested_amount, is_active, subscribed_at, unsubscribed_at
		FROM strategy_subscriptions
		WHERE user_id = $1 AND strategy_id = $2 AND is_active = TRUE
	`

	var sub models.StrategySubscriptionDB
	err := r.db.GetContext(ctx, &sub, query, userID, strategyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListActiveByUser returns the user's active subscriptions, newest first.
func (r *StrategySubscriptionRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.StrategySubscriptionDB, error) {
	const query = `
		SELECT subscription_id, user_id, strategy_id, invested_amount, is_active, subscribed_at, unsubscribed_at
		FROM strategy_subscriptions
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY subscribed_at DESC
	`

	var subs []models.StrategySubscriptionDB
	if err := r.db.SelectContext(ctx, &subs, query, userID); err != nil {
		return nil, err
	}
	return subs, nil
}

// Deactivate closes an active subscription. Closing an already closed
// subscription affects zero rows and returns sql.ErrNoRows.
func (r *StrategySubscriptionRepository) Deactivate(ctx context.Context, subscriptionID uuid.UUID, unsubscribedAt time.Time) error {
	query := `
		UPDATE strategy_subscriptions
		SET is_active = FALSE, unsubscribed_at = $2
		WHERE subscription_id = $1 AND is_active = TRUE
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, subscriptionID, unsubscribedAt)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
