package repositories

import (
	"context"
	"strings"

	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// TradeReadRepository handles trade read operations.
type TradeReadRepository struct {
	db *sqlx.DB
}

func NewTradeReadRepository(db *sqlx.DB) *TradeReadRepository {
	return &TradeReadRepository{db: db}
}

// ListByUser returns a user's trades, newest first.
func (r *TradeReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TradeDB, error) {
	const query = `
		SELECT trade_id, user_id, asset, side, size, price, total, status, created_at
		FROM trades
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var trades []models.TradeDB
	if err := r.db.SelectContext(ctx, &trades, query, userID); err != nil {
		return nil, err
	}
	return trades, nil
}

// GetPosition returns the user's net completed position in an asset:
// sum of buy sizes minus sum of sell sizes.
func (r *TradeReadRepository) GetPosition(ctx context.Context, userID uuid.UUID, asset string) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(CASE WHEN side = 'buy' THEN size ELSE -size END), 0)
		FROM trades
		WHERE user_id = $1 AND asset = $2 AND status = 'completed'
	`

	var position decimal.Decimal
	if err := r.db.GetContext(ctx, &position, query, userID, asset); err != nil {
		return decimal.Zero, err
	}
	return position, nil
}

// TradeWriteRepository handles trade write operations.
type TradeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTradeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TradeWriteRepository {
	return &TradeWriteRepository{db: db, txGetter: txGetter}
}

func (r *TradeWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a trade record.
func (r *TradeWriteRepository) Save(ctx context.Context, trade *models.TradeDB) error {
	query := `
		INSERT INTO trades (trade_id, user_id, asset, side, size, price, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		trade.TradeID, trade.UserID, trade.Asset, trade.Side,
		trade.Size, trade.Price, trade.Total, trade.Status,
	)

	logger.Log.Infow("save trade",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", trade.UserID,
		"asset", trade.Asset,
		"side", trade.Side,
		"error", err,
	)

	return err
}
