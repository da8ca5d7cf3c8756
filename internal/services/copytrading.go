package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAllocation is returned when the allocation is outside (0, 100].
	ErrInvalidAllocation = errors.New("allocation must be between 0 and 100")
	// ErrTraderNotFound is returned when the trader id is unknown.
	ErrTraderNotFound = errors.New("trader not found")
	// ErrSelfSubscription is returned when a user tries to copy themselves.
	ErrSelfSubscription = errors.New("cannot subscribe to yourself")
	// ErrNotSubscribed is returned on unsubscribe without an active subscription.
	ErrNotSubscribed = errors.New("no active subscription")
)

// CopySubscriptionStore persists follower→trader links.
type CopySubscriptionStore interface {
	Upsert(ctx context.Context, followerID, traderID uuid.UUID, allocation decimal.Decimal) error
	Deactivate(ctx context.Context, followerID, traderID uuid.UUID) error
	ListActiveByFollower(ctx context.Context, followerID uuid.UUID) ([]models.CopySubscriptionDB, error)
}

// CopyTradingService keeps copy-trading subscription bookkeeping.
type CopyTradingService struct {
	subs  CopySubscriptionStore
	users UserReader
}

// NewCopyTradingService creates a new CopyTradingService.
func NewCopyTradingService(subs CopySubscriptionStore, users UserReader) *CopyTradingService {
	return &CopyTradingService{subs: subs, users: users}
}

// Subscribe links a follower to a trader with the given allocation
// percentage. Subscribing again to the same trader updates the allocation.
func (s *CopyTradingService) Subscribe(ctx context.Context, followerID, traderID uuid.UUID, allocation decimal.Decimal) error {
	if !allocation.IsPositive() || allocation.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidAllocation
	}
	if followerID == traderID {
		return ErrSelfSubscription
	}

	trader, err := s.users.GetByID(ctx, traderID)
	if err != nil {
		logger.Log.Errorw("failed to look up trader", "trader_id", traderID, "error", err)
		return err
	}
	if trader == nil {
		return ErrTraderNotFound
	}

	return s.subs.Upsert(ctx, followerID, traderID, allocation)
}

// Unsubscribe deactivates the follower's subscription to a trader.
func (s *CopyTradingService) Unsubscribe(ctx context.Context, followerID, traderID uuid.UUID) error {
	err := s.subs.Deactivate(ctx, followerID, traderID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotSubscribed
	}
	return err
}

// ListSubscriptions returns the follower's active subscriptions.
func (s *CopyTradingService) ListSubscriptions(ctx context.Context, followerID uuid.UUID) ([]models.CopySubscriptionDB, error) {
	return s.subs.ListActiveByFollower(ctx, followerID)
}
