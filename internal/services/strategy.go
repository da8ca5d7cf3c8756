package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/cookiecash/trading-wallet/internal/pnl"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var (
	// ErrStrategyNotFound is returned when the strategy id is unknown or inactive.
	ErrStrategyNotFound = errors.New("strategy not found")
	// ErrBelowMinInvestment is returned when the amount is under the strategy minimum.
	ErrBelowMinInvestment = errors.New("amount below minimum investment")
	// ErrAboveMaxInvestment is returned when the amount exceeds the strategy maximum.
	ErrAboveMaxInvestment = errors.New("amount above maximum investment")
	// ErrStrategyNotSubscribed is returned on unsubscribe without an active subscription.
	ErrStrategyNotSubscribed = errors.New("no active strategy subscription")
)

// minimumDailyEarningsRate guarantees a floor on accrued earnings per day of
// subscription, matching the platform's advertised behavior.
var minimumDailyEarningsRate = decimal.NewFromFloat(0.0001)

// StrategyReader reads the strategy catalog.
type StrategyReader interface {
	List(ctx context.Context) ([]models.StrategyDB, error)
	GetByID(ctx context.Context, strategyID uuid.UUID) (*models.StrategyDB, error)
}

// StrategySubscriptionStore persists strategy subscriptions.
type StrategySubscriptionStore interface {
	Save(ctx context.Context, sub *models.StrategySubscriptionDB) error
	GetActive(ctx context.Context, userID, strategyID uuid.UUID) (*models.StrategySubscriptionDB, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.StrategySubscriptionDB, error)
	Deactivate(ctx context.Context, subscriptionID uuid.UUID, unsubscribedAt time.Time) error
}

// StrategyPosition is an active subscription joined with its strategy and
// the earnings accrued so far.
type StrategyPosition struct {
	Subscription models.StrategySubscriptionDB `json:"subscription"`
	Strategy     models.StrategyDB             `json:"strategy"`
	DaysActive   int                           `json:"days_active"`
	Earnings     decimal.Decimal               `json:"earnings"`
	Performance  pnl.Performance               `json:"performance"`
}

// StrategyService handles strategy investments. Subscribing debits the
// wallet (strategy_investment); unsubscribing credits principal plus accrued
// earnings (strategy_unsubscription).
type StrategyService struct {
	strategies  StrategyReader
	subs        StrategySubscriptionStore
	ledger      LedgerApplier
	users       UserReader
	kafkaWriter KafkaWriter
}

// NewStrategyService creates a new StrategyService. kafkaWriter may be nil.
func NewStrategyService(
	strategies StrategyReader,
	subs StrategySubscriptionStore,
	ledger LedgerApplier,
	users UserReader,
	kafkaWriter KafkaWriter,
) *StrategyService {
	return &StrategyService{
		strategies:  strategies,
		subs:        subs,
		ledger:      ledger,
		users:       users,
		kafkaWriter: kafkaWriter,
	}
}

// ListStrategies returns the active strategy catalog.
func (s *StrategyService) ListStrategies(ctx context.Context) ([]models.StrategyDB, error) {
	return s.strategies.List(ctx)
}

// Subscribe invests the given amount into a strategy. The principal is
// debited from the wallet in the same request transaction that creates the
// subscription.
func (s *StrategyService) Subscribe(ctx context.Context, userID, strategyID uuid.UUID, amount decimal.Decimal) (*models.StrategySubscriptionDB, error) {
	strategy, err := s.strategies.GetByID(ctx, strategyID)
	if err != nil {
		logger.Log.Errorw("failed to load strategy", "strategy_id", strategyID, "error", err)
		return nil, err
	}
	if strategy == nil {
		return nil, ErrStrategyNotFound
	}

	if amount.LessThan(strategy.MinInvestment) {
		return nil, ErrBelowMinInvestment
	}
	if strategy.MaxInvestment != nil && amount.GreaterThan(*strategy.MaxInvestment) {
		return nil, ErrAboveMaxInvestment
	}

	sub := &models.StrategySubscriptionDB{
		SubscriptionID: uuid.New(),
		UserID:         userID,
		StrategyID:     strategyID,
		InvestedAmount: amount,
		IsActive:       true,
		SubscribedAt:   time.Now(),
	}
	if err := s.subs.Save(ctx, sub); err != nil {
		logger.Log.Errorw("failed to save strategy subscription", "user_id", userID, "strategy_id", strategyID, "error", err)
		return nil, err
	}

	refID := sub.SubscriptionID
	if _, err := s.ledger.Apply(ctx, userID, models.TxTypeStrategyInvestment, amount, "investment into "+strategy.Name, &refID); err != nil {
		return nil, err
	}

	s.notifySubscribed(ctx, userID, strategy, amount)

	return sub, nil
}

// Unsubscribe exits an active strategy subscription and credits the
// principal plus accrued earnings back to the wallet. It returns the total
// credited amount.
func (s *StrategyService) Unsubscribe(ctx context.Context, userID, strategyID uuid.UUID) (decimal.Decimal, error) {
	sub, err := s.subs.GetActive(ctx, userID, strategyID)
	if err != nil {
		logger.Log.Errorw("failed to load strategy subscription", "user_id", userID, "strategy_id", strategyID, "error", err)
		return decimal.Zero, err
	}
	if sub == nil {
		return decimal.Zero, ErrStrategyNotSubscribed
	}

	strategy, err := s.strategies.GetByID(ctx, strategyID)
	if err != nil {
		return decimal.Zero, err
	}
	if strategy == nil {
		return decimal.Zero, ErrStrategyNotFound
	}

	days := daysActive(sub.SubscribedAt, time.Now())
	earnings := AccruedEarnings(sub.InvestedAmount, strategy.ExpectedROI, days)
	total := sub.InvestedAmount.Add(earnings)

	if err := s.subs.Deactivate(ctx, sub.SubscriptionID, time.Now()); err != nil {
		logger.Log.Errorw("failed to deactivate strategy subscription", "subscription_id", sub.SubscriptionID, "error", err)
		return decimal.Zero, err
	}

	refID := sub.SubscriptionID
	if _, err := s.ledger.Apply(ctx, userID, models.TxTypeStrategyUnsubscription, total, "exit from "+strategy.Name, &refID); err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

// MyStrategies returns the user's active subscriptions joined with their
// strategies, accrued earnings and performance metrics.
func (s *StrategyService) MyStrategies(ctx context.Context, userID uuid.UUID) ([]StrategyPosition, error) {
	subs, err := s.subs.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	positions := make([]StrategyPosition, 0, len(subs))
	for _, sub := range subs {
		strategy, err := s.strategies.GetByID(ctx, sub.StrategyID)
		if err != nil {
			return nil, err
		}
		if strategy == nil {
			continue
		}

		days := daysActive(sub.SubscribedAt, time.Now())
		dailyRate, _ := strategy.ExpectedROI.Div(decimal.NewFromInt(100)).Float64()
		perf := pnl.Calculate(pnl.ConstantReturns(dailyRate, days), pnl.Options{RiskFreeRate: 0.02})

		positions = append(positions, StrategyPosition{
			Subscription: sub,
			Strategy:     *strategy,
			DaysActive:   days,
			Earnings:     AccruedEarnings(sub.InvestedAmount, strategy.ExpectedROI, days),
			Performance:  perf,
		})
	}
	return positions, nil
}

// daysActive counts full days between two timestamps, at least one.
func daysActive(from, to time.Time) int {
	days := int(to.Sub(from).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// AccruedEarnings compounds the strategy's expected daily ROI (a percentage)
// over the given number of days, with a minimum guaranteed accrual per day.
func AccruedEarnings(invested, expectedROI decimal.Decimal, days int) decimal.Decimal {
	if days < 1 {
		days = 1
	}

	dailyRate := expectedROI.Div(decimal.NewFromInt(100))
	factor := decimal.NewFromInt(1).Add(dailyRate).Pow(decimal.NewFromInt(int64(days)))
	earnings := invested.Mul(factor.Sub(decimal.NewFromInt(1)))

	floor := invested.Mul(minimumDailyEarningsRate).Mul(decimal.NewFromInt(int64(days)))
	if earnings.LessThan(floor) {
		return floor.Round(8)
	}
	return earnings.Round(8)
}

// notifySubscribed publishes a strategy-subscription notification, best effort.
func (s *StrategyService) notifySubscribed(ctx context.Context, userID uuid.UUID, strategy *models.StrategyDB, amount decimal.Decimal) {
	if s.kafkaWriter == nil {
		return
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil || user == nil {
		return
	}

	event := models.NotificationEvent{
		Kind:   models.NotifyStrategySubscribed,
		UserID: userID.String(),
		Email:  user.Email,
		Data: map[string]string{
			"strategy":     strategy.Name,
			"amount":       amount.String(),
			"expected_roi": strategy.ExpectedROI.String(),
			"risk_level":   strategy.RiskLevel,
		},
		Timestamp: time.Now().Unix(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.kafkaWriter.WriteMessages(ctx, kafka.Message{Key: []byte(event.UserID), Value: payload}); err != nil {
		logger.Log.Errorw("failed to publish strategy notification", "error", err)
	}
}
