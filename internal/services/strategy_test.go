package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/cookiecash/trading-wallet/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStrategy() *models.StrategyDB {
	maxInv := decimal.NewFromInt(10000)
	return &models.StrategyDB{
		StrategyID:    uuid.New(),
		Name:          "BTC Momentum",
		Category:      "crypto",
		RiskLevel:     models.RiskHigh,
		ExpectedROI:   decimal.NewFromFloat(0.50),
		MinInvestment: decimal.NewFromInt(100),
		MaxInvestment: &maxInv,
		IsActive:      true,
	}
}

func TestStrategyService_Subscribe(t *testing.T) {
	userID := uuid.New()
	strategy := newTestStrategy()

	tests := []struct {
		name     string
		strategy *models.StrategyDB
		amount   decimal.Decimal
		wantErr  error
	}{
		{
			name:     "successful subscription",
			strategy: strategy,
			amount:   decimal.NewFromInt(500),
		},
		{
			name:     "minimum investment is allowed",
			strategy: strategy,
			amount:   decimal.NewFromInt(100),
		},
		{
			name:    "unknown strategy",
			amount:  decimal.NewFromInt(500),
			wantErr: services.ErrStrategyNotFound,
		},
		{
			name:     "below minimum",
			strategy: strategy,
			amount:   decimal.NewFromFloat(99.99),
			wantErr:  services.ErrBelowMinInvestment,
		},
		{
			name:     "above maximum",
			strategy: strategy,
			amount:   decimal.NewFromInt(10001),
			wantErr:  services.ErrAboveMaxInvestment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStrategies := services.NewMockStrategyReader(ctrl)
			mockSubs := services.NewMockStrategySubscriptionStore(ctrl)
			mockLedger := services.NewMockLedgerApplier(ctrl)
			svc := services.NewStrategyService(mockStrategies, mockSubs, mockLedger, services.NewMockUserReader(ctrl), nil)

			mockStrategies.EXPECT().GetByID(gomock.Any(), strategy.StrategyID).Return(tt.strategy, nil)

			if tt.wantErr == nil {
				mockSubs.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sub *models.StrategySubscriptionDB) error {
						assert.Equal(t, userID, sub.UserID)
						assert.True(t, sub.IsActive)
						assert.True(t, sub.InvestedAmount.Equal(tt.amount))
						return nil
					})
				mockLedger.EXPECT().
					Apply(gomock.Any(), userID, models.TxTypeStrategyInvestment, tt.amount, gomock.Any(), gomock.Any()).
					Return(&models.WalletTransactionDB{}, nil)
			}

			sub, err := svc.Subscribe(context.Background(), userID, strategy.StrategyID, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, sub)
			} else {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, sub.SubscriptionID)
			}
		})
	}
}

func TestStrategyService_Subscribe_UnboundedMax(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	strategy := newTestStrategy()
	strategy.MaxInvestment = nil
	userID := uuid.New()
	amount := decimal.NewFromInt(1000000)

	mockStrategies := services.NewMockStrategyReader(ctrl)
	mockSubs := services.NewMockStrategySubscriptionStore(ctrl)
	mockLedger := services.NewMockLedgerApplier(ctrl)
	svc := services.NewStrategyService(mockStrategies, mockSubs, mockLedger, services.NewMockUserReader(ctrl), nil)

	mockStrategies.EXPECT().GetByID(gomock.Any(), strategy.StrategyID).Return(strategy, nil)
	mockSubs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	mockLedger.EXPECT().
		Apply(gomock.Any(), userID, models.TxTypeStrategyInvestment, amount, gomock.Any(), gomock.Any()).
		Return(&models.WalletTransactionDB{}, nil)

	_, err := svc.Subscribe(context.Background(), userID, strategy.StrategyID, amount)
	assert.NoError(t, err)
}

func TestStrategyService_Subscribe_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	strategy := newTestStrategy()
	userID := uuid.New()

	mockStrategies := services.NewMockStrategyReader(ctrl)
	mockSubs := services.NewMockStrategySubscriptionStore(ctrl)
	mockLedger := services.NewMockLedgerApplier(ctrl)
	svc := services.NewStrategyService(mockStrategies, mockSubs, mockLedger, services.NewMockUserReader(ctrl), nil)

	mockStrategies.EXPECT().GetByID(gomock.Any(), strategy.StrategyID).Return(strategy, nil)
	mockSubs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	mockLedger.EXPECT().
		Apply(gomock.Any(), userID, models.TxTypeStrategyInvestment, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInsufficientFunds)

	_, err := svc.Subscribe(context.Background(), userID, strategy.StrategyID, decimal.NewFromInt(500))
	assert.ErrorIs(t, err, services.ErrInsufficientFunds)
}

func TestStrategyService_Unsubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	strategy := newTestStrategy()
	userID := uuid.New()
	sub := &models.StrategySubscriptionDB{
		SubscriptionID: uuid.New(),
		UserID:         userID,
		StrategyID:     strategy.StrategyID,
		InvestedAmount: decimal.NewFromInt(1000),
		IsActive:       true,
		SubscribedAt:   time.Now().Add(-10 * 24 * time.Hour),
	}

	mockStrategies := services.NewMockStrategyReader(ctrl)
	mockSubs := services.NewMockStrategySubscriptionStore(ctrl)
	mockLedger := services.NewMockLedgerApplier(ctrl)
	svc := services.NewStrategyService(mockStrategies, mockSubs, mockLedger, services.NewMockUserReader(ctrl), nil)

	mockSubs.EXPECT().GetActive(gomock.Any(), userID, strategy.StrategyID).Return(sub, nil)
	mockStrategies.EXPECT().GetByID(gomock.Any(), strategy.StrategyID).Return(strategy, nil)
	mockSubs.EXPECT().Deactivate(gomock.Any(), sub.SubscriptionID, gomock.AssignableToTypeOf(time.Time{})).Return(nil)

	expectedEarnings := services.AccruedEarnings(sub.InvestedAmount, strategy.ExpectedROI, 10)
	expectedTotal := sub.InvestedAmount.Add(expectedEarnings)

	mockLedger.EXPECT().
		Apply(gomock.Any(), userID, models.TxTypeStrategyUnsubscription, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, total decimal.Decimal, _ string, refID *uuid.UUID) (*models.WalletTransactionDB, error) {
			assert.True(t, total.Equal(expectedTotal), "expected %s, got %s", expectedTotal, total)
			require.NotNil(t, refID)
			assert.Equal(t, sub.SubscriptionID, *refID)
			return &models.WalletTransactionDB{}, nil
		})

	total, err := svc.Unsubscribe(context.Background(), userID, strategy.StrategyID)
	require.NoError(t, err)
	assert.True(t, total.GreaterThan(sub.InvestedAmount), "credited total must include earnings")
}

func TestStrategyService_Unsubscribe_NotSubscribed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSubs := services.NewMockStrategySubscriptionStore(ctrl)
	svc := services.NewStrategyService(services.NewMockStrategyReader(ctrl), mockSubs, services.NewMockLedgerApplier(ctrl), services.NewMockUserReader(ctrl), nil)

	userID := uuid.New()
	strategyID := uuid.New()
	mockSubs.EXPECT().GetActive(gomock.Any(), userID, strategyID).Return(nil, nil)

	_, err := svc.Unsubscribe(context.Background(), userID, strategyID)
	assert.ErrorIs(t, err, services.ErrStrategyNotSubscribed)
}

func TestStrategyService_MyStrategies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	strategy := newTestStrategy()
	userID := uuid.New()
	sub := models.StrategySubscriptionDB{
		SubscriptionID: uuid.New(),
		UserID:         userID,
		StrategyID:     strategy.StrategyID,
		InvestedAmount: decimal.NewFromInt(500),
		IsActive:       true,
		SubscribedAt:   time.Now().Add(-5 * 24 * time.Hour),
	}

	mockStrategies := services.NewMockStrategyReader(ctrl)
	mockSubs := services.NewMockStrategySubscriptionStore(ctrl)
	svc := services.NewStrategyService(mockStrategies, mockSubs, services.NewMockLedgerApplier(ctrl), services.NewMockUserReader(ctrl), nil)

	mockSubs.EXPECT().ListActiveByUser(gomock.Any(), userID).Return([]models.StrategySubscriptionDB{sub}, nil)
	mockStrategies.EXPECT().GetByID(gomock.Any(), strategy.StrategyID).Return(strategy, nil)

	positions, err := svc.MyStrategies(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, 5, positions[0].DaysActive)
	assert.Equal(t, strategy.Name, positions[0].Strategy.Name)
	assert.True(t, positions[0].Earnings.IsPositive())
	assert.Positive(t, positions[0].Performance.TotalReturn)

	// Positions are returned to clients as JSON; every performance metric
	// must encode, including the profit factor of an all-gain series.
	_, err = json.Marshal(positions)
	assert.NoError(t, err)
}

func TestAccruedEarnings(t *testing.T) {
	dec := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(s)
		require.NoError(t, err)
		return d
	}

	t.Run("compounds daily", func(t *testing.T) {
		// 1000 at 0.5% daily over 2 days: 1000 * (1.005^2 - 1) = 10.025
		got := services.AccruedEarnings(dec("1000"), dec("0.5"), 2)
		assert.True(t, got.Equal(dec("10.025")), "got %s", got)
	})

	t.Run("single day", func(t *testing.T) {
		// 1000 * 0.5% = 5
		got := services.AccruedEarnings(dec("1000"), dec("0.5"), 1)
		assert.True(t, got.Equal(dec("5")), "got %s", got)
	})

	t.Run("floor applies for tiny ROI", func(t *testing.T) {
		// 0.001% daily would accrue 0.01 per day on 1000; the floor of
		// 0.0001 per unit per day gives 0.1 per day instead.
		got := services.AccruedEarnings(dec("1000"), dec("0.001"), 3)
		assert.True(t, got.Equal(dec("0.3")), "got %s", got)
	})

	t.Run("days below one clamp to one", func(t *testing.T) {
		got := services.AccruedEarnings(dec("1000"), dec("0.5"), 0)
		assert.True(t, got.Equal(dec("5")), "got %s", got)
	})
}
