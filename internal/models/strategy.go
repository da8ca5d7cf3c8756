package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Strategy risk levels
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// StrategyDB represents an investable strategy in the catalog.
type StrategyDB struct {
	StrategyID    uuid.UUID        `json:"id" db:"strategy_id"`                      // Primary key
	Name          string           `json:"name" db:"name"`                           // Display name
	Description   string           `json:"description" db:"description"`             // Short description
	Category      string           `json:"category" db:"category"`                   // crypto or quant
	RiskLevel     string           `json:"risk_level" db:"risk_level"`               // low, medium or high
	ExpectedROI   decimal.Decimal  `json:"expected_roi" db:"expected_roi"`           // Expected daily ROI in percent
	MinInvestment decimal.Decimal  `json:"min_investment" db:"min_investment"`       // Minimum investment amount
	MaxInvestment *decimal.Decimal `json:"max_investment,omitempty" db:"max_investment"` // Maximum investment amount, nil for unbounded
	IsActive      bool             `json:"is_active" db:"is_active"`                 // Inactive strategies are hidden from the catalog
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`               // Creation timestamp
}

// StrategySubscriptionDB represents a user's investment into a strategy.
type StrategySubscriptionDB struct {
	SubscriptionID uuid.UUID       `json:"id" db:"subscription_id"`        // Primary key
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`           // Investing user
	StrategyID     uuid.UUID       `json:"strategy_id" db:"strategy_id"`   // Strategy invested into
	InvestedAmount decimal.Decimal `json:"invested_amount" db:"invested_amount"` // Principal debited from the wallet
	IsActive       bool            `json:"is_active" db:"is_active"`       // Cleared on unsubscribe
	SubscribedAt   time.Time       `json:"subscribed_at" db:"subscribed_at"` // Investment timestamp
	UnsubscribedAt *time.Time      `json:"unsubscribed_at,omitempty" db:"unsubscribed_at"` // Exit timestamp
}
