package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CopySubscriptionDB represents a follower→trader copy-trading link.
// The (follower, trader) pair is unique; re-subscribing updates the
// allocation instead of creating a second row.
type CopySubscriptionDB struct {
	SubscriptionID uuid.UUID       `json:"id" db:"subscription_id"`    // Primary key
	FollowerID     uuid.UUID       `json:"follower_id" db:"follower_id"` // User copying trades
	TraderID       uuid.UUID       `json:"trader_id" db:"trader_id"`   // User being copied
	Allocation     decimal.Decimal `json:"allocation" db:"allocation"` // Percentage of balance allocated, 0-100
	IsActive       bool            `json:"is_active" db:"is_active"`   // Inactive subscriptions are kept for history
	CreatedAt      time.Time       `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"` // Last update timestamp
}
