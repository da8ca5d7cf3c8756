package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trade sides
const (
	TradeSideBuy  = "buy"
	TradeSideSell = "sell"
)

// Trade statuses
const (
	TradeStatusPending   = "pending"
	TradeStatusCompleted = "completed"
	TradeStatusCancelled = "cancelled"
)

// TradeDB represents a recorded trade. Completed trades are effectively
// immutable.
type TradeDB struct {
	TradeID   uuid.UUID       `json:"id" db:"trade_id"`           // Primary key
	UserID    uuid.UUID       `json:"user_id" db:"user_id"`       // Trade owner
	Asset     string          `json:"asset" db:"asset"`           // Asset symbol, e.g. BTC/USD
	Side      string          `json:"side" db:"side"`             // buy or sell
	Size      decimal.Decimal `json:"size" db:"size"`             // Traded quantity
	Price     decimal.Decimal `json:"price" db:"price"`           // Execution price
	Total     decimal.Decimal `json:"total" db:"total"`           // size * price
	Status    string          `json:"status" db:"status"`         // pending, completed or cancelled
	CreatedAt time.Time       `json:"created_at" db:"created_at"` // Execution timestamp
}
