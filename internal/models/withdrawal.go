package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Withdrawal statuses. pending is the only non-terminal state.
const (
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusApproved = "approved"
	WithdrawalStatusRejected = "rejected"
)

// WithdrawalDB represents a withdrawal request. It is created pending and
// transitions exactly once to approved or rejected by an admin.
type WithdrawalDB struct {
	WithdrawalID uuid.UUID       `json:"id" db:"withdrawal_id"`                      // Primary key
	UserID       uuid.UUID       `json:"user_id" db:"user_id"`                       // Requesting user
	Amount       decimal.Decimal `json:"amount" db:"amount"`                         // Requested amount
	Status       string          `json:"status" db:"status"`                         // pending, approved or rejected
	ProcessedBy  *uuid.UUID      `json:"processed_by,omitempty" db:"processed_by"`   // Admin who resolved the request
	Notes        string          `json:"notes" db:"notes"`                           // Admin notes
	RequestedAt  time.Time       `json:"requested_at" db:"requested_at"`             // Request timestamp
	ProcessedAt  *time.Time      `json:"processed_at,omitempty" db:"processed_at"`   // Resolution timestamp
}
