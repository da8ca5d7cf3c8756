package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet transaction types. Every balance- or profit-affecting operation in
// the system maps to exactly one of these.
const (
	TxTypeDeposit                = "deposit"
	TxTypeWithdraw               = "withdraw"
	TxTypeTransferIn             = "transfer_in"
	TxTypeTransferOut            = "transfer_out"
	TxTypeTradeBuy               = "trade_buy"
	TxTypeTradeSell              = "trade_sell"
	TxTypeAdminAdjustPositive    = "admin_adjustment_positive"
	TxTypeAdminAdjustNegative    = "admin_adjustment_negative"
	TxTypeStrategyInvestment     = "strategy_investment"
	TxTypeStrategyUnsubscription = "strategy_unsubscription"
	TxTypeProfitAdjustPositive   = "profit_adjustment_positive"
	TxTypeProfitAdjustNegative   = "profit_adjustment_negative"
)

// TxEffect describes how a transaction type moves the derived state.
type TxEffect int

const (
	EffectBalanceCredit TxEffect = iota // adds amount to balance
	EffectBalanceDebit                  // subtracts amount from balance
	EffectProfitCredit                  // adds amount to profit, balance untouched
	EffectProfitDebit                   // subtracts amount from profit, balance untouched
)

// txEffects is the sign convention table for all known transaction types.
var txEffects = map[string]TxEffect{
	TxTypeDeposit:                EffectBalanceCredit,
	TxTypeWithdraw:               EffectBalanceDebit,
	TxTypeTransferIn:             EffectBalanceCredit,
	TxTypeTransferOut:            EffectBalanceDebit,
	TxTypeTradeBuy:               EffectBalanceDebit,
	TxTypeTradeSell:              EffectBalanceCredit,
	TxTypeAdminAdjustPositive:    EffectBalanceCredit,
	TxTypeAdminAdjustNegative:    EffectBalanceDebit,
	TxTypeStrategyInvestment:     EffectBalanceDebit,
	TxTypeStrategyUnsubscription: EffectBalanceCredit,
	TxTypeProfitAdjustPositive:   EffectProfitCredit,
	TxTypeProfitAdjustNegative:   EffectProfitDebit,
}

// EffectOf returns the effect for a transaction type. The second return value
// is false for unknown types.
func EffectOf(txType string) (TxEffect, bool) {
	effect, ok := txEffects[txType]
	return effect, ok
}

// WalletTransactionDB represents an immutable ledger row. Rows are only ever
// appended: the per-user sequence in creation order forms a chain where each
// row's BalanceBefore equals the previous row's BalanceAfter.
type WalletTransactionDB struct {
	TransactionID uuid.UUID       `json:"id" db:"transaction_id"`             // Primary key
	UserID        uuid.UUID       `json:"user_id" db:"user_id"`               // Owner of the ledger chain
	Type          string          `json:"transaction_type" db:"transaction_type"` // One of the TxType constants
	Amount        decimal.Decimal `json:"amount" db:"amount"`                 // Positive magnitude; sign comes from the type
	BalanceBefore decimal.Decimal `json:"balance_before" db:"balance_before"` // Balance prior to this row
	BalanceAfter  decimal.Decimal `json:"balance_after" db:"balance_after"`   // Balance after this row
	ProfitBefore  decimal.Decimal `json:"profit_before" db:"profit_before"`   // Profit prior to this row
	ProfitAfter   decimal.Decimal `json:"profit_after" db:"profit_after"`     // Profit after this row
	ReferenceID   *uuid.UUID      `json:"reference_id,omitempty" db:"reference_id"` // Originating trade/withdrawal, if any
	Description   string          `json:"description" db:"description"`       // Free-text description
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`         // Creation timestamp
}

// LedgerEvent is the Kafka payload published after every appended ledger row.
// Downstream consumers (the mail-notification service among them) key on the
// transaction type.
type LedgerEvent struct {
	TransactionID string `json:"transaction_id"` // Ledger row identifier
	UserID        string `json:"user_id"`        // Owner of the chain
	Type          string `json:"transaction_type"` // Transaction type
	Amount        string `json:"amount"`         // Decimal string, positive magnitude
	BalanceAfter  string `json:"balance_after"`  // Derived balance after the row
	Timestamp     int64  `json:"timestamp"`      // Unix seconds when the event was built
}
