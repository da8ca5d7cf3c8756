package models

// Notification event kinds consumed by the mail-delivery service.
const (
	NotifyWelcome             = "welcome"
	NotifyLogin               = "login"
	NotifyWithdrawalRequested = "withdrawal_requested"
	NotifyWithdrawalApproved  = "withdrawal_approved"
	NotifyWithdrawalRejected  = "withdrawal_rejected"
	NotifyTradeExecuted       = "trade_executed"
	NotifyStrategySubscribed  = "strategy_subscribed"
)

// NotificationEvent is the Kafka payload for user-facing notifications.
// Email dispatch itself is handled by a downstream consumer.
type NotificationEvent struct {
	Kind      string            `json:"kind"`      // One of the Notify constants
	UserID    string            `json:"user_id"`   // Recipient user id
	Email     string            `json:"email"`     // Recipient address
	Data      map[string]string `json:"data,omitempty"` // Kind-specific payload
	Timestamp int64             `json:"timestamp"` // Unix seconds
}
