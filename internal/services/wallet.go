package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var (
	// ErrRecipientNotFound is returned when a transfer recipient does not exist.
	ErrRecipientNotFound = errors.New("recipient not found")
	// ErrSelfTransfer is returned for transfers where sender and recipient match.
	ErrSelfTransfer = errors.New("cannot transfer to yourself")
)

// LedgerApplier is the ledger surface the wallet-level services depend on.
type LedgerApplier interface {
	Apply(ctx context.Context, userID uuid.UUID, txType string, amount decimal.Decimal, description string, referenceID *uuid.UUID) (*models.WalletTransactionDB, error)
	GetState(ctx context.Context, userID uuid.UUID) (balance, profit decimal.Decimal, err error)
	GetHistory(ctx context.Context, userID uuid.UUID) ([]models.WalletTransactionDB, error)
	GetHistoryByType(ctx context.Context, userID uuid.UUID, txType string) ([]models.WalletTransactionDB, error)
}

// WithdrawalWriter creates withdrawal requests.
type WithdrawalWriter interface {
	Save(ctx context.Context, w *models.WithdrawalDB) error
}

// WithdrawalLister reads a user's withdrawal requests.
type WithdrawalLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalDB, error)
}

// WalletService handles user-facing wallet operations on top of the ledger.
type WalletService struct {
	ledger           LedgerApplier
	users            UserReader
	withdrawalWriter WithdrawalWriter
	withdrawalLister WithdrawalLister
	kafkaWriter      KafkaWriter
}

// NewWalletService creates a new WalletService.
func NewWalletService(
	ledger LedgerApplier,
	users UserReader,
	withdrawalWriter WithdrawalWriter,
	withdrawalLister WithdrawalLister,
	kafkaWriter KafkaWriter,
) *WalletService {
	return &WalletService{
		ledger:           ledger,
		users:            users,
		withdrawalWriter: withdrawalWriter,
		withdrawalLister: withdrawalLister,
		kafkaWriter:      kafkaWriter,
	}
}

// GetBalance returns the user's current balance and profit.
func (s *WalletService) GetBalance(ctx context.Context, userID uuid.UUID) (balance, profit decimal.Decimal, err error) {
	return s.ledger.GetState(ctx, userID)
}

// Deposit credits funds to the user's wallet and returns the new balance.
func (s *WalletService) Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	entry, err := s.ledger.Apply(ctx, userID, models.TxTypeDeposit, amount, "wallet deposit", nil)
	if err != nil {
		return decimal.Zero, err
	}
	return entry.BalanceAfter, nil
}

// Transfer moves funds between two users as a transfer_out/transfer_in pair.
// Both rows are written inside the surrounding request transaction, so a
// failed credit rolls back the debit.
func (s *WalletService) Transfer(ctx context.Context, senderID uuid.UUID, recipientEmail string, amount decimal.Decimal) error {
	recipient, err := s.users.GetByEmail(ctx, recipientEmail)
	if err != nil {
		logger.Log.Errorw("failed to look up transfer recipient", "recipient", recipientEmail, "error", err)
		return err
	}
	if recipient == nil {
		return ErrRecipientNotFound
	}
	if recipient.UserID == senderID {
		return ErrSelfTransfer
	}

	if _, err := s.ledger.Apply(ctx, senderID, models.TxTypeTransferOut, amount, "transfer to "+recipientEmail, nil); err != nil {
		return err
	}
	if _, err := s.ledger.Apply(ctx, recipient.UserID, models.TxTypeTransferIn, amount, "incoming transfer", nil); err != nil {
		return err
	}
	return nil
}

// RequestWithdrawal creates a pending withdrawal request. The balance is only
// checked here; the debit row is appended when an admin approves the request.
func (s *WalletService) RequestWithdrawal(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.WithdrawalDB, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	balance, _, err := s.ledger.GetState(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(amount) {
		return nil, ErrInsufficientFunds
	}

	withdrawal := &models.WithdrawalDB{
		WithdrawalID: uuid.New(),
		UserID:       userID,
		Amount:       amount,
		Status:       models.WithdrawalStatusPending,
		RequestedAt:  time.Now(),
	}
	if err := s.withdrawalWriter.Save(ctx, withdrawal); err != nil {
		logger.Log.Errorw("failed to save withdrawal request", "user_id", userID, "amount", amount, "error", err)
		return nil, err
	}

	s.notify(ctx, userID, models.NotifyWithdrawalRequested, map[string]string{
		"withdrawal_id": withdrawal.WithdrawalID.String(),
		"amount":        amount.String(),
	})

	return withdrawal, nil
}

// ListTransactions returns the user's full ledger history in creation order.
func (s *WalletService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.WalletTransactionDB, error) {
	return s.ledger.GetHistory(ctx, userID)
}

// ListDeposits returns the user's deposit transactions, newest first.
func (s *WalletService) ListDeposits(ctx context.Context, userID uuid.UUID) ([]models.WalletTransactionDB, error) {
	return s.ledger.GetHistoryByType(ctx, userID, models.TxTypeDeposit)
}

// ListWithdrawals returns the user's withdrawal requests, newest first.
func (s *WalletService) ListWithdrawals(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalDB, error) {
	return s.withdrawalLister.ListByUser(ctx, userID)
}

// notify publishes a notification event for a user, best effort. Recipient
// email is resolved from the user record.
func (s *WalletService) notify(ctx context.Context, userID uuid.UUID, kind string, data map[string]string) {
	if s.kafkaWriter == nil {
		return
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil || user == nil {
		logger.Log.Warnw("failed to resolve notification recipient", "user_id", userID, "error", err)
		return
	}

	event := models.NotificationEvent{
		Kind:      kind,
		UserID:    userID.String(),
		Email:     user.Email,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal notification event", "kind", kind, "error", err)
		return
	}
	if err := s.kafkaWriter.WriteMessages(ctx, kafka.Message{Key: []byte(event.UserID), Value: payload}); err != nil {
		logger.Log.Errorw("failed to publish notification event", "kind", kind, "error", err)
	}
}
