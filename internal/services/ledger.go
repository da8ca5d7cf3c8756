package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/cookiecash/trading-wallet/internal/repositories"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientFunds is returned when a debit would drive the balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidTransactionType is returned for transaction types outside the enumerated kinds.
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	// ErrInvalidAmount is returned when the amount is not strictly positive.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrConcurrencyConflict is returned when a competing write is detected on the
	// same user's chain. The caller should retry the whole operation.
	ErrConcurrencyConflict = errors.New("concurrent ledger modification detected")
	// ErrBrokenChain is returned by ValidateChain when a user's history does not replay.
	ErrBrokenChain = errors.New("ledger chain is broken")
)

// LedgerEntryReader defines read operations over the transaction log.
type LedgerEntryReader interface {
	GetLatest(ctx context.Context, userID uuid.UUID) (*models.WalletTransactionDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WalletTransactionDB, error)
	ListByUserAndType(ctx context.Context, userID uuid.UUID, txType string) ([]models.WalletTransactionDB, error)
}

// LedgerEntryWriter appends rows to the transaction log.
type LedgerEntryWriter interface {
	Append(ctx context.Context, entry *models.WalletTransactionDB) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// userLocks hands out one mutex per user id so ledger operations for the same
// user are serialized in-process. Operations on different users proceed in
// parallel.
type userLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func (l *userLocks) get(userID uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks == nil {
		l.locks = make(map[uuid.UUID]*sync.Mutex)
	}
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	return m
}

// LedgerService maintains per-user balance and profit as a materialized view
// over the append-only wallet_transactions log. Every operation reads the tip
// of the user's chain, computes the new state and appends a row carrying both
// the before and after values, so the full history replays.
type LedgerService struct {
	reader      LedgerEntryReader
	writer      LedgerEntryWriter
	kafkaWriter KafkaWriter
	locks       userLocks
}

// NewLedgerService creates a new LedgerService. kafkaWriter may be nil, in
// which case event publishing is skipped.
func NewLedgerService(reader LedgerEntryReader, writer LedgerEntryWriter, kafkaWriter KafkaWriter) *LedgerService {
	return &LedgerService{reader: reader, writer: writer, kafkaWriter: kafkaWriter}
}

// Apply validates and appends a balance- or profit-affecting transaction for
// a user and returns the appended row. The per-user lock plus the advisory
// lock taken by the writer guarantee that no two concurrent operations
// observe a stale balance_before.
func (s *LedgerService) Apply(ctx context.Context, userID uuid.UUID, txType string, amount decimal.Decimal, description string, referenceID *uuid.UUID) (*models.WalletTransactionDB, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	effect, ok := models.EffectOf(txType)
	if !ok {
		return nil, ErrInvalidTransactionType
	}

	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	latest, err := s.reader.GetLatest(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to read chain tip", "user_id", userID, "error", err)
		return nil, err
	}

	balanceBefore, profitBefore := decimal.Zero, decimal.Zero
	if latest != nil {
		balanceBefore, profitBefore = latest.BalanceAfter, latest.ProfitAfter
	}

	balanceAfter, profitAfter := balanceBefore, profitBefore
	switch effect {
	case models.EffectBalanceCredit:
		balanceAfter = balanceBefore.Add(amount)
	case models.EffectBalanceDebit:
		balanceAfter = balanceBefore.Sub(amount)
		if balanceAfter.IsNegative() {
			return nil, ErrInsufficientFunds
		}
	case models.EffectProfitCredit:
		profitAfter = profitBefore.Add(amount)
	case models.EffectProfitDebit:
		profitAfter = profitBefore.Sub(amount)
	}

	entry := &models.WalletTransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Type:          txType,
		Amount:        amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
		ProfitBefore:  profitBefore,
		ProfitAfter:   profitAfter,
		ReferenceID:   referenceID,
		Description:   description,
		CreatedAt:     time.Now(),
	}

	if err := s.writer.Append(ctx, entry); err != nil {
		if errors.Is(err, repositories.ErrLedgerConflict) {
			logger.Log.Warnw("ledger append conflict", "user_id", userID, "transaction_type", txType)
			return nil, ErrConcurrencyConflict
		}
		logger.Log.Errorw("failed to append ledger row", "user_id", userID, "transaction_type", txType, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, entry)

	return entry, nil
}

// GetState returns the user's current balance and profit, derived from the
// tip of the chain. Users without transactions are at zero.
func (s *LedgerService) GetState(ctx context.Context, userID uuid.UUID) (balance, profit decimal.Decimal, err error) {
	latest, err := s.reader.GetLatest(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get ledger state", "user_id", userID, "error", err)
		return decimal.Zero, decimal.Zero, err
	}
	if latest == nil {
		return decimal.Zero, decimal.Zero, nil
	}
	return latest.BalanceAfter, latest.ProfitAfter, nil
}

// GetHistory returns the user's full transaction history in creation order.
func (s *LedgerService) GetHistory(ctx context.Context, userID uuid.UUID) ([]models.WalletTransactionDB, error) {
	return s.reader.ListByUser(ctx, userID)
}

// GetHistoryByType returns the user's transactions of one type, newest first.
func (s *LedgerService) GetHistoryByType(ctx context.Context, userID uuid.UUID, txType string) ([]models.WalletTransactionDB, error) {
	return s.reader.ListByUserAndType(ctx, userID, txType)
}

// ValidateChain replays a user's full history and verifies that each row's
// balance_before matches the previous row's balance_after (zero for the
// first row) and that each after value equals before plus the signed amount.
func (s *LedgerService) ValidateChain(ctx context.Context, userID uuid.UUID) error {
	entries, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	balance, profit := decimal.Zero, decimal.Zero
	for _, e := range entries {
		if !e.BalanceBefore.Equal(balance) || !e.ProfitBefore.Equal(profit) {
			return ErrBrokenChain
		}
		effect, ok := models.EffectOf(e.Type)
		if !ok {
			return ErrInvalidTransactionType
		}
		switch effect {
		case models.EffectBalanceCredit:
			balance = balance.Add(e.Amount)
		case models.EffectBalanceDebit:
			balance = balance.Sub(e.Amount)
		case models.EffectProfitCredit:
			profit = profit.Add(e.Amount)
		case models.EffectProfitDebit:
			profit = profit.Sub(e.Amount)
		}
		if !e.BalanceAfter.Equal(balance) || !e.ProfitAfter.Equal(profit) {
			return ErrBrokenChain
		}
	}
	return nil
}

// publishEvent publishes an appended row to Kafka, best effort.
func (s *LedgerService) publishEvent(ctx context.Context, entry *models.WalletTransactionDB) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("kafka writer not configured, skipping publishing", "transaction_id", entry.TransactionID)
		return
	}

	event := models.LedgerEvent{
		TransactionID: entry.TransactionID.String(),
		UserID:        entry.UserID.String(),
		Type:          entry.Type,
		Amount:        entry.Amount.String(),
		BalanceAfter:  entry.BalanceAfter.String(),
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal ledger event", "transaction_id", entry.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(entry.UserID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish ledger event", "transaction_id", entry.TransactionID, "error", err)
	} else {
		logger.Log.Infow("ledger event published", "transaction_id", entry.TransactionID, "transaction_type", entry.Type)
	}
}
