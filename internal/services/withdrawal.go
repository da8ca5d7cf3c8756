package services

import (
	"context"
	"errors"
	"time"

	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/cookiecash/trading-wallet/internal/repositories"
	"github.com/google/uuid"
)

var (
	// ErrWithdrawalNotFound is returned when the withdrawal id is unknown.
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	// ErrWithdrawalNotPending is returned on a transition attempt from a
	// terminal state. Approval and rejection happen at most once.
	ErrWithdrawalNotPending = errors.New("withdrawal already processed")
)

// WithdrawalReader reads withdrawal requests for the admin surface.
type WithdrawalReader interface {
	GetByID(ctx context.Context, withdrawalID uuid.UUID) (*models.WithdrawalDB, error)
	List(ctx context.Context) ([]models.WithdrawalDB, error)
}

// WithdrawalResolver moves pending withdrawals into a terminal state.
type WithdrawalResolver interface {
	Resolve(ctx context.Context, withdrawalID uuid.UUID, status string, adminID uuid.UUID, notes string, processedAt time.Time) error
}

// WithdrawalAdminService drives the pending → approved/rejected state
// machine. Transitions are admin-only and terminal.
type WithdrawalAdminService struct {
	reader   WithdrawalReader
	resolver WithdrawalResolver
	ledger   LedgerApplier
}

// NewWithdrawalAdminService creates a new WithdrawalAdminService.
func NewWithdrawalAdminService(reader WithdrawalReader, resolver WithdrawalResolver, ledger LedgerApplier) *WithdrawalAdminService {
	return &WithdrawalAdminService{reader: reader, resolver: resolver, ledger: ledger}
}

// List returns all withdrawal requests, newest first.
func (s *WithdrawalAdminService) List(ctx context.Context) ([]models.WithdrawalDB, error) {
	return s.reader.List(ctx)
}

// Approve transitions a pending withdrawal to approved and appends exactly
// one matching debit row to the requester's ledger. Both writes happen inside
// the surrounding request transaction: if the debit fails (for example the
// balance dropped since the request), the approval rolls back too.
func (s *WithdrawalAdminService) Approve(ctx context.Context, withdrawalID, adminID uuid.UUID, notes string) error {
	withdrawal, err := s.reader.GetByID(ctx, withdrawalID)
	if err != nil {
		logger.Log.Errorw("failed to load withdrawal", "withdrawal_id", withdrawalID, "error", err)
		return err
	}
	if withdrawal == nil {
		return ErrWithdrawalNotFound
	}

	err = s.resolver.Resolve(ctx, withdrawalID, models.WithdrawalStatusApproved, adminID, notes, time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotPending) {
			return ErrWithdrawalNotPending
		}
		logger.Log.Errorw("failed to approve withdrawal", "withdrawal_id", withdrawalID, "error", err)
		return err
	}

	refID := withdrawalID
	_, err = s.ledger.Apply(ctx, withdrawal.UserID, models.TxTypeWithdraw, withdrawal.Amount, "withdrawal approval", &refID)
	if err != nil {
		logger.Log.Errorw("failed to debit approved withdrawal", "withdrawal_id", withdrawalID, "error", err)
		return err
	}

	return nil
}

// Reject transitions a pending withdrawal to rejected. No ledger row is
// appended.
func (s *WithdrawalAdminService) Reject(ctx context.Context, withdrawalID, adminID uuid.UUID, notes string) error {
	withdrawal, err := s.reader.GetByID(ctx, withdrawalID)
	if err != nil {
		return err
	}
	if withdrawal == nil {
		return ErrWithdrawalNotFound
	}

	err = s.resolver.Resolve(ctx, withdrawalID, models.WithdrawalStatusRejected, adminID, notes, time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotPending) {
			return ErrWithdrawalNotPending
		}
		logger.Log.Errorw("failed to reject withdrawal", "withdrawal_id", withdrawalID, "error", err)
		return err
	}

	return nil
}
