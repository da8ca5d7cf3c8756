package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrUserNotFound is returned when the target user does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserLister lists all registered users.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserBlocker toggles a user's blocked flag.
type UserBlocker interface {
	SetBlocked(ctx context.Context, userID uuid.UUID, blocked bool) error
}

// LedgerAuditor verifies a user's ledger chain.
type LedgerAuditor interface {
	ValidateChain(ctx context.Context, userID uuid.UUID) error
}

// AdminService covers back-office user management. Balance changes go through
// the ledger as admin adjustments, never as direct updates.
type AdminService struct {
	users   UserLister
	blocker UserBlocker
	ledger  LedgerApplier
	auditor LedgerAuditor
}

// NewAdminService creates a new AdminService.
func NewAdminService(users UserLister, blocker UserBlocker, ledger LedgerApplier, auditor LedgerAuditor) *AdminService {
	return &AdminService{users: users, blocker: blocker, ledger: ledger, auditor: auditor}
}

// ListUsers returns all registered users, newest first.
func (s *AdminService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	return s.users.List(ctx)
}

// SetUserBlocked blocks or unblocks a user.
func (s *AdminService) SetUserBlocked(ctx context.Context, userID uuid.UUID, blocked bool) error {
	err := s.blocker.SetBlocked(ctx, userID, blocked)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update blocked flag", "user_id", userID, "blocked", blocked, "error", err)
	}
	return err
}

// SetUserBalance moves a user's balance to the target value by appending the
// corresponding admin adjustment to the ledger. It returns the appended row.
// Setting the balance to its current value is a no-op and returns nil.
func (s *AdminService) SetUserBalance(ctx context.Context, userID uuid.UUID, target decimal.Decimal) (*models.WalletTransactionDB, error) {
	if target.IsNegative() {
		return nil, ErrInvalidAmount
	}

	current, _, err := s.ledger.GetState(ctx, userID)
	if err != nil {
		return nil, err
	}

	diff := target.Sub(current)
	if diff.IsZero() {
		return nil, nil
	}

	txType := models.TxTypeAdminAdjustPositive
	if diff.IsNegative() {
		txType = models.TxTypeAdminAdjustNegative
		diff = diff.Neg()
	}

	return s.ledger.Apply(ctx, userID, txType, diff, "balance adjustment by admin", nil)
}

// AuditUser replays the user's ledger chain and reports whether it is intact.
func (s *AdminService) AuditUser(ctx context.Context, userID uuid.UUID) error {
	return s.auditor.ValidateChain(ctx, userID)
}
