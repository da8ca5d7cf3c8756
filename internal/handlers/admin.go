package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/middlewares"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/cookiecash/trading-wallet/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdminUserManager defines the interface that the service must implement.
type AdminUserManager interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
	SetUserBlocked(ctx context.Context, userID uuid.UUID, blocked bool) error
	SetUserBalance(ctx context.Context, userID uuid.UUID, target decimal.Decimal) (*models.WalletTransactionDB, error)
	AuditUser(ctx context.Context, userID uuid.UUID) error
}

// WithdrawalProcessor defines the interface that the service must implement.
type WithdrawalProcessor interface {
	List(ctx context.Context) ([]models.WithdrawalDB, error)
	Approve(ctx context.Context, withdrawalID, adminID uuid.UUID, notes string) error
	Reject(ctx context.Context, withdrawalID, adminID uuid.UUID, notes string) error
}

// AdminUsersResponse represents all registered users
// swagger:model AdminUsersResponse
type AdminUsersResponse struct {
	// Users, newest first
	Users []models.UserDB `json:"users"`
}

// NewAdminListUsersHandler returns an HTTP handler for listing all users.
// @Summary List users
// @Description Returns all registered users, newest first. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.AdminUsersResponse "Registered users"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /admin/users [get]
// @Security BearerAuth
func NewAdminListUsersHandler(svc AdminUserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if users == nil {
			users = []models.UserDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminUsersResponse{Users: users})
	}
}

// AdminBlockRequest represents the JSON body for blocking or unblocking a user
// swagger:model AdminBlockRequest
type AdminBlockRequest struct {
	// Whether the user should be blocked
	// required: true
	// default: true
	Blocked bool `json:"blocked"`
}

// AdminMessageResponse represents a generic admin success response
// swagger:model AdminMessageResponse
type AdminMessageResponse struct {
	// Success message
	Message string `json:"message"`
}

// NewAdminBlockUserHandler returns an HTTP handler for blocking or unblocking a user.
// @Summary Block or unblock a user
// @Description Toggles the user's blocked flag. Blocked users cannot log in. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body handlers.AdminBlockRequest true "Block request"
// @Success 200 {object} handlers.AdminMessageResponse "User updated"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /admin/users/{id}/block [post]
// @Security BearerAuth
func NewAdminBlockUserHandler(svc AdminUserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		var req AdminBlockRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.SetUserBlocked(r.Context(), userID, req.Blocked); err != nil {
			switch err {
			case services.ErrUserNotFound:
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("failed to update user", "user_id", userID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminMessageResponse{Message: "User updated"})
	}
}

// AdminBalanceRequest represents the JSON body for setting a user's balance
// swagger:model AdminBalanceRequest
type AdminBalanceRequest struct {
	// Target balance
	// required: true
	// default: 1000.0
	Balance decimal.Decimal `json:"balance"`
}

// AdminBalanceResponse represents the result of a balance adjustment
// swagger:model AdminBalanceResponse
type AdminBalanceResponse struct {
	// The appended adjustment row, absent when the balance was already at target
	Adjustment *models.WalletTransactionDB `json:"adjustment,omitempty"`

	// Success message
	// default: Balance updated
	Message string `json:"message"`
}

// NewAdminSetBalanceHandler returns an HTTP handler for adjusting a user's balance.
// @Summary Set user balance
// @Description Moves the user's balance to the target value by appending an admin adjustment to the transaction log. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body handlers.AdminBalanceRequest true "Balance request"
// @Success 200 {object} handlers.AdminBalanceResponse "Balance updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid balance"
// @Router /admin/users/{id}/balance [post]
// @Security BearerAuth
func NewAdminSetBalanceHandler(svc AdminUserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		var req AdminBalanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		adjustment, err := svc.SetUserBalance(r.Context(), userID, req.Balance)
		if err != nil {
			switch err {
			case services.ErrInvalidAmount:
				writeError(w, http.StatusBadRequest, "Invalid balance")
			case services.ErrConcurrencyConflict:
				writeError(w, http.StatusConflict, "Concurrent modification, please retry")
			default:
				logger.Log.Errorw("failed to set balance", "user_id", userID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminBalanceResponse{
			Adjustment: adjustment,
			Message:    "Balance updated",
		})
	}
}

// AdminAuditResponse represents the result of a ledger audit
// swagger:model AdminAuditResponse
type AdminAuditResponse struct {
	// Whether the user's transaction chain replays cleanly
	Intact bool `json:"intact"`
}

// NewAdminAuditUserHandler returns an HTTP handler for auditing a user's ledger.
// @Summary Audit a user's ledger
// @Description Replays the user's full transaction chain and reports whether it is intact. Admin only.
// @Tags admin
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} handlers.AdminAuditResponse "Audit result"
// @Router /admin/users/{id}/audit [get]
// @Security BearerAuth
func NewAdminAuditUserHandler(svc AdminUserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		err = svc.AuditUser(r.Context(), userID)
		if err != nil && err != services.ErrBrokenChain && err != services.ErrInvalidTransactionType {
			logger.Log.Errorw("failed to audit ledger", "user_id", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminAuditResponse{Intact: err == nil})
	}
}

// AdminWithdrawalsResponse represents all withdrawal requests
// swagger:model AdminWithdrawalsResponse
type AdminWithdrawalsResponse struct {
	// Withdrawal requests, newest first
	Withdrawals []models.WithdrawalDB `json:"withdrawals"`
}

// NewAdminListWithdrawalsHandler returns an HTTP handler for listing all withdrawals.
// @Summary List withdrawal requests
// @Description Returns all withdrawal requests, newest first. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.AdminWithdrawalsResponse "Withdrawal requests"
// @Router /admin/withdrawals [get]
// @Security BearerAuth
func NewAdminListWithdrawalsHandler(svc WithdrawalProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withdrawals, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list withdrawals", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if withdrawals == nil {
			withdrawals = []models.WithdrawalDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminWithdrawalsResponse{Withdrawals: withdrawals})
	}
}

// AdminResolveWithdrawalRequest represents the JSON body for resolving a withdrawal
// swagger:model AdminResolveWithdrawalRequest
type AdminResolveWithdrawalRequest struct {
	// Optional admin notes
	Notes string `json:"notes"`
}

// NewAdminApproveWithdrawalHandler returns an HTTP handler for approving a withdrawal.
// @Summary Approve a withdrawal
// @Description Transitions a pending withdrawal to approved and debits the requester's wallet exactly once. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Withdrawal id"
// @Param request body handlers.AdminResolveWithdrawalRequest false "Resolution notes"
// @Success 200 {object} handlers.AdminMessageResponse "Withdrawal approved"
// @Failure 404 {object} handlers.ErrorResponse "Withdrawal not found"
// @Failure 409 {object} handlers.ErrorResponse "Withdrawal already processed"
// @Router /admin/withdrawals/{id}/approve [post]
// @Security BearerAuth
func NewAdminApproveWithdrawalHandler(svc WithdrawalProcessor) http.HandlerFunc {
	return resolveWithdrawalHandler(svc.Approve, "Withdrawal approved")
}

// NewAdminRejectWithdrawalHandler returns an HTTP handler for rejecting a withdrawal.
// @Summary Reject a withdrawal
// @Description Transitions a pending withdrawal to rejected. No funds are debited. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Withdrawal id"
// @Param request body handlers.AdminResolveWithdrawalRequest false "Resolution notes"
// @Success 200 {object} handlers.AdminMessageResponse "Withdrawal rejected"
// @Failure 404 {object} handlers.ErrorResponse "Withdrawal not found"
// @Failure 409 {object} handlers.ErrorResponse "Withdrawal already processed"
// @Router /admin/withdrawals/{id}/reject [post]
// @Security BearerAuth
func NewAdminRejectWithdrawalHandler(svc WithdrawalProcessor) http.HandlerFunc {
	return resolveWithdrawalHandler(svc.Reject, "Withdrawal rejected")
}

func resolveWithdrawalHandler(
	resolve func(ctx context.Context, withdrawalID, adminID uuid.UUID, notes string) error,
	successMessage string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		withdrawalID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid withdrawal id")
			return
		}

		var req AdminResolveWithdrawalRequest
		if r.Body != nil {
			// Notes are optional, a missing body is fine.
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		err = resolve(r.Context(), withdrawalID, claims.UserID, req.Notes)
		if err != nil {
			switch err {
			case services.ErrWithdrawalNotFound:
				writeError(w, http.StatusNotFound, "Withdrawal not found")
			case services.ErrWithdrawalNotPending:
				writeError(w, http.StatusConflict, "Withdrawal already processed")
			case services.ErrInsufficientFunds:
				writeError(w, http.StatusConflict, "Insufficient funds to approve withdrawal")
			default:
				logger.Log.Errorw("failed to resolve withdrawal", "withdrawal_id", withdrawalID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminMessageResponse{Message: successMessage})
	}
}
