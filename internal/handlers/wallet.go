package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/middlewares"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/cookiecash/trading-wallet/internal/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceReader defines the interface that the service must implement.
type BalanceReader interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (balance, profit decimal.Decimal, err error)
}

// Depositer defines the interface that the service must implement.
type Depositer interface {
	Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
}

// Transferer defines the interface that the service must implement.
type Transferer interface {
	Transfer(ctx context.Context, senderID uuid.UUID, recipientEmail string, amount decimal.Decimal) error
}

// WithdrawalRequester defines the interface that the service must implement.
type WithdrawalRequester interface {
	RequestWithdrawal(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.WithdrawalDB, error)
}

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.WalletTransactionDB, error)
}

// DepositLister defines the interface that the service must implement.
type DepositLister interface {
	ListDeposits(ctx context.Context, userID uuid.UUID) ([]models.WalletTransactionDB, error)
}

// UserWithdrawalLister defines the interface that the service must implement.
type UserWithdrawalLister interface {
	ListWithdrawals(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalDB, error)
}

// BalanceResponse represents the user's wallet state
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Current balance
	// default: 100.0
	Balance decimal.Decimal `json:"balance"`

	// Accumulated profit
	// default: 0.0
	Profit decimal.Decimal `json:"profit"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching the wallet state.
// @Summary Get wallet balance
// @Description Returns the current balance and profit derived from the transaction log.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Wallet state"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(svc BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		balance, profit, err := svc.GetBalance(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get balance", "user_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{Balance: balance, Profit: profit})
	}
}

// DepositRequest represents the JSON body for depositing funds
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount to deposit
	// required: true
	// default: 100.0
	Amount decimal.Decimal `json:"amount"`
}

// DepositResponse represents a successful deposit response
// swagger:model DepositResponse
type DepositResponse struct {
	// Success message
	// default: Account topped up successfully
	Message string `json:"message"`

	// New balance after the deposit
	NewBalance decimal.Decimal `json:"new_balance"`
}

// NewDepositHandler returns an HTTP handler for depositing funds.
// @Summary Deposit funds
// @Description Credits the wallet by appending a deposit row to the transaction log.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.DepositRequest true "Deposit request"
// @Success 200 {object} handlers.DepositResponse "Account topped up successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/deposit [post]
// @Security BearerAuth
func NewDepositHandler(svc Depositer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		newBalance, err := svc.Deposit(r.Context(), claims.UserID, req.Amount)
		if err != nil {
			switch err {
			case services.ErrInvalidAmount:
				writeError(w, http.StatusBadRequest, "Invalid amount")
			case services.ErrConcurrencyConflict:
				writeError(w, http.StatusConflict, "Concurrent modification, please retry")
			default:
				logger.Log.Errorw("failed to deposit funds", "user_id", claims.UserID, "amount", req.Amount, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DepositResponse{
			Message:    "Account topped up successfully",
			NewBalance: newBalance,
		})
	}
}

// TransferRequest represents the JSON body for transferring funds
// swagger:model TransferRequest
type TransferRequest struct {
	// Recipient email
	// required: true
	// default: jane@example.com
	ToEmail string `json:"to_email"`

	// Amount to transfer
	// required: true
	// default: 50.0
	Amount decimal.Decimal `json:"amount"`
}

// TransferResponse represents a successful transfer response
// swagger:model TransferResponse
type TransferResponse struct {
	// Success message
	// default: Transfer completed successfully
	Message string `json:"message"`
}

// NewTransferHandler returns an HTTP handler for transferring funds between users.
// @Summary Transfer funds
// @Description Moves funds to another user as a matched debit/credit pair of transaction rows.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.TransferRequest true "Transfer request"
// @Success 200 {object} handlers.TransferResponse "Transfer completed successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount / insufficient funds / unknown recipient"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/transfer [post]
// @Security BearerAuth
func NewTransferHandler(svc Transferer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		err := svc.Transfer(r.Context(), claims.UserID, req.ToEmail, req.Amount)
		if err != nil {
			switch err {
			case services.ErrInvalidAmount:
				writeError(w, http.StatusBadRequest, "Invalid amount")
			case services.ErrInsufficientFunds:
				writeError(w, http.StatusBadRequest, "Insufficient funds")
			case services.ErrRecipientNotFound:
				writeError(w, http.StatusBadRequest, "Recipient not found")
			case services.ErrSelfTransfer:
				writeError(w, http.StatusBadRequest, "Cannot transfer to yourself")
			case services.ErrConcurrencyConflict:
				writeError(w, http.StatusConflict, "Concurrent modification, please retry")
			default:
				logger.Log.Errorw("failed to transfer funds", "user_id", claims.UserID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransferResponse{Message: "Transfer completed successfully"})
	}
}

// WithdrawRequest represents the JSON body for requesting a withdrawal
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount to withdraw
	// required: true
	// default: 50.0
	Amount decimal.Decimal `json:"amount"`
}

// WithdrawResponse represents a created withdrawal request
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// Id of the withdrawal request
	WithdrawalID uuid.UUID `json:"withdrawal_id"`

	// Request status
	// default: pending
	Status string `json:"status"`

	// Success message
	// default: Withdrawal request created
	Message string `json:"message"`
}

// NewWithdrawHandler returns an HTTP handler for requesting a withdrawal.
// @Summary Request a withdrawal
// @Description Creates a pending withdrawal request. Funds are debited only when an admin approves it.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawRequest true "Withdrawal request"
// @Success 201 {object} handlers.WithdrawResponse "Withdrawal request created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount / insufficient funds"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(svc WithdrawalRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		withdrawal, err := svc.RequestWithdrawal(r.Context(), claims.UserID, req.Amount)
		if err != nil {
			switch err {
			case services.ErrInvalidAmount:
				writeError(w, http.StatusBadRequest, "Invalid amount")
			case services.ErrInsufficientFunds:
				writeError(w, http.StatusBadRequest, "Insufficient funds")
			default:
				logger.Log.Errorw("failed to create withdrawal request", "user_id", claims.UserID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(WithdrawResponse{
			WithdrawalID: withdrawal.WithdrawalID,
			Status:       withdrawal.Status,
			Message:      "Withdrawal request created",
		})
	}
}

// TransactionsResponse represents the user's transaction history
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	// Transactions in creation order
	Transactions []models.WalletTransactionDB `json:"transactions"`
}

// NewListTransactionsHandler returns an HTTP handler for listing transactions.
// @Summary List wallet transactions
// @Description Returns the user's full transaction history in creation order.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.TransactionsResponse "Transaction history"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		transactions, err := svc.ListTransactions(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "user_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if transactions == nil {
			transactions = []models.WalletTransactionDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionsResponse{Transactions: transactions})
	}
}

// DepositsResponse represents the user's deposit history
// swagger:model DepositsResponse
type DepositsResponse struct {
	// Deposit transactions, newest first
	Deposits []models.WalletTransactionDB `json:"deposits"`
}

// NewListDepositsHandler returns an HTTP handler for listing deposits.
// @Summary List deposits
// @Description Returns the user's deposit transactions, newest first.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.DepositsResponse "Deposit history"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/deposits [get]
// @Security BearerAuth
func NewListDepositsHandler(svc DepositLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		deposits, err := svc.ListDeposits(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list deposits", "user_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if deposits == nil {
			deposits = []models.WalletTransactionDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DepositsResponse{Deposits: deposits})
	}
}

// WithdrawalsResponse represents the user's withdrawal requests
// swagger:model WithdrawalsResponse
type WithdrawalsResponse struct {
	// Withdrawal requests, newest first
	Withdrawals []models.WithdrawalDB `json:"withdrawals"`
}

// NewListWithdrawalsHandler returns an HTTP handler for listing the user's withdrawals.
// @Summary List withdrawal requests
// @Description Returns the user's withdrawal requests, newest first.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.WithdrawalsResponse "Withdrawal requests"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/withdrawals [get]
// @Security BearerAuth
func NewListWithdrawalsHandler(svc UserWithdrawalLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		withdrawals, err := svc.ListWithdrawals(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list withdrawals", "user_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if withdrawals == nil {
			withdrawals = []models.WithdrawalDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WithdrawalsResponse{Withdrawals: withdrawals})
	}
}
