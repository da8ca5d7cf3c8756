package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/cookiecash/trading-wallet/internal/handlers"
	"github.com/cookiecash/trading-wallet/internal/jwt"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/cookiecash/trading-wallet/internal/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBalanceReader struct {
	balance decimal.Decimal
	profit  decimal.Decimal
	err     error
}

func (f *fakeBalanceReader) GetBalance(_ context.Context, _ uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	return f.balance, f.profit, f.err
}

func TestGetBalanceHandler(t *testing.T) {
	claims := &jwt.Claims{UserID: uuid.New(), Role: "user"}
	svc := &fakeBalanceReader{balance: decimal.NewFromInt(100), profit: decimal.NewFromInt(5)}

	rec := serveAuthed(handlers.NewGetBalanceHandler(svc), claims, http.MethodGet, "/api/v1/balance", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.BalanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Balance.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.Profit.Equal(decimal.NewFromInt(5)))
}

func TestGetBalanceHandler_Unauthorized(t *testing.T) {
	svc := &fakeBalanceReader{}
	rec := serveAuthed(handlers.NewGetBalanceHandler(svc), nil, http.MethodGet, "/api/v1/balance", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

type fakeDepositer struct {
	newBalance decimal.Decimal
	err        error
	gotAmount  decimal.Decimal
}

func (f *fakeDepositer) Deposit(_ context.Context, _ uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	f.gotAmount = amount
	return f.newBalance, f.err
}

func TestDepositHandler(t *testing.T) {
	claims := &jwt.Claims{UserID: uuid.New(), Role: "user"}

	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{
			name:       "successful deposit",
			body:       `{"amount": "100"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid amount",
			body:       `{"amount": "-5"}`,
			svcErr:     services.ErrInvalidAmount,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "concurrent modification",
			body:       `{"amount": "100"}`,
			svcErr:     services.ErrConcurrencyConflict,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "malformed body",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeDepositer{newBalance: decimal.NewFromInt(200), err: tt.svcErr}
			rec := serveAuthed(handlers.NewDepositHandler(svc), claims, http.MethodPost, "/api/v1/wallet/deposit", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), "new_balance")
			}
		})
	}
}

type fakeTransferer struct {
	err error
}

func (f *fakeTransferer) Transfer(_ context.Context, _ uuid.UUID, _ string, _ decimal.Decimal) error {
	return f.err
}

func TestTransferHandler(t *testing.T) {
	claims := &jwt.Claims{UserID: uuid.New(), Role: "user"}
	body := `{"to_email": "jane@example.com", "amount": "50"}`

	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{name: "successful transfer", wantStatus: http.StatusOK},
		{name: "insufficient funds", svcErr: services.ErrInsufficientFunds, wantStatus: http.StatusBadRequest},
		{name: "recipient not found", svcErr: services.ErrRecipientNotFound, wantStatus: http.StatusBadRequest},
		{name: "self transfer", svcErr: services.ErrSelfTransfer, wantStatus: http.StatusBadRequest},
		{name: "conflict", svcErr: services.ErrConcurrencyConflict, wantStatus: http.StatusConflict},
		{name: "service failure", svcErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveAuthed(handlers.NewTransferHandler(&fakeTransferer{err: tt.svcErr}), claims, http.MethodPost, "/api/v1/wallet/transfer", body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

type fakeWithdrawalRequester struct {
	withdrawal *models.WithdrawalDB
	err        error
}

func (f *fakeWithdrawalRequester) RequestWithdrawal(_ context.Context, _ uuid.UUID, _ decimal.Decimal) (*models.WithdrawalDB, error) {
	return f.withdrawal, f.err
}

func TestWithdrawHandler(t *testing.T) {
	claims := &jwt.Claims{UserID: uuid.New(), Role: "user"}
	pending := &models.WithdrawalDB{
		WithdrawalID: uuid.New(),
		Status:       models.WithdrawalStatusPending,
		Amount:       decimal.NewFromInt(50),
	}

	rec := serveAuthed(handlers.NewWithdrawHandler(&fakeWithdrawalRequester{withdrawal: pending}), claims,
		http.MethodPost, "/api/v1/wallet/withdraw", `{"amount": "50"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp handlers.WithdrawResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, pending.WithdrawalID, resp.WithdrawalID)
	assert.Equal(t, models.WithdrawalStatusPending, resp.Status)
}

func TestWithdrawHandler_InsufficientFunds(t *testing.T) {
	claims := &jwt.Claims{UserID: uuid.New(), Role: "user"}
	rec := serveAuthed(handlers.NewWithdrawHandler(&fakeWithdrawalRequester{err: services.ErrInsufficientFunds}), claims,
		http.MethodPost, "/api/v1/wallet/withdraw", `{"amount": "5000"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type fakeTransactionLister struct {
	transactions []models.WalletTransactionDB
	err          error
}

func (f *fakeTransactionLister) ListTransactions(_ context.Context, _ uuid.UUID) ([]models.WalletTransactionDB, error) {
	return f.transactions, f.err
}

func TestListTransactionsHandler(t *testing.T) {
	claims := &jwt.Claims{UserID: uuid.New(), Role: "user"}
	svc := &fakeTransactionLister{transactions: []models.WalletTransactionDB{
		{TransactionID: uuid.New(), Type: models.TxTypeDeposit},
	}}

	rec := serveAuthed(handlers.NewListTransactionsHandler(svc), claims, http.MethodGet, "/api/v1/wallet/transactions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), models.TxTypeDeposit)
}

func TestListTransactionsHandler_EmptyHistory(t *testing.T) {
	claims := &jwt.Claims{UserID: uuid.New(), Role: "user"}
	rec := serveAuthed(handlers.NewListTransactionsHandler(&fakeTransactionLister{}), claims,
		http.MethodGet, "/api/v1/wallet/transactions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"transactions":[]`, "empty history must encode as an empty array")
}

type fakeDepositLister struct {
	deposits []models.WalletTransactionDB
	err      error
}

func (f *fakeDepositLister) ListDeposits(_ context.Context, _ uuid.UUID) ([]models.WalletTransactionDB, error) {
	return f.deposits, f.err
}

func TestListDepositsHandler(t *testing.T) {
	claims := &jwt.Claims{UserID: uuid.New(), Role: "user"}
	svc := &fakeDepositLister{deposits: []models.WalletTransactionDB{
		{TransactionID: uuid.New(), Type: models.TxTypeDeposit, Amount: decimal.NewFromInt(100)},
	}}

	rec := serveAuthed(handlers.NewListDepositsHandler(svc), claims, http.MethodGet, "/api/v1/wallet/deposits", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), models.TxTypeDeposit)
}

func TestListDepositsHandler_EmptyHistory(t *testing.T) {
	claims := &jwt.Claims{UserID: uuid.New(), Role: "user"}
	rec := serveAuthed(handlers.NewListDepositsHandler(&fakeDepositLister{}), claims,
		http.MethodGet, "/api/v1/wallet/deposits", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deposits":[]`, "empty history must encode as an empty array")
}
