package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

type fakeTradePlacer struct {
	trade *models.TradeDB
	err   error

	gotAsset string
	gotSide  string
	gotSize  decimal.Decimal
}

func (f *fakeTradePlacer) PlaceTrade(_ context.Context, _ uuid.UUID, asset, side string, size decimal.Decimal) (*models.TradeDB, error) {
	f.gotAsset = asset
	f.gotSide = side
	f.gotSize = size
	return f.trade, f.err
}

func TestPlaceTradeHandler(t *testing.T) {
	claims := &jwt.Claims{UserID: uuid.New(), Role: "user"}
	executed := &models.TradeDB{
		TradeID: uuid.New(),
		Asset:   "BTC/USD",
		Side:    models.TradeSideBuy,
		Status:  models.TradeStatusCompleted,
	}

	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{
			name:       "successful trade",
			body:       `{"asset": "BTC/USD", "side": "buy", "size": "0.01"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid side",
			body:       `{"asset": "BTC/USD", "side": "short", "size": "0.01"}`,
			svcErr:     services.ErrInvalidTradeSide,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "insufficient funds",
			body:       `{"asset": "BTC/USD", "side": "buy", "size": "100"}`,
			svcErr:     services.ErrInsufficientFunds,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "insufficient position",
			body:       `{"asset": "BTC/USD", "side": "sell", "size": "100"}`,
			svcErr:     services.ErrInsufficientPosition,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "conflict",
			body:       `{"asset": "BTC/USD", "side": "buy", "size": "0.01"}`,
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
			svc := &fakeTradePlacer{trade: executed, err: tt.svcErr}
			rec := serveAuthed(handlers.NewPlaceTradeHandler(svc), claims, http.MethodPost, "/api/v1/trade", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				var resp handlers.TradeResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, executed.TradeID, resp.Trade.TradeID)
			}
		})
	}
}

type fakeTradeLister struct {
	trades []models.TradeDB
	err    error
}

func (f *fakeTradeLister) ListTrades(_ context.Context, _ uuid.UUID) ([]models.TradeDB, error) {
	return f.trades, f.err
}

func TestListTradesHandler(t *testing.T) {
	claims := &jwt.Claims{UserID: uuid.New(), Role: "user"}
	svc := &fakeTradeLister{trades: []models.TradeDB{{TradeID: uuid.New(), Asset: "AAPL"}}}

	rec := serveAuthed(handlers.NewListTradesHandler(svc), claims, http.MethodGet, "/api/v1/trades", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "AAPL")
}

type fakePriceLister struct {
	quotes []models.AssetQuote
	err    error
}

func (f *fakePriceLister) GetPrices(_ context.Context) ([]models.AssetQuote, error) {
	return f.quotes, f.err
}

func TestGetPricesHandler(t *testing.T) {
	svc := &fakePriceLister{quotes: []models.AssetQuote{
		{Symbol: "BTC/USD", Name: "Bitcoin", Price: decimal.NewFromInt(45000)},
	}}

	// Prices are public, no auth middleware involved.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices", nil)
	handlers.NewGetPricesHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "BTC/USD")
	assert.Contains(t, rec.Body.String(), "45000")
}
