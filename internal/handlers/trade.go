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

// TradePlacer defines the interface that the service must implement.
type TradePlacer interface {
	PlaceTrade(ctx context.Context, userID uuid.UUID, asset, side string, size decimal.Decimal) (*models.TradeDB, error)
}

// TradeLister defines the interface that the service must implement.
type TradeLister interface {
	ListTrades(ctx context.Context, userID uuid.UUID) ([]models.TradeDB, error)
}

// PriceLister defines the interface that the service must implement.
type PriceLister interface {
	GetPrices(ctx context.Context) ([]models.AssetQuote, error)
}

// TradeRequest represents the JSON body for placing a trade
// swagger:model TradeRequest
type TradeRequest struct {
	// Asset symbol
	// required: true
	// default: BTC/USD
	Asset string `json:"asset"`

	// Trade side, buy or sell
	// required: true
	// default: buy
	Side string `json:"side"`

	// Trade size in asset units
	// required: true
	// default: 0.01
	Size decimal.Decimal `json:"size"`
}

// TradeResponse represents an executed trade
// swagger:model TradeResponse
type TradeResponse struct {
	// The executed trade
	Trade *models.TradeDB `json:"trade"`

	// Success message
	// default: Trade executed successfully
	Message string `json:"message"`
}

// NewPlaceTradeHandler returns an HTTP handler for placing trades.
// @Summary Place a trade
// @Description Executes a buy or sell at the current market price and settles it against the wallet.
// @Tags trading
// @Accept json
// @Produce json
// @Param request body handlers.TradeRequest true "Trade request"
// @Success 201 {object} handlers.TradeResponse "Trade executed successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid side or size / insufficient funds or position"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /trade [post]
// @Security BearerAuth
func NewPlaceTradeHandler(svc TradePlacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req TradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		trade, err := svc.PlaceTrade(r.Context(), claims.UserID, req.Asset, req.Side, req.Size)
		if err != nil {
			switch err {
			case services.ErrInvalidTradeSide:
				writeError(w, http.StatusBadRequest, "Invalid trade side")
			case services.ErrInvalidAmount:
				writeError(w, http.StatusBadRequest, "Invalid trade size")
			case services.ErrInsufficientFunds:
				writeError(w, http.StatusBadRequest, "Insufficient funds")
			case services.ErrInsufficientPosition:
				writeError(w, http.StatusBadRequest, "Insufficient position")
			case services.ErrConcurrencyConflict:
				writeError(w, http.StatusConflict, "Concurrent modification, please retry")
			default:
				logger.Log.Errorw("failed to place trade", "user_id", claims.UserID, "asset", req.Asset, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(TradeResponse{
			Trade:   trade,
			Message: "Trade executed successfully",
		})
	}
}

// TradesResponse represents the user's trade history
// swagger:model TradesResponse
type TradesResponse struct {
	// Trades, newest first
	Trades []models.TradeDB `json:"trades"`
}

// NewListTradesHandler returns an HTTP handler for listing the user's trades.
// @Summary List trades
// @Description Returns the user's trades, newest first.
// @Tags trading
// @Produce json
// @Success 200 {object} handlers.TradesResponse "Trade history"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /trades [get]
// @Security BearerAuth
func NewListTradesHandler(svc TradeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		trades, err := svc.ListTrades(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list trades", "user_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if trades == nil {
			trades = []models.TradeDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TradesResponse{Trades: trades})
	}
}

// PricesResponse represents current market prices
// swagger:model PricesResponse
type PricesResponse struct {
	// Quotes for all supported assets
	Prices []models.AssetQuote `json:"prices"`
}

// NewGetPricesHandler returns an HTTP handler for fetching market prices.
// @Summary Get market prices
// @Description Returns current quotes for all supported assets.
// @Tags trading
// @Produce json
// @Success 200 {object} handlers.PricesResponse "Current prices"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /prices [get]
func NewGetPricesHandler(svc PriceLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prices, err := svc.GetPrices(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to get prices", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PricesResponse{Prices: prices})
	}
}
