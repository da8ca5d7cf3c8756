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

// StrategyCatalog defines the interface that the service must implement.
type StrategyCatalog interface {
	ListStrategies(ctx context.Context) ([]models.StrategyDB, error)
}

// StrategyInvestor defines the interface that the service must implement.
type StrategyInvestor interface {
	Subscribe(ctx context.Context, userID, strategyID uuid.UUID, amount decimal.Decimal) (*models.StrategySubscriptionDB, error)
	Unsubscribe(ctx context.Context, userID, strategyID uuid.UUID) (decimal.Decimal, error)
	MyStrategies(ctx context.Context, userID uuid.UUID) ([]services.StrategyPosition, error)
}

// StrategiesResponse represents the strategy catalog
// swagger:model StrategiesResponse
type StrategiesResponse struct {
	// Active strategies
	Strategies []models.StrategyDB `json:"strategies"`
}

// NewListStrategiesHandler returns an HTTP handler for the strategy catalog.
// @Summary List strategies
// @Description Returns the catalog of active investment strategies.
// @Tags strategies
// @Produce json
// @Success 200 {object} handlers.StrategiesResponse "Strategy catalog"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /strategies [get]
func NewListStrategiesHandler(svc StrategyCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		strategies, err := svc.ListStrategies(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list strategies", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if strategies == nil {
			strategies = []models.StrategyDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StrategiesResponse{Strategies: strategies})
	}
}

// StrategySubscribeRequest represents the JSON body for investing into a strategy
// swagger:model StrategySubscribeRequest
type StrategySubscribeRequest struct {
	// Amount to invest
	// required: true
	// default: 1000.0
	Amount decimal.Decimal `json:"amount"`
}

// StrategySubscribeResponse represents a successful investment
// swagger:model StrategySubscribeResponse
type StrategySubscribeResponse struct {
	// Id of the created subscription
	SubscriptionID uuid.UUID `json:"subscription_id"`

	// Success message
	// default: Subscribed to strategy successfully
	Message string `json:"message"`
}

// NewStrategySubscribeHandler returns an HTTP handler for investing into a strategy.
// @Summary Invest into a strategy
// @Description Debits the investment from the wallet and creates an active subscription.
// @Tags strategies
// @Accept json
// @Produce json
// @Param id path string true "Strategy id"
// @Param request body handlers.StrategySubscribeRequest true "Investment request"
// @Success 201 {object} handlers.StrategySubscribeResponse "Subscribed to strategy successfully"
// @Failure 400 {object} handlers.ErrorResponse "Amount outside strategy limits / insufficient funds"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Strategy not found"
// @Router /strategies/{id}/subscribe [post]
// @Security BearerAuth
func NewStrategySubscribeHandler(svc StrategyInvestor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		strategyID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid strategy id")
			return
		}

		var req StrategySubscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		sub, err := svc.Subscribe(r.Context(), claims.UserID, strategyID, req.Amount)
		if err != nil {
			switch err {
			case services.ErrStrategyNotFound:
				writeError(w, http.StatusNotFound, "Strategy not found")
			case services.ErrBelowMinInvestment:
				writeError(w, http.StatusBadRequest, "Amount below minimum investment")
			case services.ErrAboveMaxInvestment:
				writeError(w, http.StatusBadRequest, "Amount above maximum investment")
			case services.ErrInvalidAmount:
				writeError(w, http.StatusBadRequest, "Invalid amount")
			case services.ErrInsufficientFunds:
				writeError(w, http.StatusBadRequest, "Insufficient funds")
			default:
				logger.Log.Errorw("failed to subscribe to strategy", "user_id", claims.UserID, "strategy_id", strategyID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(StrategySubscribeResponse{
			SubscriptionID: sub.SubscriptionID,
			Message:        "Subscribed to strategy successfully",
		})
	}
}

// StrategyUnsubscribeResponse represents a successful strategy exit
// swagger:model StrategyUnsubscribeResponse
type StrategyUnsubscribeResponse struct {
	// Principal plus earnings credited back to the wallet
	CreditedAmount decimal.Decimal `json:"credited_amount"`

	// Success message
	// default: Unsubscribed from strategy successfully
	Message string `json:"message"`
}

// NewStrategyUnsubscribeHandler returns an HTTP handler for exiting a strategy.
// @Summary Exit a strategy
// @Description Deactivates the subscription and credits principal plus accrued earnings back to the wallet.
// @Tags strategies
// @Produce json
// @Param id path string true "Strategy id"
// @Success 200 {object} handlers.StrategyUnsubscribeResponse "Unsubscribed from strategy successfully"
// @Failure 400 {object} handlers.ErrorResponse "No active subscription"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /strategies/{id}/unsubscribe [post]
// @Security BearerAuth
func NewStrategyUnsubscribeHandler(svc StrategyInvestor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		strategyID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid strategy id")
			return
		}

		credited, err := svc.Unsubscribe(r.Context(), claims.UserID, strategyID)
		if err != nil {
			switch err {
			case services.ErrStrategyNotSubscribed:
				writeError(w, http.StatusBadRequest, "No active subscription")
			case services.ErrStrategyNotFound:
				writeError(w, http.StatusNotFound, "Strategy not found")
			default:
				logger.Log.Errorw("failed to unsubscribe from strategy", "user_id", claims.UserID, "strategy_id", strategyID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StrategyUnsubscribeResponse{
			CreditedAmount: credited,
			Message:        "Unsubscribed from strategy successfully",
		})
	}
}

// MyStrategiesResponse represents the caller's active strategy positions
// swagger:model MyStrategiesResponse
type MyStrategiesResponse struct {
	// Active positions with accrued earnings and performance
	Positions []services.StrategyPosition `json:"positions"`
}

// NewMyStrategiesHandler returns an HTTP handler for the caller's strategy positions.
// @Summary List my strategy positions
// @Description Returns the caller's active strategy subscriptions with accrued earnings and performance metrics.
// @Tags strategies
// @Produce json
// @Success 200 {object} handlers.MyStrategiesResponse "Active positions"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /strategies/mine [get]
// @Security BearerAuth
func NewMyStrategiesHandler(svc StrategyInvestor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		positions, err := svc.MyStrategies(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list strategy positions", "user_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if positions == nil {
			positions = []services.StrategyPosition{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MyStrategiesResponse{Positions: positions})
	}
}
