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

// CopySubscriber defines the interface that the service must implement.
type CopySubscriber interface {
	Subscribe(ctx context.Context, followerID, traderID uuid.UUID, allocation decimal.Decimal) error
	Unsubscribe(ctx context.Context, followerID, traderID uuid.UUID) error
	ListSubscriptions(ctx context.Context, followerID uuid.UUID) ([]models.CopySubscriptionDB, error)
}

// CopySubscribeRequest represents the JSON body for a copy-trading subscription
// swagger:model CopySubscribeRequest
type CopySubscribeRequest struct {
	// Id of the trader to copy
	// required: true
	TraderID uuid.UUID `json:"trader_id"`

	// Percentage of balance allocated to copying, 0-100
	// required: true
	// default: 10.0
	Allocation decimal.Decimal `json:"allocation"`
}

// CopySubscribeResponse represents a successful subscription response
// swagger:model CopySubscribeResponse
type CopySubscribeResponse struct {
	// Success message
	// default: Subscribed successfully
	Message string `json:"message"`
}

// NewCopySubscribeHandler returns an HTTP handler for subscribing to a trader.
// @Summary Subscribe to a trader
// @Description Links the caller to a trader with an allocation percentage. Re-subscribing updates the allocation.
// @Tags copy-trading
// @Accept json
// @Produce json
// @Param request body handlers.CopySubscribeRequest true "Subscription request"
// @Success 200 {object} handlers.CopySubscribeResponse "Subscribed successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid allocation / unknown trader / self subscription"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /copy/subscribe [post]
// @Security BearerAuth
func NewCopySubscribeHandler(svc CopySubscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CopySubscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		err := svc.Subscribe(r.Context(), claims.UserID, req.TraderID, req.Allocation)
		if err != nil {
			switch err {
			case services.ErrInvalidAllocation:
				writeError(w, http.StatusBadRequest, "Allocation must be between 0 and 100")
			case services.ErrTraderNotFound:
				writeError(w, http.StatusBadRequest, "Trader not found")
			case services.ErrSelfSubscription:
				writeError(w, http.StatusBadRequest, "Cannot subscribe to yourself")
			default:
				logger.Log.Errorw("failed to subscribe", "follower_id", claims.UserID, "trader_id", req.TraderID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CopySubscribeResponse{Message: "Subscribed successfully"})
	}
}

// CopyUnsubscribeRequest represents the JSON body for ending a subscription
// swagger:model CopyUnsubscribeRequest
type CopyUnsubscribeRequest struct {
	// Id of the trader to stop copying
	// required: true
	TraderID uuid.UUID `json:"trader_id"`
}

// NewCopyUnsubscribeHandler returns an HTTP handler for unsubscribing from a trader.
// @Summary Unsubscribe from a trader
// @Description Deactivates the caller's subscription to the given trader.
// @Tags copy-trading
// @Accept json
// @Produce json
// @Param request body handlers.CopyUnsubscribeRequest true "Unsubscription request"
// @Success 200 {object} handlers.CopySubscribeResponse "Unsubscribed successfully"
// @Failure 400 {object} handlers.ErrorResponse "No active subscription"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /copy/unsubscribe [post]
// @Security BearerAuth
func NewCopyUnsubscribeHandler(svc CopySubscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CopyUnsubscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		err := svc.Unsubscribe(r.Context(), claims.UserID, req.TraderID)
		if err != nil {
			switch err {
			case services.ErrNotSubscribed:
				writeError(w, http.StatusBadRequest, "No active subscription")
			default:
				logger.Log.Errorw("failed to unsubscribe", "follower_id", claims.UserID, "trader_id", req.TraderID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CopySubscribeResponse{Message: "Unsubscribed successfully"})
	}
}

// CopySubscriptionsResponse represents the caller's active subscriptions
// swagger:model CopySubscriptionsResponse
type CopySubscriptionsResponse struct {
	// Active subscriptions
	Subscriptions []models.CopySubscriptionDB `json:"subscriptions"`
}

// NewListCopySubscriptionsHandler returns an HTTP handler for listing subscriptions.
// @Summary List copy-trading subscriptions
// @Description Returns the caller's active copy-trading subscriptions.
// @Tags copy-trading
// @Produce json
// @Success 200 {object} handlers.CopySubscriptionsResponse "Active subscriptions"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /copy/subscriptions [get]
// @Security BearerAuth
func NewListCopySubscriptionsHandler(svc CopySubscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		subs, err := svc.ListSubscriptions(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list subscriptions", "follower_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if subs == nil {
			subs = []models.CopySubscriptionDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CopySubscriptionsResponse{Subscriptions: subs})
	}
}
