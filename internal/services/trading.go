package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidTradeSide is returned for sides other than buy and sell.
	ErrInvalidTradeSide = errors.New("invalid trade side")
	// ErrInsufficientPosition is returned when a sell exceeds the user's
	// accumulated position in the asset.
	ErrInsufficientPosition = errors.New("insufficient position")
)

// QuoteSource fetches market prices for supported assets.
type QuoteSource interface {
	GetPrice(ctx context.Context, asset string) (decimal.Decimal, error)
	ListAssets() []models.AssetInfo
}

// QuoteCache caches quotes between requests.
type QuoteCache interface {
	GetPrice(ctx context.Context, asset string) (decimal.Decimal, error)
	SetPrice(ctx context.Context, asset string, price decimal.Decimal) error
}

// TradeWriter persists trade records.
type TradeWriter interface {
	Save(ctx context.Context, trade *models.TradeDB) error
}

// TradeReader reads trade records.
type TradeReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TradeDB, error)
	GetPosition(ctx context.Context, userID uuid.UUID, asset string) (decimal.Decimal, error)
}

// TradingService records buy/sell trades at the current market price and
// settles them against the wallet ledger.
type TradingService struct {
	quotes      QuoteSource
	cache       QuoteCache
	ledger      LedgerApplier
	tradeWriter TradeWriter
	tradeReader TradeReader
	users       UserReader
	kafkaWriter KafkaWriter
}

// NewTradingService creates a new TradingService. cache and kafkaWriter may
// be nil.
func NewTradingService(
	quotes QuoteSource,
	cache QuoteCache,
	ledger LedgerApplier,
	tradeWriter TradeWriter,
	tradeReader TradeReader,
	users UserReader,
	kafkaWriter KafkaWriter,
) *TradingService {
	return &TradingService{
		quotes:      quotes,
		cache:       cache,
		ledger:      ledger,
		tradeWriter: tradeWriter,
		tradeReader: tradeReader,
		users:       users,
		kafkaWriter: kafkaWriter,
	}
}

// GetQuote returns the current price for an asset, preferring the cache.
func (s *TradingService) GetQuote(ctx context.Context, asset string) (decimal.Decimal, error) {
	if s.cache != nil {
		if price, err := s.cache.GetPrice(ctx, asset); err == nil {
			return price, nil
		}
	}

	price, err := s.quotes.GetPrice(ctx, asset)
	if err != nil {
		logger.Log.Errorw("failed to fetch quote", "asset", asset, "error", err)
		return decimal.Zero, err
	}

	if s.cache != nil {
		if err := s.cache.SetPrice(ctx, asset, price); err != nil {
			logger.Log.Warnw("failed to cache quote", "asset", asset, "error", err)
		}
	}

	return price, nil
}

// GetPrices returns quotes for all supported assets.
func (s *TradingService) GetPrices(ctx context.Context) ([]models.AssetQuote, error) {
	assets := s.quotes.ListAssets()
	quotes := make([]models.AssetQuote, 0, len(assets))
	for _, asset := range assets {
		price, err := s.GetQuote(ctx, asset.Symbol)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, models.AssetQuote{Symbol: asset.Symbol, Name: asset.Name, Price: price})
	}
	return quotes, nil
}

// PlaceTrade records a trade at the current market price. Buys debit
// size*price from the wallet; sells require an accumulated position in the
// asset and credit the proceeds.
func (s *TradingService) PlaceTrade(ctx context.Context, userID uuid.UUID, asset, side string, size decimal.Decimal) (*models.TradeDB, error) {
	if side != models.TradeSideBuy && side != models.TradeSideSell {
		return nil, ErrInvalidTradeSide
	}
	if !size.IsPositive() {
		return nil, ErrInvalidAmount
	}

	price, err := s.GetQuote(ctx, asset)
	if err != nil {
		return nil, err
	}
	total := size.Mul(price)

	trade := &models.TradeDB{
		TradeID:   uuid.New(),
		UserID:    userID,
		Asset:     asset,
		Side:      side,
		Size:      size,
		Price:     price,
		Total:     total,
		Status:    models.TradeStatusCompleted,
		CreatedAt: time.Now(),
	}
	refID := trade.TradeID

	if side == models.TradeSideBuy {
		if _, err := s.ledger.Apply(ctx, userID, models.TxTypeTradeBuy, total, "buy "+asset, &refID); err != nil {
			return nil, err
		}
	} else {
		position, err := s.tradeReader.GetPosition(ctx, userID, asset)
		if err != nil {
			logger.Log.Errorw("failed to compute position", "user_id", userID, "asset", asset, "error", err)
			return nil, err
		}
		if position.LessThan(size) {
			return nil, ErrInsufficientPosition
		}
		if _, err := s.ledger.Apply(ctx, userID, models.TxTypeTradeSell, total, "sell "+asset, &refID); err != nil {
			return nil, err
		}
	}

	if err := s.tradeWriter.Save(ctx, trade); err != nil {
		logger.Log.Errorw("failed to save trade", "user_id", userID, "asset", asset, "error", err)
		return nil, err
	}

	s.notifyTrade(ctx, trade)

	return trade, nil
}

// ListTrades returns the user's trades, newest first.
func (s *TradingService) ListTrades(ctx context.Context, userID uuid.UUID) ([]models.TradeDB, error) {
	return s.tradeReader.ListByUser(ctx, userID)
}

// notifyTrade publishes a trade-executed notification, best effort.
func (s *TradingService) notifyTrade(ctx context.Context, trade *models.TradeDB) {
	if s.kafkaWriter == nil {
		return
	}

	user, err := s.users.GetByID(ctx, trade.UserID)
	if err != nil || user == nil {
		logger.Log.Warnw("failed to resolve trade notification recipient", "user_id", trade.UserID, "error", err)
		return
	}

	event := models.NotificationEvent{
		Kind:   models.NotifyTradeExecuted,
		UserID: trade.UserID.String(),
		Email:  user.Email,
		Data: map[string]string{
			"asset": trade.Asset,
			"side":  trade.Side,
			"size":  trade.Size.String(),
			"price": trade.Price.String(),
			"total": trade.Total.String(),
		},
		Timestamp: time.Now().Unix(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal trade notification", "error", err)
		return
	}
	if err := s.kafkaWriter.WriteMessages(ctx, kafka.Message{Key: []byte(event.UserID), Value: payload}); err != nil {
		logger.Log.Errorw("failed to publish trade notification", "error", err)
	}
}
