package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go"
	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/shopspring/decimal"
)

// ErrUnsupportedAsset is returned for symbols outside the supported set.
var ErrUnsupportedAsset = errors.New("unsupported asset")

type assetSpec struct {
	name     string
	symbol   string // API symbol: from-currency for crypto, ticker for stocks
	crypto   bool
	fallback string // static price used when the quote API is unavailable
}

// Supported assets. Crypto pairs go through the currency-exchange endpoint,
// stocks through the global-quote endpoint.
var assetSpecs = map[string]assetSpec{
	"BTC/USD": {name: "Bitcoin", symbol: "BTC", crypto: true, fallback: "45000.00"},
	"ETH/USD": {name: "Ethereum", symbol: "ETH", crypto: true, fallback: "2400.00"},
	"AAPL":    {name: "Apple Inc.", symbol: "AAPL", fallback: "182.50"},
	"GOOGL":   {name: "Alphabet Inc.", symbol: "GOOGL", fallback: "142.30"},
}

// assetOrder keeps listings deterministic.
var assetOrder = []string{"BTC/USD", "ETH/USD", "AAPL", "GOOGL"}

// AlphaVantageQuotesFacade fetches market prices from the Alpha Vantage HTTP
// API. Transient failures are retried; if the API stays unavailable the
// facade serves a static fallback price so trading never hard-fails on the
// quote provider.
type AlphaVantageQuotesFacade struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewAlphaVantageQuotesFacade creates a new facade.
func NewAlphaVantageQuotesFacade(baseURL, apiKey string, timeout time.Duration) *AlphaVantageQuotesFacade {
	return &AlphaVantageQuotesFacade{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// ListAssets returns the supported assets in a stable order.
func (f *AlphaVantageQuotesFacade) ListAssets() []models.AssetInfo {
	assets := make([]models.AssetInfo, 0, len(assetOrder))
	for _, symbol := range assetOrder {
		assets = append(assets, models.AssetInfo{Symbol: symbol, Name: assetSpecs[symbol].name})
	}
	return assets
}

// GetPrice returns the current market price for an asset.
func (f *AlphaVantageQuotesFacade) GetPrice(ctx context.Context, asset string) (decimal.Decimal, error) {
	spec, ok := assetSpecs[asset]
	if !ok {
		return decimal.Zero, ErrUnsupportedAsset
	}

	var price decimal.Decimal
	err := retry.Do(
		func() error {
			var fetchErr error
			price, fetchErr = f.fetch(ctx, spec)
			return fetchErr
		},
		retry.Attempts(3),
		retry.Delay(200*time.Millisecond),
		retry.Context(ctx),
	)
	if err != nil {
		fallback, _ := decimal.NewFromString(spec.fallback)
		logger.Log.Warnw("quote API unavailable, using fallback price",
			"asset", asset, "fallback", fallback, "error", err)
		return fallback, nil
	}

	return price, nil
}

func (f *AlphaVantageQuotesFacade) fetch(ctx context.Context, spec assetSpec) (decimal.Decimal, error) {
	q := url.Values{}
	if spec.crypto {
		q.Set("function", "CURRENCY_EXCHANGE_RATE")
		q.Set("from_currency", spec.symbol)
		q.Set("to_currency", "USD")
	} else {
		q.Set("function", "GLOBAL_QUOTE")
		q.Set("symbol", spec.symbol)
	}
	q.Set("apikey", f.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/query?"+q.Encode(), nil)
	if err != nil {
		return decimal.Zero, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	if spec.crypto {
		var body struct {
			ExchangeRate struct {
				Rate string `json:"5. Exchange Rate"`
			} `json:"Realtime Currency Exchange Rate"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return decimal.Zero, err
		}
		if body.ExchangeRate.Rate == "" {
			return decimal.Zero, errors.New("empty exchange rate in response")
		}
		return decimal.NewFromString(body.ExchangeRate.Rate)
	}

	var body struct {
		GlobalQuote struct {
			Price string `json:"05. price"`
		} `json:"Global Quote"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, err
	}
	if body.GlobalQuote.Price == "" {
		return decimal.Zero, errors.New("empty price in response")
	}
	return decimal.NewFromString(body.GlobalQuote.Price)
}
