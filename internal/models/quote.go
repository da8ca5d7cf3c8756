package models

import "github.com/shopspring/decimal"

// AssetInfo describes a tradable asset.
type AssetInfo struct {
	Symbol string `json:"symbol"` // Asset symbol, e.g. BTC/USD
	Name   string `json:"name"`   // Display name
}

// AssetQuote is an asset with its current market price.
type AssetQuote struct {
	Symbol string          `json:"symbol"` // Asset symbol
	Name   string          `json:"name"`   // Display name
	Price  decimal.Decimal `json:"price"`  // Current price
}
