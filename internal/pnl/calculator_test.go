package pnl_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/cookiecash/trading-wallet/internal/pnl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_EmptySeries(t *testing.T) {
	perf := pnl.Calculate(nil, pnl.Options{})
	assert.Equal(t, pnl.Performance{}, perf)
}

func TestCalculate_ConstantPositiveReturns(t *testing.T) {
	returns := pnl.ConstantReturns(0.01, 10)
	perf := pnl.Calculate(returns, pnl.Options{})

	want := math.Pow(1.01, 10) - 1
	assert.InDelta(t, want, perf.TotalReturn, 1e-12)
	assert.Equal(t, 1.0, perf.WinRate)
	assert.Equal(t, 0.0, perf.MaxDrawdown, "monotonic growth has no drawdown")
	assert.Equal(t, 0.0, perf.Volatility, "constant returns have zero variance")
	assert.InDelta(t, 0.1, perf.ProfitFactor, 1e-12, "no losing days: gross gains reported as-is")
}

// Performance travels over HTTP as JSON, so every metric must stay finite
// even for series with no losing days.
func TestCalculate_LosslessSeriesMarshals(t *testing.T) {
	perf := pnl.Calculate(pnl.ConstantReturns(0.0013, 30), pnl.Options{RiskFreeRate: 0.02})
	assert.False(t, math.IsInf(perf.ProfitFactor, 1))

	payload, err := json.Marshal(perf)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "ProfitFactor")
}

func TestCalculate_MixedReturns(t *testing.T) {
	returns := []float64{0.02, -0.01, 0.03, -0.02, 0.01}
	perf := pnl.Calculate(returns, pnl.Options{RiskFreeRate: 0.02})

	equity := 1.0
	for _, r := range returns {
		equity *= 1 + r
	}
	assert.InDelta(t, equity-1, perf.TotalReturn, 1e-12)

	assert.InDelta(t, 0.6, perf.WinRate, 1e-12)
	assert.InDelta(t, 0.06/0.03, perf.ProfitFactor, 1e-12)
	assert.Positive(t, perf.Volatility)
	assert.Positive(t, perf.SharpeRatio)
	assert.Positive(t, perf.SortinoRatio)
	assert.InDelta(t, 0.02, perf.MaxDrawdown, 1e-12, "single worst daily loss is the max drawdown here")
}

func TestCalculate_Drawdown(t *testing.T) {
	// Up 10%, then two consecutive 10% losses: trough is 0.891 against a
	// peak of 1.1, a drawdown of 19%.
	returns := []float64{0.10, -0.10, -0.10}
	perf := pnl.Calculate(returns, pnl.Options{})

	assert.InDelta(t, 0.19, perf.MaxDrawdown, 1e-12)
}

func TestCalculate_AllLosses(t *testing.T) {
	returns := []float64{-0.01, -0.02, -0.01}
	perf := pnl.Calculate(returns, pnl.Options{})

	assert.Equal(t, 0.0, perf.WinRate)
	assert.Equal(t, 0.0, perf.ProfitFactor)
	assert.Negative(t, perf.TotalReturn)
}

func TestCalculate_AnnualizedReturn(t *testing.T) {
	// One trading year of data: annualized equals total.
	returns := pnl.ConstantReturns(0.001, pnl.DefaultTradingDays)
	perf := pnl.Calculate(returns, pnl.Options{})

	assert.InDelta(t, perf.TotalReturn, perf.AnnualizedReturn, 1e-9)
}

func TestCalculate_CustomTradingDays(t *testing.T) {
	returns := pnl.ConstantReturns(0.001, 365)
	perf := pnl.Calculate(returns, pnl.Options{TradingDaysPerYear: 365})

	assert.InDelta(t, perf.TotalReturn, perf.AnnualizedReturn, 1e-9)
}

func TestConstantReturns(t *testing.T) {
	returns := pnl.ConstantReturns(0.005, 3)
	require.Len(t, returns, 3)
	for _, r := range returns {
		assert.Equal(t, 0.005, r)
	}

	assert.Nil(t, pnl.ConstantReturns(0.005, 0))
	assert.Nil(t, pnl.ConstantReturns(0.005, -1))
}
