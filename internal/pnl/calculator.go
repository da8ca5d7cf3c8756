// Package pnl computes performance statistics for a series of daily returns.
// It is the producer behind the strategy_performance figures surfaced to
// users: total and annualized return, volatility, Sharpe and Sortino ratios,
// maximum drawdown, win rate and profit factor.
package pnl

import "math"

// DefaultTradingDays is the conventional number of trading days per year.
const DefaultTradingDays = 252

// Options tunes the risk-adjusted metrics.
type Options struct {
	RiskFreeRate       float64 // Annual risk-free rate, e.g. 0.02
	TradingDaysPerYear int     // Defaults to DefaultTradingDays when zero
}

// Performance holds the computed metrics. Returns and rates are fractions,
// not percentages.
type Performance struct {
	TotalReturn      float64 // Compounded return over the whole series
	AnnualizedReturn float64 // Total return scaled to one year
	Volatility       float64 // Annualized standard deviation of daily returns
	SharpeRatio      float64 // Annualized excess return per unit of volatility
	SortinoRatio     float64 // Like Sharpe but penalizing only downside deviation
	MaxDrawdown      float64 // Largest peak-to-trough equity decline, as a positive fraction
	WinRate          float64 // Fraction of days with a positive return
	ProfitFactor     float64 // Gross gains divided by gross losses; gross gains when there are no losses
}

// Calculate computes Performance for a series of daily returns. An empty
// series yields a zero Performance.
func Calculate(dailyReturns []float64, opts Options) Performance {
	n := len(dailyReturns)
	if n == 0 {
		return Performance{}
	}

	tradingDays := opts.TradingDaysPerYear
	if tradingDays <= 0 {
		tradingDays = DefaultTradingDays
	}
	rfDaily := opts.RiskFreeRate / float64(tradingDays)

	var (
		sum, gains, losses float64
		wins               int
		equity             = 1.0
		peak               = 1.0
		maxDrawdown        float64
	)
	for _, r := range dailyReturns {
		sum += r
		if r > 0 {
			wins++
			gains += r
		} else if r < 0 {
			losses += -r
		}

		equity *= 1 + r
		if equity > peak {
			peak = equity
		}
		if dd := (peak - equity) / peak; dd > maxDrawdown {
			maxDrawdown = dd
		}
	}

	mean := sum / float64(n)

	var variance, downVariance float64
	for _, r := range dailyReturns {
		d := r - mean
		variance += d * d
		if r < rfDaily {
			dd := r - rfDaily
			downVariance += dd * dd
		}
	}
	variance /= float64(n)
	downVariance /= float64(n)

	stddev := math.Sqrt(variance)
	downDev := math.Sqrt(downVariance)
	annualFactor := math.Sqrt(float64(tradingDays))

	totalReturn := equity - 1
	annualized := math.Pow(1+totalReturn, float64(tradingDays)/float64(n)) - 1

	perf := Performance{
		TotalReturn:      totalReturn,
		AnnualizedReturn: annualized,
		Volatility:       stddev * annualFactor,
		MaxDrawdown:      maxDrawdown,
		WinRate:          float64(wins) / float64(n),
	}

	if stddev > 0 {
		perf.SharpeRatio = (mean - rfDaily) / stddev * annualFactor
	}
	if downDev > 0 {
		perf.SortinoRatio = (mean - rfDaily) / downDev * annualFactor
	}
	// A series without losing days reports the gross gain itself as the
	// profit factor. The value must stay finite: Performance is serialized
	// to JSON, which cannot encode +Inf.
	if losses > 0 {
		perf.ProfitFactor = gains / losses
	} else {
		perf.ProfitFactor = gains
	}

	return perf
}

// ConstantReturns builds a series of n identical daily returns. Strategy
// earnings accrue at the strategy's expected daily ROI, which makes the
// accrual deterministic and replayable.
func ConstantReturns(dailyReturn float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	returns := make([]float64, n)
	for i := range returns {
		returns[i] = dailyReturn
	}
	return returns
}
