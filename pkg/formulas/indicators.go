package formulas

import (
	"math"

	"github.com/markcheno/go-talib"
)

// SMALast returns the current value of an n-period simple moving average.
// The second return value is false when the series is too short for the
// window, in which case the caller applies its neutral-default policy.
func SMALast(values []float64, period int) (float64, bool) {
	if period <= 0 || len(values) < period {
		return 0, false
	}

	sma := talib.Sma(values, period)
	last := sma[len(sma)-1]
	if isNaN(last) {
		return 0, false
	}
	return last, true
}

// RSISimple calculates the n-period Relative Strength Index using simple
// rolling averages of gains and losses:
//
//	RSI = 100 - (100 / (1 + RS))
//	where RS = Average Gain / Average Loss over N periods
//
// The production model was trained against simple-average RSI, so Wilder
// smoothing must not be used here. Returns false when the series is too
// short or the average loss is zero; callers substitute the neutral 50.
func RSISimple(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period+1 {
		return 0, false
	}

	gains := make([]float64, len(closes)-1)
	losses := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i-1] = delta
		} else {
			losses[i-1] = -delta
		}
	}

	avgGain, okGain := SMALast(gains, period)
	avgLoss, okLoss := SMALast(losses, period)
	if !okGain || !okLoss || avgLoss == 0 {
		return 0, false
	}

	rs := avgGain / avgLoss
	rsi := 100 - (100 / (1 + rs))
	if isNaN(rsi) {
		return 0, false
	}
	return rsi, true
}

// TrueRange calculates the true range of the latest bar: the maximum of the
// high-low span and the two gap distances against the previous close.
func TrueRange(high, low, prevClose float64) float64 {
	return math.Max(high-low, math.Max(math.Abs(high-prevClose), math.Abs(low-prevClose)))
}

// RateOfChange calculates the percentage change over an n-period lookback:
// (Close[t] - Close[t-n]) / Close[t-n] * 100. Returns false when history is
// too short or the reference price is zero.
func RateOfChange(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) <= period {
		return 0, false
	}

	ref := closes[len(closes)-1-period]
	if ref == 0 {
		return 0, false
	}
	return (closes[len(closes)-1] - ref) / ref * 100, true
}

// isNaN checks if a float64 is NaN
func isNaN(f float64) bool {
	return f != f
}
