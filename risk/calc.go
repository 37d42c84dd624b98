// Package risk converts trade-level numbers into the per-trade fractions the
// simulator consumes.
package risk

import (
	"errors"
	"math"
)

var ErrNoStopDistance = errors.New("entry and stop must differ")

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// PlannedRiskUSD computes absolute $ risk if stop is hit.
// quoteToAccountRate converts the quote currency into the account currency
// (1.0 for EUR/USD in a USD account).
func PlannedRiskUSD(units, entry, stop, quoteToAccountRate float64) float64 {
	move := abs(entry - stop)
	return units * move * quoteToAccountRate
}

// RR is the reward multiple of the stop distance. A zero stop distance yields 0.
func RR(entry, stop, takeProfit float64) float64 {
	risk := abs(entry - stop)
	reward := abs(takeProfit - entry)
	if risk == 0 {
		return 0
	}
	return reward / risk
}

// RiskPct is plannedRiskUSD as a fraction of equity. Non-positive equity is
// infinite risk.
func RiskPct(plannedRiskUSD, equity float64) float64 {
	if equity <= 0 {
		return math.Inf(1)
	}
	return plannedRiskUSD / equity
}

// Plan is a trade described in prices and account money.
type Plan struct {
	Entry      float64
	Stop       float64
	TakeProfit float64

	Units          float64
	QuoteToAccount float64
	RiskUSD        float64
	Equity         float64
}

// AvgR returns the planned reward multiple.
func (p Plan) AvgR() (float64, error) {
	if p.Entry == p.Stop {
		return 0, ErrNoStopDistance
	}
	return RR(p.Entry, p.Stop, p.TakeProfit), nil
}

// RiskPerTrade returns the planned loss as a fraction of equity. RiskUSD is
// used when set, otherwise it is derived from Units and the stop distance.
func (p Plan) RiskPerTrade() (float64, error) {
	if p.Equity <= 0 {
		return 0, errors.New("equity must be positive")
	}
	usd := p.RiskUSD
	if usd == 0 {
		if p.Units == 0 {
			return 0, errors.New("risk-usd or units must be set")
		}
		if p.Entry == p.Stop {
			return 0, ErrNoStopDistance
		}
		rate := p.QuoteToAccount
		if rate == 0 {
			rate = 1
		}
		usd = PlannedRiskUSD(p.Units, p.Entry, p.Stop, rate)
	}
	return RiskPct(usd, p.Equity), nil
}
