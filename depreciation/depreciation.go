// Package depreciation computes straight-line book value for an asset: annual rate times
// age, capped at 90% of the purchase amount and never below a 10% salvage floor.
package depreciation

import (
	"assetledger/dateformat"
	"assetledger/utils"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultRate = 20
	daysPerYear = 365.25
)

var (
	lifetimeCap  = decimal.RequireFromString("0.9")
	salvageFloor = decimal.RequireFromString("0.1")
	hundred      = decimal.NewFromInt(100)
)

type Result struct {
	DepreciationPercent int64   `json:"depreciationPercent"`
	BookValue           int64   `json:"bookValue"`
	AgeYears            float64 `json:"ageYears"`
}

// Calculate depreciates amount from purchaseDate to now at ratePercent per year.
func Calculate(purchaseDate string, amount decimal.Decimal, ratePercent int, now time.Time) Result {
	if amount.Sign() <= 0 {
		return Result{}
	}
	purchased, ok := dateformat.Parse(purchaseDate)
	if !ok {
		return Result{BookValue: amount.Round(0).IntPart()}
	}

	age := AgeYears(purchased, now)
	rate := decimal.NewFromInt(int64(clamp(ratePercent, 0, 100))).Div(hundred)

	raw := amount.Mul(rate).Mul(age)
	capped := decimal.Min(raw, amount.Mul(lifetimeCap))
	book := decimal.Max(amount.Sub(capped), amount.Mul(salvageFloor))

	return Result{
		DepreciationPercent: capped.Div(amount).Mul(hundred).Round(0).IntPart(),
		BookValue:           book.Round(0).IntPart(),
		AgeYears:            age.Round(2).InexactFloat64(),
	}
}

// FromValue is Calculate over a free-form amount string such as "85,000".
func FromValue(purchaseDate, value string, ratePercent int, now time.Time) Result {
	return Calculate(purchaseDate, utils.ParseAmount(value), ratePercent, now)
}

// AgeYears is the time from purchased to now in 365.25-day years; a future purchase is age zero.
func AgeYears(purchased, now time.Time) decimal.Decimal {
	days := now.Sub(purchased).Hours() / 24
	if days <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(days).Div(decimal.NewFromFloat(daysPerYear))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
