package depreciation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var purchased = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

func yearsAfter(years float64) time.Time {
	return purchased.Add(time.Duration(years * daysPerYear * 24 * float64(time.Hour)))
}

func TestCalculate(t *testing.T) {
	amount := decimal.NewFromInt(100000)

	tests := []struct {
		name         string
		purchaseDate string
		amount       decimal.Decimal
		rate         int
		now          time.Time
		want         Result
	}{
		{
			name:         "one year at twenty percent",
			purchaseDate: "2020-01-01",
			amount:       amount,
			rate:         20,
			now:          yearsAfter(1),
			want:         Result{DepreciationPercent: 20, BookValue: 80000, AgeYears: 1},
		},
		{
			name:         "display form purchase date",
			purchaseDate: "01/01/2020",
			amount:       amount,
			rate:         20,
			now:          yearsAfter(2),
			want:         Result{DepreciationPercent: 40, BookValue: 60000, AgeYears: 2},
		},
		{
			name:         "ten years hits cap and floor",
			purchaseDate: "2020-01-01",
			amount:       amount,
			rate:         20,
			now:          yearsAfter(10),
			want:         Result{DepreciationPercent: 90, BookValue: 10000, AgeYears: 10},
		},
		{
			name:         "same day purchase",
			purchaseDate: "2020-01-01",
			amount:       amount,
			rate:         20,
			now:          purchased,
			want:         Result{DepreciationPercent: 0, BookValue: 100000, AgeYears: 0},
		},
		{
			name:         "future purchase never has negative age",
			purchaseDate: "2020-01-01",
			amount:       amount,
			rate:         20,
			now:          purchased.AddDate(0, 0, -40),
			want:         Result{DepreciationPercent: 0, BookValue: 100000, AgeYears: 0},
		},
		{
			name:         "rate above one hundred is clamped",
			purchaseDate: "2020-01-01",
			amount:       amount,
			rate:         250,
			now:          yearsAfter(0.5),
			want:         Result{DepreciationPercent: 50, BookValue: 50000, AgeYears: 0.5},
		},
		{
			name:         "negative rate is clamped to zero",
			purchaseDate: "2020-01-01",
			amount:       amount,
			rate:         -5,
			now:          yearsAfter(3),
			want:         Result{DepreciationPercent: 0, BookValue: 100000, AgeYears: 3},
		},
		{
			name:         "unparseable purchase date",
			purchaseDate: "31/04/2020",
			amount:       amount,
			rate:         20,
			now:          yearsAfter(3),
			want:         Result{BookValue: 100000},
		},
		{
			name:         "empty purchase date",
			purchaseDate: "",
			amount:       amount,
			rate:         20,
			now:          yearsAfter(3),
			want:         Result{BookValue: 100000},
		},
		{
			name:         "zero amount",
			purchaseDate: "2020-01-01",
			amount:       decimal.Zero,
			rate:         20,
			now:          yearsAfter(3),
			want:         Result{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Calculate(tc.purchaseDate, tc.amount, tc.rate, tc.now))
		})
	}
}

func TestCalculateBounds(t *testing.T) {
	amount := decimal.NewFromInt(85000)
	for _, years := range []float64{0, 0.25, 1, 2.5, 4.4, 4.6, 7, 30} {
		got := Calculate("2020-01-01", amount, 20, yearsAfter(years))
		assert.LessOrEqual(t, got.BookValue, int64(85000), "years=%v", years)
		assert.GreaterOrEqual(t, got.BookValue, int64(8500), "years=%v", years)
		assert.LessOrEqual(t, got.DepreciationPercent, int64(90), "years=%v", years)
	}
}

func TestFromValue(t *testing.T) {
	got := FromValue("2020-01-01", "Rs. 85,000", 20, yearsAfter(1))
	assert.Equal(t, Result{DepreciationPercent: 20, BookValue: 68000, AgeYears: 1}, got)

	assert.Equal(t, Result{}, FromValue("2020-01-01", "n/a", 20, yearsAfter(1)))
}
