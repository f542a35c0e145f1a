package services

import "github.com/shopspring/decimal"

// BudgetAllocation splits one day's budget. It is advisory: the planner does
// not keep actual spend inside it.
type BudgetAllocation struct {
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Transport     float64 `json:"transport"`
	Activities    float64 `json:"activities"`
}

// Shares of the daily budget. They sum to 1.
var (
	accommodationShare = decimal.RequireFromString("0.40")
	foodShare          = decimal.RequireFromString("0.25")
	transportShare     = decimal.RequireFromString("0.20")
	activitiesShare    = decimal.RequireFromString("0.15")
)

// AllocateBudget divides total by days (at least 1) and splits the daily
// amount 40/25/20/15, each part rounded to 2 decimal places.
func AllocateBudget(total float64, days int) BudgetAllocation {
	if days < 1 {
		days = 1
	}
	daily := decimal.NewFromFloat(total).Div(decimal.NewFromInt(int64(days)))

	share := func(weight decimal.Decimal) float64 {
		return daily.Mul(weight).Round(2).InexactFloat64()
	}

	return BudgetAllocation{
		Accommodation: share(accommodationShare),
		Food:          share(foodShare),
		Transport:     share(transportShare),
		Activities:    share(activitiesShare),
	}
}

// Total is the sum of the four parts.
func (b BudgetAllocation) Total() float64 {
	return decimal.NewFromFloat(b.Accommodation).
		Add(decimal.NewFromFloat(b.Food)).
		Add(decimal.NewFromFloat(b.Transport)).
		Add(decimal.NewFromFloat(b.Activities)).
		Round(2).InexactFloat64()
}
