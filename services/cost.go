package services

import "github.com/shopspring/decimal"

// TotalCost sums every line item: one night per day, all meals, and each
// activity with its transport. It does not modify it.
func TotalCost(it *Itinerary) float64 {
	if it == nil {
		return 0
	}
	total := decimal.Zero
	for _, day := range it.Plans {
		total = total.Add(decimal.NewFromFloat(day.Accommodation.CostPerNight))
		for _, m := range day.Meals {
			total = total.Add(decimal.NewFromFloat(m.Cost))
		}
		for _, act := range day.Activities {
			total = total.Add(decimal.NewFromFloat(act.EstimatedCost)).
				Add(decimal.NewFromFloat(act.Transport.Cost))
		}
	}
	return total.Round(2).InexactFloat64()
}

// RemainingBudget is the budget left after TotalCost. Negative means over budget.
func RemainingBudget(it *Itinerary) float64 {
	if it == nil {
		return 0
	}
	return decimal.NewFromFloat(it.Budget).
		Sub(decimal.NewFromFloat(TotalCost(it))).
		Round(2).InexactFloat64()
}
