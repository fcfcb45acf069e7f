package planner

import (
	"math"

	"tripsculptor/models"
)

// Reconcile folds every per-day cost into category totals, a grand total, and
// the budget verdict. A tie counts as under budget.
func Reconcile(plan *models.ItineraryPlan) models.Breakdown {
	var b models.Breakdown

	for _, day := range plan.Days {
		for _, act := range day.Activities {
			b.Activities += cost(act.Cost)
		}
		b.Accommodation += cost(day.AccommodationCost)
		b.Meals += cost(day.MealsCost)
		b.Transport += cost(day.TransportCost)
	}

	b.Total = b.Activities + b.Accommodation + b.Meals + b.Transport
	b.UnderBudget = b.Total <= cost(plan.TotalBudget)
	return b
}

// cost guards the fold: absent fields decode to 0 already, and anything
// non-finite or negative is treated as 0 so it can never poison a sum.
func cost(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
