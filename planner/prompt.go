package planner

import (
	"fmt"
	"strings"

	"tripsculptor/errs"
)

// The pricing guidance and output schema sent with every generation request.
// The bands bias the model toward realistic Indian market rates.
const promptTemplate = `Create a detailed travel itinerary based on this request: "%s".
Be realistic with costs based on actual Indian market rates.
Consider these guidelines:
- Budget hotels in India: ₹1,000-3,000 per night
- Mid-range hotels: ₹3,000-7,000 per night
- Luxury hotels: ₹7,000+ per night
- Local meals: ₹200-500 per person
- Restaurant meals: ₹500-1,500 per person
- Activities: ₹500-2,000 per activity
- Transport: ₹1,000-3,000 per day

If the requested trip is not feasible within the given budget, include "feasibility": false and "reason" in the response.

Format the response as a JSON object with this structure:
{
  "title": "Trip title",
  "startDate": "2025-06-14",
  "endDate": "2025-06-20",
  "totalBudget": 15000,
  "feasibility": true,
  "reason": "Optional explanation if not feasible",
  "days": [
    {
      "day": 1,
      "location": "City name",
      "activities": [
        {
          "activity": "Activity 1",
          "cost": 500,
          "note": "Optional note about availability/timing"
        }
      ],
      "accommodation": "Hotel/Place name",
      "accommodationCost": 2000,
      "accommodationNote": "Optional note about hotel",
      "meals": "Meal description",
      "mealsCost": 800,
      "transportCost": 1000,
      "transportNote": "How to get around"
    }
  ]
}`

// BuildPrompt composes the full model instruction from the user's trip
// description. Pure string construction; rejects blank input before any
// network call happens.
func BuildPrompt(description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", errs.PromptRequired
	}
	return fmt.Sprintf(promptTemplate, description), nil
}
