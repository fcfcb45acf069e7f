package models

// ItineraryPlan is the structured trip plan extracted from the model output.
// Only Title and Days are guaranteed by the parser; everything else may be
// absent and defaults to its zero value.
type ItineraryPlan struct {
	Title       string         `json:"title" bson:"title"`
	StartDate   string         `json:"startDate,omitempty" bson:"start_date,omitempty"`
	EndDate     string         `json:"endDate,omitempty" bson:"end_date,omitempty"`
	TotalBudget float64        `json:"totalBudget,omitempty" bson:"total_budget,omitempty"`
	Feasibility *bool          `json:"feasibility,omitempty" bson:"feasibility,omitempty"`
	Reason      string         `json:"reason,omitempty" bson:"reason,omitempty"`
	Days        []ItineraryDay `json:"days" bson:"days"`
}

type ItineraryDay struct {
	Day               int           `json:"day" bson:"day"`
	Location          string        `json:"location" bson:"location"`
	Activities        []DayActivity `json:"activities" bson:"activities"`
	Accommodation     string        `json:"accommodation" bson:"accommodation"`
	AccommodationCost float64       `json:"accommodationCost" bson:"accommodation_cost"`
	AccommodationNote string        `json:"accommodationNote,omitempty" bson:"accommodation_note,omitempty"`
	Meals             string        `json:"meals" bson:"meals"`
	MealsCost         float64       `json:"mealsCost" bson:"meals_cost"`
	TransportCost     float64       `json:"transportCost" bson:"transport_cost"`
	TransportNote     string        `json:"transportNote,omitempty" bson:"transport_note,omitempty"`
}

type DayActivity struct {
	Activity string  `json:"activity" bson:"activity"`
	Cost     float64 `json:"cost" bson:"cost"`
	Note     string  `json:"note,omitempty" bson:"note,omitempty"`
}

// Feasible reports the plan's feasibility flag, defaulting to true when the
// model omitted it.
func (p *ItineraryPlan) Feasible() bool {
	return p.Feasibility == nil || *p.Feasibility
}

// Breakdown is the reconciled cost summary of a plan.
type Breakdown struct {
	Activities    float64 `json:"activities" bson:"activities"`
	Accommodation float64 `json:"accommodation" bson:"accommodation"`
	Meals         float64 `json:"meals" bson:"meals"`
	Transport     float64 `json:"transport" bson:"transport"`
	Total         float64 `json:"total" bson:"total"`
	UnderBudget   bool    `json:"underBudget" bson:"under_budget"`
}

// SavedItinerary is a generated plan kept in storage.
type SavedItinerary struct {
	ItineraryID string        `json:"itineraryid" bson:"itineraryid"`
	Plan        ItineraryPlan `json:"plan" bson:"plan"`
	Breakdown   Breakdown     `json:"breakdown" bson:"breakdown"`
	CreatedAt   string        `json:"created_at" bson:"created_at"`
	Deleted     bool          `json:"-" bson:"deleted,omitempty"` // Internal use only
}
