package models

// Destination is one entry of the curated destination catalog.
type Destination struct {
	DestinationID string  `json:"destinationid" bson:"destinationid"`
	Name          string  `json:"name" bson:"name"`
	State         string  `json:"state" bson:"state"`
	Type          string  `json:"type" bson:"type"` // devotional/chill/adventure/cultural
	BestMonth     string  `json:"bestMonth" bson:"best_month"`
	Rating        float64 `json:"rating" bson:"rating"`
	Image         string  `json:"image" bson:"image"`
	Description   string  `json:"description" bson:"description"`
}
