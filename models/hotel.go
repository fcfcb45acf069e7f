package models

// HotelListing is the one output shape every upstream hotel record is
// normalized into.
type HotelListing struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Image         string   `json:"image"`
	Deal          string   `json:"deal"`
	Rating        float64  `json:"rating"`
	Location      string   `json:"location"`
	Amenities     []string `json:"amenities"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
}
