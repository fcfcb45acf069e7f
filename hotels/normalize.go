package hotels

import (
	"encoding/json"

	"tripsculptor/models"
)

const placeholderImage = "https://via.placeholder.com/150"

// Normalize coalesces one raw provider record into the fixed listing shape.
// Upstream field names vary between providers, so every output field walks a
// fallback chain; destination is the search input and backs the location.
func Normalize(raw map[string]interface{}, destination string) models.HotelListing {
	name := str(raw["name"])

	listing := models.HotelListing{
		ID:            firstStr(raw, "hotel_id", "id"),
		Name:          name,
		Image:         firstStr(raw, "image", "thumbnail"),
		Deal:          str(raw["deal"]),
		Rating:        firstNum(raw, "rating", "stars"),
		Location:      firstStr(raw, "address", "city_name"),
		Amenities:     strSlice(raw["amenities"]),
		Price:         firstNum(raw, "price", "min_price"),
		OriginalPrice: firstNum(raw, "original_price", "price"),
	}

	if listing.ID == "" {
		listing.ID = name
	}
	if listing.Image == "" {
		listing.Image = placeholderImage
	}
	if listing.Deal == "" {
		listing.Deal = "Available"
	}
	if listing.Location == "" {
		listing.Location = destination
	}
	return listing
}

func NormalizeAll(raws []map[string]interface{}, destination string) []models.HotelListing {
	listings := make([]models.HotelListing, 0, len(raws))
	for _, raw := range raws {
		listings = append(listings, Normalize(raw, destination))
	}
	return listings
}

// str renders a loosely-typed field as a string; numeric ids come through
// json.Number and keep their textual form.
func str(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

func firstStr(raw map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s := str(raw[k]); s != "" {
			return s
		}
	}
	return ""
}

func num(v interface{}) float64 {
	switch t := v.(type) {
	case json.Number:
		f, _ := t.Float64()
		return f
	case float64:
		return t
	default:
		return 0
	}
}

func firstNum(raw map[string]interface{}, keys ...string) float64 {
	for _, k := range keys {
		if n := num(raw[k]); n != 0 {
			return n
		}
	}
	return 0
}

func strSlice(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := str(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
