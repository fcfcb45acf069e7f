package errs

import "net/http"

// Definition is a stable error code with its default message and the HTTP
// status it maps to at the handler boundary.
type Definition struct {
	Code    string
	Message string
	Status  int
}

func (d Definition) Error() string {
	return d.Message
}

// With returns a copy of the definition carrying a more specific message.
// The code and status stay the same so callers can still match on it.
func (d Definition) With(message string) Definition {
	d.Message = message
	return d
}

// Is lets errors.Is match definitions by code regardless of message.
func (d Definition) Is(target error) bool {
	t, ok := target.(Definition)
	return ok && t.Code == d.Code
}

// Validation errors — caught before any network call.
var (
	PromptRequired      = Definition{Code: "PROMPT_REQUIRED", Message: "Prompt is required", Status: http.StatusBadRequest}
	DestinationRequired = Definition{Code: "DESTINATION_REQUIRED", Message: "Destination is required", Status: http.StatusBadRequest}
	AddressRequired     = Definition{Code: "ADDRESS_REQUIRED", Message: "Address is required", Status: http.StatusBadRequest}
	InvalidPayload      = Definition{Code: "INVALID_PAYLOAD", Message: "Invalid request payload", Status: http.StatusBadRequest}
)

// AI itinerary pipeline.
var (
	ModelUnavailable = Definition{Code: "MODEL_UNAVAILABLE", Message: "Failed to reach the language model", Status: http.StatusInternalServerError}
	ModelBadResponse = Definition{Code: "MODEL_BAD_RESPONSE", Message: "Invalid response format from the language model", Status: http.StatusInternalServerError}
	NoJSONFound      = Definition{Code: "NO_JSON_FOUND", Message: "No JSON found in response", Status: http.StatusInternalServerError}
	MalformedJSON    = Definition{Code: "MALFORMED_JSON", Message: "Malformed JSON in response", Status: http.StatusInternalServerError}
	InvalidShape     = Definition{Code: "INVALID_SHAPE", Message: "Invalid itinerary format in response", Status: http.StatusInternalServerError}
)

// Hotel search pipeline.
var (
	MappingUnavailable = Definition{Code: "MAPPING_UNAVAILABLE", Message: "Failed to fetch city mapping", Status: http.StatusInternalServerError}
	CityNotFound       = Definition{Code: "CITY_NOT_FOUND", Message: "City not found in mapping API", Status: http.StatusNotFound}
	HotelsUnavailable  = Definition{Code: "HOTELS_UNAVAILABLE", Message: "Failed to fetch hotels", Status: http.StatusInternalServerError}
	NoHotelsFound      = Definition{Code: "NO_HOTELS_FOUND", Message: "No hotels found for this city", Status: http.StatusNotFound}
)

// Geocoding.
var (
	GeocodeUnavailable = Definition{Code: "GEOCODE_UNAVAILABLE", Message: "Geocoding request failed", Status: http.StatusInternalServerError}
	LocationNotFound   = Definition{Code: "LOCATION_NOT_FOUND", Message: "Location not found", Status: http.StatusNotFound}
)

// Saved itineraries.
var (
	ItineraryNotFound = Definition{Code: "ITINERARY_NOT_FOUND", Message: "Itinerary not found", Status: http.StatusNotFound}
	StorageFailure    = Definition{Code: "STORAGE_FAILURE", Message: "Storage operation failed", Status: http.StatusInternalServerError}
)

// StatusOf maps any error to an HTTP status, defaulting to 500.
func StatusOf(err error) int {
	if def, ok := err.(Definition); ok && def.Status != 0 {
		return def.Status
	}
	return http.StatusInternalServerError
}
