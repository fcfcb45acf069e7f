package planner

import (
	"bytes"
	"encoding/json"
	"strings"

	"tripsculptor/errs"
	"tripsculptor/models"
)

// ExtractPlan locates the first valid JSON object embedded in the model's
// free-text output and decodes it into an ItineraryPlan. The decoder reads
// exactly one balanced value, so prose or fences after the object are ignored
// and a stray brace before it does not poison the extraction.
func ExtractPlan(text string) (*models.ItineraryPlan, error) {
	sawBrace := false
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}
		sawBrace = true

		var raw json.RawMessage
		dec := json.NewDecoder(strings.NewReader(text[i:]))
		if err := dec.Decode(&raw); err != nil {
			continue
		}
		return planFromJSON(raw)
	}

	if !sawBrace {
		return nil, errs.NoJSONFound
	}
	return nil, errs.MalformedJSON
}

// planFromJSON validates the minimal shape (title string, days array) and
// binds the document. Optional fields are left to their zero values; no
// per-field validation beyond what binding requires.
func planFromJSON(raw json.RawMessage) (*models.ItineraryPlan, error) {
	var probe struct {
		Title *string         `json:"title"`
		Days  json.RawMessage `json:"days"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, errs.InvalidShape
	}
	if probe.Title == nil || strings.TrimSpace(*probe.Title) == "" {
		return nil, errs.InvalidShape
	}
	if !isJSONArray(probe.Days) {
		return nil, errs.InvalidShape
	}

	var plan models.ItineraryPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, errs.InvalidShape
	}
	if plan.Days == nil {
		plan.Days = []models.ItineraryDay{}
	}
	return &plan, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
