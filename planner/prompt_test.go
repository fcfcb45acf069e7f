package planner

import (
	"errors"
	"strings"
	"testing"

	"tripsculptor/errs"
)

func TestBuildPromptRejectsBlankInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t "} {
		if _, err := BuildPrompt(input); !errors.Is(err, errs.PromptRequired) {
			t.Errorf("input %q: expected PromptRequired, got %v", input, err)
		}
	}
}

func TestBuildPromptComposition(t *testing.T) {
	description := "5 days in Kerala for 2 people under 30000"

	prompt, err := BuildPrompt(description)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(prompt, `"`+description+`"`) {
		t.Error("prompt must carry the user text verbatim")
	}
	// pricing guidance bands
	for _, band := range []string{
		"₹1,000-3,000 per night",
		"₹3,000-7,000 per night",
		"₹7,000+ per night",
		"₹200-500 per person",
		"₹500-1,500 per person",
		"₹500-2,000 per activity",
		"₹1,000-3,000 per day",
	} {
		if !strings.Contains(prompt, band) {
			t.Errorf("prompt missing price band %q", band)
		}
	}
	// output schema and the infeasibility escape hatch
	for _, fragment := range []string{`"title"`, `"days"`, `"feasibility": false`, `"reason"`, `"accommodationCost"`, `"transportCost"`} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing schema fragment %q", fragment)
		}
	}
}
