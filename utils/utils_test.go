package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripsculptor/errs"
)

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"Goa":              "goa",
		"  New   Delhi  ":  "new delhi",
		"JAIPUR\tRajasthan": "jaipur rajasthan",
		"":                 "",
	}
	for in, want := range cases {
		if got := NormalizeKey(in); got != want {
			t.Errorf("NormalizeKey(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestFailEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, errs.CityNotFound)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if payload["status"] != false {
		t.Errorf("expected status false, got %v", payload["status"])
	}
	if payload["message"] != errs.CityNotFound.Message {
		t.Errorf("unexpected message %v", payload["message"])
	}
}
