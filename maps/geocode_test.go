package maps

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestGeocoder(upstream string) *Geocoder {
	return &Geocoder{
		apiKey:  "test-key",
		baseURL: upstream,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

func doGeocode(t *testing.T, g *Geocoder, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	g.Geocode(w, req, nil)

	var payload map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
	}
	return w, payload
}

func TestGeocode(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-RapidAPI-Key") != "test-key" {
			t.Errorf("missing X-RapidAPI-Key header, got %q", r.Header.Get("X-RapidAPI-Key"))
		}
		if r.Header.Get("X-RapidAPI-Host") == "" {
			t.Error("missing X-RapidAPI-Host header")
		}
		if r.URL.Query().Get("address") != "Hawa Mahal, Jaipur" {
			t.Errorf("unexpected address %q", r.URL.Query().Get("address"))
		}
		w.Write([]byte(`{"status":"OK","results":[
			{"formatted_address":"Hawa Mahal Rd, Jaipur, Rajasthan, India",
			 "geometry":{"location":{"lat":26.9239,"lng":75.8267}}},
			{"formatted_address":"somewhere else",
			 "geometry":{"location":{"lat":0,"lng":0}}}
		]}`))
	}))
	defer upstream.Close()

	w, payload := doGeocode(t, newTestGeocoder(upstream.URL), "/api/maps/geocode?address=Hawa+Mahal%2C+Jaipur")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if payload["status"] != true {
		t.Errorf("expected status true, got %v", payload["status"])
	}
	if payload["lat"] != 26.9239 || payload["lng"] != 75.8267 {
		t.Errorf("expected coordinates of the first result, got %v / %v", payload["lat"], payload["lng"])
	}
	if payload["formatted_address"] != "Hawa Mahal Rd, Jaipur, Rajasthan, India" {
		t.Errorf("unexpected formatted address %v", payload["formatted_address"])
	}
}

func TestGeocodeMissingAddress(t *testing.T) {
	upstreamCalled := false
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalled = true
	}))
	defer upstream.Close()

	g := newTestGeocoder(upstream.URL)
	for _, target := range []string{"/api/maps/geocode", "/api/maps/geocode?address=+++"} {
		w, payload := doGeocode(t, g, target)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, w.Code)
		}
		if payload["status"] != false {
			t.Errorf("%s: expected status false, got %v", target, payload["status"])
		}
	}
	if upstreamCalled {
		t.Error("no upstream call may happen without an address")
	}
}

func TestGeocodeZeroResults(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer upstream.Close()

	w, payload := doGeocode(t, newTestGeocoder(upstream.URL), "/api/maps/geocode?address=xyzzy")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if payload["status"] != false {
		t.Errorf("expected status false, got %v", payload["status"])
	}
}

func TestGeocodeOKStatusButEmptyResults(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK","results":[]}`))
	}))
	defer upstream.Close()

	w, _ := doGeocode(t, newTestGeocoder(upstream.URL), "/api/maps/geocode?address=elsewhere")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGeocodeUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer upstream.Close()

	w, payload := doGeocode(t, newTestGeocoder(upstream.URL), "/api/maps/geocode?address=anywhere")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if payload["status"] != false {
		t.Errorf("expected status false, got %v", payload["status"])
	}
}
