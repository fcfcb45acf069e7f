package hotels

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func doSearch(t *testing.T, s *Search, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	s.SearchHotels(w, req, nil)

	var payload map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
	}
	return w, payload
}

func TestSearchHotels(t *testing.T) {
	calls := []string{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)
		switch r.URL.Path {
		case "/mapping":
			if r.URL.Query().Get("api_key") != "test-key" {
				t.Errorf("mapping call missing api_key, got %q", r.URL.Query().Get("api_key"))
			}
			if r.URL.Query().Get("name") != "Goa" {
				t.Errorf("mapping call missing name, got %q", r.URL.Query().Get("name"))
			}
			w.Write([]byte(`{"data":{"city_id":304551}}`))
		case "/hotel/search":
			if r.URL.Query().Get("city_id") != "304551" {
				t.Errorf("search call got city_id %q", r.URL.Query().Get("city_id"))
			}
			w.Write([]byte(`{"data":{"hotels":[
				{"hotel_id":1,"name":"Sea Breeze","price":3500},
				{"name":"Budget Inn"}
			]}}`))
		default:
			t.Errorf("unexpected upstream path %s", r.URL.Path)
		}
	}))
	defer upstream.Close()

	s := &Search{client: NewClient("test-key", upstream.URL)}
	w, payload := doSearch(t, s, "/api/hotels/search?destination=Goa")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(calls) != 2 || calls[0] != "/mapping" || calls[1] != "/hotel/search" {
		t.Fatalf("expected mapping then search, got %v", calls)
	}
	if payload["status"] != true {
		t.Errorf("expected status true, got %v", payload["status"])
	}

	results, ok := payload["results"].([]interface{})
	if !ok || len(results) != 2 {
		t.Fatalf("expected two results, got %v", payload["results"])
	}
	first := results[0].(map[string]interface{})
	if first["id"] != "1" || first["name"] != "Sea Breeze" {
		t.Errorf("unexpected first listing: %v", first)
	}
	second := results[1].(map[string]interface{})
	if second["image"] != placeholderImage {
		t.Errorf("sparse listing should carry the placeholder image, got %v", second["image"])
	}
	if second["location"] != "Goa" {
		t.Errorf("sparse listing should fall back to the destination, got %v", second["location"])
	}
}

func TestSearchHotelsMissingDestination(t *testing.T) {
	upstreamCalled := false
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalled = true
	}))
	defer upstream.Close()

	s := &Search{client: NewClient("test-key", upstream.URL)}
	for _, target := range []string{"/api/hotels/search", "/api/hotels/search?destination=%20%20"} {
		w, payload := doSearch(t, s, target)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, w.Code)
		}
		if payload["status"] != false {
			t.Errorf("%s: expected status false, got %v", target, payload["status"])
		}
	}
	if upstreamCalled {
		t.Error("no upstream call may happen without a destination")
	}
}

func TestSearchHotelsUnknownCity(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// mapping succeeds but carries no city id
		w.Write([]byte(`{"data":{}}`))
	}))
	defer upstream.Close()

	s := &Search{client: NewClient("test-key", upstream.URL)}
	w, _ := doSearch(t, s, "/api/hotels/search?destination=Atlantis")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSearchHotelsNoListings(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/mapping" {
			w.Write([]byte(`{"data":{"city_id":"77"}}`))
			return
		}
		w.Write([]byte(`{"data":null}`))
	}))
	defer upstream.Close()

	s := &Search{client: NewClient("test-key", upstream.URL)}
	w, _ := doSearch(t, s, "/api/hotels/search?destination=Nowhere")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSearchHotelsNonArrayListings(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/mapping" {
			w.Write([]byte(`{"data":{"city_id":"77"}}`))
			return
		}
		// hotels present but not a list
		w.Write([]byte(`{"data":{"hotels":"temporarily unavailable"}}`))
	}))
	defer upstream.Close()

	s := &Search{client: NewClient("test-key", upstream.URL)}
	w, payload := doSearch(t, s, "/api/hotels/search?destination=Goa")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if payload["status"] != false {
		t.Errorf("expected status false, got %v", payload["status"])
	}
}

func TestSearchHotelsMappingDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer upstream.Close()

	s := &Search{client: NewClient("test-key", upstream.URL)}
	w, payload := doSearch(t, s, "/api/hotels/search?destination=Goa")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if payload["status"] != false {
		t.Errorf("expected status false, got %v", payload["status"])
	}
}

func TestSearchHotelsSearchDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/mapping" {
			w.Write([]byte(`{"data":{"city_id":"77"}}`))
			return
		}
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	s := &Search{client: NewClient("test-key", upstream.URL)}
	w, _ := doSearch(t, s, "/api/hotels/search?destination=Goa")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
