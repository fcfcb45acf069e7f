package maps

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tripsculptor/config"
	"tripsculptor/errs"
	"tripsculptor/rdx"
	"tripsculptor/utils"

	"github.com/julienschmidt/httprouter"
)

const geocodeCacheTTL = 24 * time.Hour

// Geocoder proxies the RapidAPI Google-Maps geocoding endpoint.
type Geocoder struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func New() *Geocoder {
	return &Geocoder{
		apiKey:  config.Cfg.RapidAPIKey,
		baseURL: config.Cfg.GeocodeBaseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type geocodeResult struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address"`
}

type providerResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// GET /api/maps/geocode?address=...
func (g *Geocoder) Geocode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		utils.Fail(w, errs.AddressRequired)
		return
	}

	cacheKey := "maps:geocode:" + utils.NormalizeKey(address)
	var result geocodeResult
	if !rdx.CacheGet(r.Context(), cacheKey, &result) {
		res, err := g.lookup(r, address)
		if err != nil {
			log.Println("Geocoding error for", address, ":", err)
			utils.Fail(w, err)
			return
		}
		result = *res
		rdx.CacheSet(r.Context(), cacheKey, result, geocodeCacheTTL)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status":            true,
		"lat":               result.Lat,
		"lng":               result.Lng,
		"formatted_address": result.FormattedAddress,
	})
}

func (g *Geocoder) lookup(r *http.Request, address string) (*geocodeResult, error) {
	endpoint := fmt.Sprintf("%s/geocode/json?address=%s", g.baseURL, url.QueryEscape(address))
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.GeocodeUnavailable
	}
	req.Header.Set("X-RapidAPI-Host", "google-maps-geocoding.p.rapidapi.com")
	req.Header.Set("X-RapidAPI-Key", g.apiKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, errs.GeocodeUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, errs.GeocodeUnavailable.With(fmt.Sprintf("Geocoding API failed: %d", resp.StatusCode))
	}

	var parsed providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errs.GeocodeUnavailable
	}

	if parsed.Status != "OK" || len(parsed.Results) == 0 {
		return nil, errs.LocationNotFound
	}

	top := parsed.Results[0]
	return &geocodeResult{
		Lat:              top.Geometry.Location.Lat,
		Lng:              top.Geometry.Location.Lng,
		FormattedAddress: top.FormattedAddress,
	}, nil
}
