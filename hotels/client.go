package hotels

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tripsculptor/errs"
	"tripsculptor/rdx"
	"tripsculptor/utils"
)

const mappingCacheTTL = 12 * time.Hour

// Client talks to the Makcorps metasearch API. The two lookups are strictly
// sequential: the hotel search needs the city id the mapping call returns.
type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// CityID resolves a destination name to the provider's city identifier.
// Identifiers are stable, so resolved ones are kept in Redis; a cache failure
// just falls through to the upstream lookup.
func (c *Client) CityID(ctx context.Context, destination string) (string, error) {
	cacheKey := "hotels:mapping:" + utils.NormalizeKey(destination)
	var cached string
	if rdx.CacheGet(ctx, cacheKey, &cached) && cached != "" {
		return cached, nil
	}

	endpoint := fmt.Sprintf("%s/mapping?api_key=%s&name=%s", c.BaseURL, c.APIKey, url.QueryEscape(destination))
	var payload struct {
		Data struct {
			CityID json.Number `json:"city_id"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return "", errs.MappingUnavailable
	}

	cityID := payload.Data.CityID.String()
	if cityID == "" {
		return "", errs.CityNotFound
	}

	rdx.CacheSet(ctx, cacheKey, cityID, mappingCacheTTL)
	return cityID, nil
}

// SearchByCityID fetches the raw hotel list for one city. Listings are never
// cached; prices move too fast.
func (c *Client) SearchByCityID(ctx context.Context, cityID string) ([]map[string]interface{}, error) {
	endpoint := fmt.Sprintf("%s/hotel/search?api_key=%s&city_id=%s", c.BaseURL, c.APIKey, url.QueryEscape(cityID))
	var payload struct {
		Data *struct {
			Hotels json.RawMessage `json:"hotels"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, errs.HotelsUnavailable
	}

	// missing, null, or non-array hotels all mean the city has no listings
	if payload.Data == nil || len(payload.Data.Hotels) == 0 {
		return nil, errs.NoHotelsFound
	}
	var hotels []map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(payload.Data.Hotels))
	dec.UseNumber()
	if err := dec.Decode(&hotels); err != nil || hotels == nil {
		return nil, errs.NoHotelsFound
	}
	return hotels, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	return dec.Decode(dest)
}
