// Package geo implements the Geocoder port against the openrouteservice
// geocoding API. Service areas are resolved to coordinates for the dashboard
// map; the adapter is read-only and keeps no state besides its HTTP client.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"dispatch/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// ErrAreaNotFound is returned when the geocoding service has no match for
// the requested area.
var ErrAreaNotFound = errors.New("area not found")

// Client calls the openrouteservice geocode search endpoint. Areas are
// suffixed with the city and the search is bounded to the country so
// ambiguous neighbourhood names resolve locally.
type Client struct {
	baseURL    string
	apiKey     string
	city       string
	country    string
	httpClient *http.Client
}

// NewClient creates a geocoding client. baseURL is the service root without
// a trailing slash, for example "https://api.openrouteservice.org".
func NewClient(baseURL, apiKey, city, country string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		city:       city,
		country:    country,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// geocodeResponse is the subset of the GeoJSON answer the adapter reads.
// Coordinates arrive as [longitude, latitude].
type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves an area name to coordinates. Implements ports.Geocoder.
func (c *Client) Geocode(ctx context.Context, area string) (ports.GeoPoint, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("text", fmt.Sprintf("%s, %s", area, c.city))
	query.Set("boundary.country", c.country)
	query.Set("size", "1")

	endpoint := fmt.Sprintf("%s/geocode/search?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.GeoPoint{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.GeoPoint{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.GeoPoint{}, fmt.Errorf("geocode request failed: status %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.GeoPoint{}, fmt.Errorf("geocode response malformed: %w", err)
	}

	if len(decoded.Features) == 0 || len(decoded.Features[0].Geometry.Coordinates) < 2 {
		return ports.GeoPoint{}, fmt.Errorf("%w: %s", ErrAreaNotFound, area)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	return ports.GeoPoint{Lat: coords[1], Lng: coords[0]}, nil
}
