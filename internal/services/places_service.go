package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"ezyvoyage/internal/config"
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/pkg/metrics"
)

// FoursquareClient geocodes destinations and searches nearby venues through
// the Foursquare Places v3 API.
type FoursquareClient struct {
	HTTP    *http.Client
	BaseURL string
	APIKey  string
}

func NewFoursquareClient(cfg *config.Config) *FoursquareClient {
	return &FoursquareClient{
		HTTP:    &http.Client{Timeout: cfg.Places.Timeout},
		BaseURL: strings.TrimRight(cfg.Places.BaseURL, "/"),
		APIKey:  cfg.Places.APIKey,
	}
}

type fsqPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type fsqPlace struct {
	FsqID      string `json:"fsq_id"`
	Name       string `json:"name"`
	Categories []struct {
		Name string `json:"name"`
	} `json:"categories"`
	Geocodes struct {
		Main fsqPoint `json:"main"`
	} `json:"geocodes"`
	Location struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"location"`
	Rating float64 `json:"rating"`
	Stats  struct {
		TotalRatings int `json:"total_ratings"`
	} `json:"stats"`
}

type fsqResponse struct {
	Results []fsqPlace `json:"results"`
}

func (c *FoursquareClient) Geocode(ctx context.Context, address string) (pipeline.Coordinates, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("limit", "1")

	var payload fsqResponse
	if err := c.get(ctx, "/v3/geocode", q, &payload); err != nil {
		metrics.AdapterFailed("geocode")
		return pipeline.Coordinates{}, err
	}
	if len(payload.Results) == 0 {
		metrics.AdapterFailed("geocode")
		return pipeline.Coordinates{}, fmt.Errorf("geocode: no result for %q", address)
	}
	p := payload.Results[0].Geocodes.Main
	return pipeline.Coordinates{Lat: p.Latitude, Lng: p.Longitude}, nil
}

func (c *FoursquareClient) SearchNearby(ctx context.Context, at pipeline.Coordinates, categories string, limit, radiusMeters int) ([]pipeline.CandidateVenue, error) {
	q := url.Values{}
	q.Set("ll", fmt.Sprintf("%f,%f", at.Lat, at.Lng))
	q.Set("categories", categories)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("radius", strconv.Itoa(radiusMeters))

	var payload fsqResponse
	if err := c.get(ctx, "/v3/places/search", q, &payload); err != nil {
		metrics.AdapterFailed("places")
		return nil, err
	}

	venues := make([]pipeline.CandidateVenue, 0, len(payload.Results))
	for _, p := range payload.Results {
		v := pipeline.CandidateVenue{
			ID:          p.FsqID,
			Name:        p.Name,
			Coordinates: pipeline.Coordinates{Lat: p.Geocodes.Main.Latitude, Lng: p.Geocodes.Main.Longitude},
			Rating:      p.Rating,
			ReviewCount: p.Stats.TotalRatings,
			Address:     p.Location.FormattedAddress,
		}
		if len(p.Categories) > 0 {
			v.Category = p.Categories[0].Name
		}
		venues = append(venues, v)
	}
	return venues, nil
}

func (c *FoursquareClient) get(ctx context.Context, path string, q url.Values, out any) error {
	if c.APIKey == "" {
		return fmt.Errorf("foursquare: api key not configured")
	}
	u := c.BaseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.APIKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("foursquare http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("foursquare bad status %s after %s", resp.Status, time.Since(start))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("foursquare decode: %w", err)
	}
	return nil
}
