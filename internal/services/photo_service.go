package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"ezyvoyage/internal/config"
	"ezyvoyage/internal/models/response_models"
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/pkg/metrics"
)

// UnsplashClient searches landscape photos.
type UnsplashClient struct {
	HTTP      *http.Client
	BaseURL   string
	AccessKey string
}

func NewUnsplashClient(cfg *config.Config) *UnsplashClient {
	return &UnsplashClient{
		HTTP:      &http.Client{Timeout: cfg.Photos.Timeout},
		BaseURL:   strings.TrimRight(cfg.Photos.BaseURL, "/"),
		AccessKey: cfg.Photos.AccessKey,
	}
}

func (c *UnsplashClient) SearchPhotos(ctx context.Context, query string, count int) ([]pipeline.Photo, error) {
	if c.AccessKey == "" {
		return nil, fmt.Errorf("unsplash: access key not configured")
	}
	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", strconv.Itoa(count))
	q.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/search/photos?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+c.AccessKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		metrics.AdapterFailed("photos")
		return nil, fmt.Errorf("unsplash http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		metrics.AdapterFailed("photos")
		return nil, fmt.Errorf("unsplash bad status: %s", resp.Status)
	}

	var payload struct {
		Results []struct {
			AltDescription string `json:"alt_description"`
			URLs           struct {
				Regular string `json:"regular"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.AdapterFailed("photos")
		return nil, fmt.Errorf("unsplash decode: %w", err)
	}

	photos := make([]pipeline.Photo, 0, len(payload.Results))
	for _, r := range payload.Results {
		if r.URLs.Regular == "" {
			continue
		}
		photos = append(photos, pipeline.Photo{URL: r.URLs.Regular, Alt: r.AltDescription})
	}
	return photos, nil
}

// PlaceholderImageURL is used when no photo could be found. Only the city
// part of the location is searched; spaces are sent as %20.
func PlaceholderImageURL(location string) string {
	city := strings.TrimSpace(strings.SplitN(location, ",", 2)[0])
	return fmt.Sprintf("https://source.unsplash.com/800x600/?%s,travel", strings.ReplaceAll(url.QueryEscape(city), "+", "%20"))
}

type PhotoServiceInterface interface {
	DestinationImages(ctx context.Context, destination string) []string
	DestinationImage(ctx context.Context, location, title string) response_models.DestinationImage
}

type PhotoService struct {
	photos pipeline.PhotoSearcher
	count  int
	log    *zap.Logger
}

func NewPhotoService(photos pipeline.PhotoSearcher, cfg *config.Config, log *zap.Logger) PhotoServiceInterface {
	return &PhotoService{photos: photos, count: cfg.Photos.DestinationCount, log: log}
}

// DestinationImages returns up to the configured number of photo URLs and an
// empty list on any failure.
func (s *PhotoService) DestinationImages(ctx context.Context, destination string) []string {
	urls := []string{}
	if s.count == 0 {
		return urls
	}
	photos, err := s.photos.SearchPhotos(ctx, destination, s.count)
	if err != nil {
		s.log.Warn("destination images unavailable", zap.String("destination", destination), zap.Error(err))
		return urls
	}
	for _, p := range photos {
		urls = append(urls, p.URL)
	}
	return urls
}

// DestinationImage tries "<location> travel destination", then the city part
// of the location, then the placeholder.
func (s *PhotoService) DestinationImage(ctx context.Context, location, title string) response_models.DestinationImage {
	alt := location
	if title != "" {
		alt = title + " - " + location
	}

	queries := []string{location + " travel destination"}
	if city := strings.TrimSpace(strings.Split(location, ",")[0]); city != "" && city != location {
		queries = append(queries, city)
	}

	for _, q := range queries {
		photos, err := s.photos.SearchPhotos(ctx, q, 1)
		if err != nil {
			s.log.Warn("image search failed", zap.String("query", q), zap.Error(err))
			continue
		}
		if len(photos) > 0 {
			if photos[0].Alt != "" {
				alt = photos[0].Alt
			}
			return response_models.DestinationImage{ImageURL: photos[0].URL, Alt: alt}
		}
	}
	return response_models.DestinationImage{ImageURL: PlaceholderImageURL(location), Alt: alt}
}
