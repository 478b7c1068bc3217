package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func venues(prefix string, n int) []CandidateVenue {
	out := make([]CandidateVenue, n)
	for i := range out {
		out[i] = CandidateVenue{ID: fmt.Sprintf("%s-%d", prefix, i), Name: fmt.Sprintf("%s %d", prefix, i)}
	}
	return out
}

func TestFilterContext(t *testing.T) {
	dc := DestinationContext{
		Destination: "Bali",
		Attractions: venues("Attraction", 20),
		Restaurants: venues("Restaurant", 15),
		Housing: Housing{
			Hotels:  venues("Hotel", 10),
			Resorts: venues("Resort", 8),
			Villas:  venues("Villa", 8),
		},
	}

	tests := []struct {
		party      int
		travelType string
		hotels     int
		villas     int
		resorts    int
	}{
		{party: 1, travelType: "relaxation", hotels: 5, villas: 0, resorts: 5},
		{party: 3, travelType: "trekking", hotels: 5, villas: 0, resorts: 2},
		{party: 4, travelType: "honeymoon", hotels: 5, villas: 3, resorts: 5},
		{party: 6, travelType: "educational", hotels: 5, villas: 3, resorts: 2},
		{party: 7, travelType: "exploring cultural heritage", hotels: 3, villas: 5, resorts: 2},
		{party: 12, travelType: "relaxation", hotels: 3, villas: 5, resorts: 5},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%s", tt.party, tt.travelType), func(t *testing.T) {
			fc := FilterContext(dc, tt.party, tt.travelType)
			assert.Len(t, fc.Housing.Hotels, tt.hotels)
			assert.Len(t, fc.Housing.Villas, tt.villas)
			assert.Len(t, fc.Housing.Resorts, tt.resorts)
			assert.Len(t, fc.Attractions, 20)
			assert.Equal(t, "Hotel 0", fc.Housing.Hotels[0].Name)
		})
	}
}

func TestFilterContext_FewerCandidatesThanCaps(t *testing.T) {
	fc := FilterContext(DestinationContext{Housing: Housing{Hotels: venues("Hotel", 2)}}, 8, "relaxation")
	assert.Len(t, fc.Housing.Hotels, 2)
	assert.NotNil(t, fc.Housing.Villas)
	assert.Empty(t, fc.Housing.Villas)
	assert.NotNil(t, fc.Attractions)
}

type fakeGeocoder struct {
	coords Coordinates
	err    error
	calls  int
}

func (g *fakeGeocoder) Geocode(_ context.Context, _ string) (Coordinates, error) {
	g.calls++
	return g.coords, g.err
}

type fakePlaces struct {
	mu      sync.Mutex
	fail    map[string]bool
	calls   []string
	origins []Coordinates
}

func (p *fakePlaces) SearchNearby(_ context.Context, at Coordinates, categories string, limit, _ int) ([]CandidateVenue, error) {
	p.mu.Lock()
	p.calls = append(p.calls, categories)
	p.origins = append(p.origins, at)
	p.mu.Unlock()
	if p.fail[categories] {
		return nil, errors.New("upstream 503")
	}
	return venues(categories, limit), nil
}

func TestContextFetcher_Fetch(t *testing.T) {
	geo := &fakeGeocoder{coords: Coordinates{Lat: 15.3, Lng: 74.1}}
	places := &fakePlaces{fail: map[string]bool{"19013": true}}
	fetcher := NewContextFetcher(geo, places, zap.NewNop())

	dc := fetcher.Fetch(context.Background(), "Goa", "trekking")

	assert.Len(t, places.calls, 5)
	assert.ElementsMatch(t, []string{"16000,18000", "13000", "19014", "19013", "19012"}, places.calls)
	assert.Len(t, dc.Attractions, 20)
	assert.Len(t, dc.Restaurants, 15)
	assert.Len(t, dc.Housing.Hotels, 10)
	assert.NotNil(t, dc.Housing.Resorts)
	assert.Empty(t, dc.Housing.Resorts)
	assert.Len(t, dc.Housing.Villas, 8)
	assert.Equal(t, Coordinates{Lat: 15.3, Lng: 74.1}, dc.Coordinates)
}

func TestContextFetcher_GeocodeFailureFallsBackToOrigin(t *testing.T) {
	geo := &fakeGeocoder{coords: Coordinates{Lat: 1, Lng: 1}, err: errors.New("timeout")}
	places := &fakePlaces{}
	fetcher := NewContextFetcher(geo, places, nil)

	dc := fetcher.Fetch(context.Background(), "Atlantis", "unknown")

	assert.True(t, dc.Coordinates.IsZero())
	require.Len(t, places.origins, 5)
	for _, at := range places.origins {
		assert.True(t, at.IsZero())
	}
	assert.Contains(t, places.calls, defaultAttractionCategories)
}
