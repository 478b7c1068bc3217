package pipeline

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SearchSpec is one category-scoped nearby search.
type SearchSpec struct {
	Name       string
	Categories string
	Limit      int
	Radius     int
}

var (
	RestaurantSearch = SearchSpec{Name: "restaurants", Categories: "13000", Limit: 15, Radius: 5000}
	HotelSearch      = SearchSpec{Name: "hotels", Categories: "19014", Limit: 10, Radius: 10000}
	ResortSearch     = SearchSpec{Name: "resorts", Categories: "19013", Limit: 8, Radius: 15000}
	VillaSearch      = SearchSpec{Name: "villas", Categories: "19012", Limit: 8, Radius: 15000}
)

var attractionCategories = map[string]string{
	"relaxation":                  "16000,17000",
	"exploring cultural heritage": "12000,10000",
	"trekking":                    "16000,18000",
	"educational":                 "12000,10000",
	"honeymoon":                   "16000,17000",
}

const defaultAttractionCategories = "16000,12000"

func AttractionSearch(travelType string) SearchSpec {
	categories, ok := attractionCategories[travelType]
	if !ok {
		categories = defaultAttractionCategories
	}
	return SearchSpec{Name: "attractions", Categories: categories, Limit: 20, Radius: 10000}
}

type ContextFetcher struct {
	geocoder Geocoder
	places   PlaceSearcher
	log      *zap.Logger
}

func NewContextFetcher(geocoder Geocoder, places PlaceSearcher, log *zap.Logger) *ContextFetcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContextFetcher{geocoder: geocoder, places: places, log: log}
}

// Fetch never fails: a geocoding failure falls back to (0,0) and every failed
// search branch contributes an empty list.
func (f *ContextFetcher) Fetch(ctx context.Context, destination, travelType string) DestinationContext {
	coords, err := f.geocoder.Geocode(ctx, destination)
	if err != nil {
		f.log.Warn("geocoding failed, using fallback coordinates",
			zap.String("destination", destination), zap.Error(err))
		coords = Coordinates{}
	}

	specs := []SearchSpec{AttractionSearch(travelType), RestaurantSearch, HotelSearch, ResortSearch, VillaSearch}
	results := make([][]CandidateVenue, len(specs))

	var g errgroup.Group
	for i, spec := range specs {
		g.Go(func() error {
			venues, err := f.places.SearchNearby(ctx, coords, spec.Categories, spec.Limit, spec.Radius)
			if err != nil {
				f.log.Warn("nearby search failed",
					zap.String("search", spec.Name), zap.String("destination", destination), zap.Error(err))
				venues = nil
			}
			results[i] = nonNil(venues)
			return nil
		})
	}
	_ = g.Wait()

	return DestinationContext{
		Destination: destination,
		Coordinates: coords,
		Attractions: results[0],
		Restaurants: results[1],
		Housing: Housing{
			Hotels:  results[2],
			Resorts: results[3],
			Villas:  results[4],
		},
	}
}

// FilterContext caps housing by party size and travel type. It truncates, it
// does not rank.
func FilterContext(dc DestinationContext, partySize int, travelType string) FilteredContext {
	var housing Housing

	switch {
	case partySize > 6:
		housing.Villas = firstN(dc.Housing.Villas, 5)
		housing.Hotels = firstN(dc.Housing.Hotels, 3)
	case partySize > 3:
		housing.Hotels = firstN(dc.Housing.Hotels, 5)
		housing.Villas = firstN(dc.Housing.Villas, 3)
	default:
		housing.Hotels = firstN(dc.Housing.Hotels, 5)
		housing.Villas = []CandidateVenue{}
	}

	if travelType == "relaxation" || travelType == "honeymoon" {
		housing.Resorts = firstN(dc.Housing.Resorts, 5)
	} else {
		housing.Resorts = firstN(dc.Housing.Resorts, 2)
	}

	return FilteredContext{
		Destination: dc.Destination,
		Coordinates: dc.Coordinates,
		Attractions: nonNil(dc.Attractions),
		Restaurants: nonNil(dc.Restaurants),
		Housing:     housing,
	}
}

func firstN(venues []CandidateVenue, n int) []CandidateVenue {
	if len(venues) > n {
		venues = venues[:n]
	}
	out := make([]CandidateVenue, len(venues))
	copy(out, venues)
	return out
}

func nonNil(venues []CandidateVenue) []CandidateVenue {
	if venues == nil {
		return []CandidateVenue{}
	}
	return venues
}
