package pipeline

import "context"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c Coordinates) IsZero() bool { return c.Lat == 0 && c.Lng == 0 }

// CandidateVenue is a place returned by the nearby search. It only lives long
// enough to be named in a prompt.
type CandidateVenue struct {
	ID          string
	Name        string
	Category    string
	Coordinates Coordinates
	Rating      float64
	ReviewCount int
	Address     string
}

type Housing struct {
	Hotels  []CandidateVenue
	Resorts []CandidateVenue
	Villas  []CandidateVenue
}

// DestinationContext is everything the fetcher gathered for one destination.
type DestinationContext struct {
	Destination string
	Coordinates Coordinates
	Attractions []CandidateVenue
	Restaurants []CandidateVenue
	Housing     Housing
}

// FilteredContext is the destination context after housing caps were applied.
type FilteredContext struct {
	Destination string
	Coordinates Coordinates
	Attractions []CandidateVenue
	Restaurants []CandidateVenue
	Housing     Housing
}

type Photo struct {
	URL string
	Alt string
}

// Completer is the generative completion adapter.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinates, error)
}

type PlaceSearcher interface {
	SearchNearby(ctx context.Context, at Coordinates, categories string, limit, radiusMeters int) ([]CandidateVenue, error)
}

type PhotoSearcher interface {
	SearchPhotos(ctx context.Context, query string, count int) ([]Photo, error)
}
