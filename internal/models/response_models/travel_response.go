package response_models

import "ezyvoyage/internal/pipeline"

type ItineraryData struct {
	Itinerary         string   `json:"itinerary"`
	Destination       string   `json:"destination"`
	NumberOfDays      int      `json:"numberOfDays"`
	NumberOfPeople    int      `json:"numberOfPeople"`
	TravelType        string   `json:"travelType"`
	DestinationImages []string `json:"destinationImages"`
}

type PopularSpotsResult struct {
	Spots    []pipeline.PopularSpot
	Location string
	SpotType string
}

type HiddenGemsResult struct {
	Spots    []pipeline.HiddenGem
	Location string
	SpotType string
	// Message is set when no spots were found.
	Message string
}

type Recommendations struct {
	UserTravelMode string                     `json:"userTravelMode"`
	FavoriteTrips  []pipeline.Trip            `json:"favoriteTrips"`
	OtherTrips     map[string][]pipeline.Trip `json:"otherTrips"`
}

type DestinationImage struct {
	ImageURL string `json:"imageUrl"`
	Alt      string `json:"alt"`
}

type AdvisoryData struct {
	AdvisoryURL        string `json:"advisoryUrl"`
	UserNationality    string `json:"userNationality"`
	DestinationCountry string `json:"destinationCountry"`
}
