package pipeline

import (
	"math"
	"strings"
)

const MinLocationLength = 2

var ItineraryTravelTypes = []string{
	"relaxation",
	"exploring cultural heritage",
	"trekking",
	"educational",
	"honeymoon",
}

var PopularSpotTypes = []string{
	"Clubs and Nightlife",
	"Sports Stadiums",
	"Trendy Bars",
	"Local Restaurants",
	"Promenades",
	"Shopping Streets and Malls",
	"Forts and Monuments",
	"Beaches",
}

var HiddenGemSpotTypes = []string{
	"Clubs and Nightlife",
	"Sports Stadiums",
	"Local Restobars",
	"Promenades",
	"Shopping Streets and Malls",
	"Forts and Monuments",
	"Beaches",
}

// TravelModes is ordered; recommendations walk it in this order.
var TravelModes = []string{
	"Relaxation",
	"Trekking",
	"Exploring Cultural Heritage",
	"Educational",
	"Honeymoon",
}

// ItineraryInput is the raw itinerary request as decoded from JSON.
type ItineraryInput struct {
	Destination    string
	TravelType     string
	NumberOfPeople FlexNumber
	NumberOfDays   FlexNumber
	Budget         FlexNumber
}

type ItineraryRequest struct {
	Destination    string
	TravelType     string
	NumberOfPeople int
	NumberOfDays   int
	Budget         float64
}

type SpotRequest struct {
	Location string
	SpotType string
}

func NormalizeItinerary(in ItineraryInput) (ItineraryRequest, error) {
	destination, err := normalizeLocation("destination", in.Destination)
	if err != nil {
		return ItineraryRequest{}, err
	}

	travelType, ok := matchEnum(ItineraryTravelTypes, in.TravelType)
	if !ok {
		return ItineraryRequest{}, NewValidationError("travelType", "Invalid travel type selected")
	}

	people, err := positiveInt("numberOfPeople", in.NumberOfPeople)
	if err != nil {
		return ItineraryRequest{}, err
	}
	days, err := positiveInt("numberOfDays", in.NumberOfDays)
	if err != nil {
		return ItineraryRequest{}, err
	}
	budget, err := positiveNumber("budget", in.Budget)
	if err != nil {
		return ItineraryRequest{}, err
	}

	return ItineraryRequest{
		Destination:    destination,
		TravelType:     strings.ToLower(travelType),
		NumberOfPeople: people,
		NumberOfDays:   days,
		Budget:         budget,
	}, nil
}

func NormalizePopularSpots(location, spotType string) (SpotRequest, error) {
	return normalizeSpot(PopularSpotTypes, location, spotType)
}

func NormalizeHiddenGems(location, spotType string) (SpotRequest, error) {
	return normalizeSpot(HiddenGemSpotTypes, location, spotType)
}

// NormalizeTravelMode returns the canonical spelling of a travel mode.
func NormalizeTravelMode(mode string) (string, error) {
	canonical, ok := matchEnum(TravelModes, mode)
	if !ok {
		return "", NewValidationError("travelMode", "Invalid travel mode. Please select a valid option.")
	}
	return canonical, nil
}

func IsTravelMode(mode string) bool {
	_, ok := matchEnum(TravelModes, mode)
	return ok
}

func normalizeSpot(allowed []string, location, spotType string) (SpotRequest, error) {
	loc, err := normalizeLocation("location", location)
	if err != nil {
		return SpotRequest{}, err
	}
	canonical, ok := matchEnum(allowed, spotType)
	if !ok {
		return SpotRequest{}, NewValidationError("spotType", "Invalid spot type selected")
	}
	return SpotRequest{Location: loc, SpotType: canonical}, nil
}

func normalizeLocation(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if len([]rune(v)) < MinLocationLength {
		return "", NewValidationError(field, "Please provide a valid location")
	}
	return v, nil
}

// matchEnum compares case-insensitively and returns the enum's own spelling.
func matchEnum(allowed []string, value string) (string, bool) {
	v := strings.Join(strings.Fields(value), " ")
	if v == "" {
		return "", false
	}
	for _, a := range allowed {
		if strings.EqualFold(a, v) {
			return a, true
		}
	}
	return "", false
}

func positiveNumber(field string, n FlexNumber) (float64, error) {
	if !n.Present {
		return 0, NewValidationError(field, "is required")
	}
	if !n.Valid || math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
		return 0, NewValidationError(field, "must be a number")
	}
	if n.Value <= 0 {
		return 0, NewValidationError(field, "must be greater than 0")
	}
	return n.Value, nil
}

func positiveInt(field string, n FlexNumber) (int, error) {
	v, err := positiveNumber(field, n)
	if err != nil {
		return 0, err
	}
	i := int(math.Trunc(v))
	if i < 1 {
		return 0, NewValidationError(field, "must be a whole number of at least 1")
	}
	return i, nil
}
