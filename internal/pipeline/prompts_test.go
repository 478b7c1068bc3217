package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItineraryPrompt_EmbedsEveryConstraint(t *testing.T) {
	req := ItineraryRequest{
		Destination:    "Goa, India",
		TravelType:     "relaxation",
		NumberOfPeople: 4,
		NumberOfDays:   3,
		Budget:         1250.5,
	}
	fc := FilterContext(DestinationContext{
		Attractions: []CandidateVenue{{Name: "Baga Beach"}, {Name: "Fort Aguada"}},
		Restaurants: []CandidateVenue{{Name: "Gunpowder"}},
		Housing: Housing{
			Hotels:  []CandidateVenue{{Name: "Taj Exotica"}},
			Resorts: []CandidateVenue{{Name: "W Goa"}},
			Villas:  []CandidateVenue{{Name: "Villa Alva"}, {Name: "Casa Anjuna"}},
		},
	}, req.NumberOfPeople, req.TravelType)

	prompt := ItineraryPrompt(req, fc)

	for _, want := range []string{
		"3-day travel itinerary for 4 people visiting Goa, India",
		"total budget of $1250.5",
		"Travel Type: relaxation",
		"Hotels: Taj Exotica",
		"Resorts: W Goa",
		"Villas: Villa Alva, Casa Anjuna",
		"Baga Beach, Fort Aguada",
		"Gunpowder",
		"fit within the $1250.5 budget constraint",
	} {
		assert.Contains(t, prompt, want)
	}
}

func TestItineraryPrompt_OmitsEmptyHousingGroups(t *testing.T) {
	req := ItineraryRequest{Destination: "Leh", TravelType: "trekking", NumberOfPeople: 2, NumberOfDays: 5, Budget: 800}
	fc := FilterContext(DestinationContext{Housing: Housing{Villas: []CandidateVenue{{Name: "Ignored Villa"}}}}, 2, "trekking")

	prompt := ItineraryPrompt(req, fc)

	assert.NotContains(t, prompt, "Villas:")
	assert.NotContains(t, prompt, "Ignored Villa")
	assert.Contains(t, prompt, "$800 total for 2 people")
}

func TestSpotPrompts(t *testing.T) {
	req := SpotRequest{Location: "Mumbai, India", SpotType: "Beaches"}

	popular := PopularSpotsPrompt(req)
	assert.Contains(t, popular, "most popular Beaches in Mumbai, India")
	assert.Contains(t, popular, "maximum 12 spots")

	gems := HiddenGemsPrompt(req)
	assert.Contains(t, gems, "hidden/niche Beaches in Mumbai, India")
	assert.Contains(t, gems, "No hidden beaches found in Mumbai, India matching the criteria")
	assert.Contains(t, gems, "6-9 hidden gems")
}

func TestRecommendationPrompt(t *testing.T) {
	prompt := RecommendationPrompt("Exploring Cultural Heritage", 8)
	assert.True(t, strings.HasPrefix(prompt, `Generate exactly 8 unique travel trips for "Exploring Cultural Heritage" travel mode.`))
	assert.Contains(t, prompt, "All 8 trips must be from different countries")
	assert.Contains(t, prompt, "perfect for exploring cultural heritage")
}

func TestAdvisoryPrompt(t *testing.T) {
	prompt := AdvisoryPrompt("Indian", "Japan")
	assert.Contains(t, prompt, "for Indian citizens traveling to Japan")
	assert.Contains(t, prompt, "Return ONLY the URL")
}
