package pipeline

import (
	"fmt"
	"strconv"
	"strings"
)

// VenueSeparator joins venue names inside prompts.
const VenueSeparator = ", "

func venueNames(venues []CandidateVenue) string {
	names := make([]string, 0, len(venues))
	for _, v := range venues {
		if name := strings.TrimSpace(v.Name); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, VenueSeparator)
}

func formatBudget(b float64) string {
	return strconv.FormatFloat(b, 'f', -1, 64)
}

// HousingLines renders one line per non-empty housing group.
func HousingLines(h Housing) []string {
	var lines []string
	if len(h.Hotels) > 0 {
		lines = append(lines, "Hotels: "+venueNames(h.Hotels))
	}
	if len(h.Resorts) > 0 {
		lines = append(lines, "Resorts: "+venueNames(h.Resorts))
	}
	if len(h.Villas) > 0 {
		lines = append(lines, "Villas: "+venueNames(h.Villas))
	}
	return lines
}

func ItineraryPrompt(req ItineraryRequest, fc FilteredContext) string {
	budget := formatBudget(req.Budget)

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed %d-day travel itinerary for %d people visiting %s with a total budget of $%s.\n\n",
		req.NumberOfDays, req.NumberOfPeople, req.Destination, budget)
	fmt.Fprintf(&b, "Travel Type: %s\n", req.TravelType)
	fmt.Fprintf(&b, "Budget Constraint: $%s total for %d people\n\n", budget, req.NumberOfPeople)

	b.WriteString("Available Accommodations:\n")
	b.WriteString(strings.Join(HousingLines(fc.Housing), "\n"))
	b.WriteString("\n\nPopular Attractions:\n")
	b.WriteString(venueNames(fc.Attractions))
	b.WriteString("\n\nDining Options:\n")
	b.WriteString(venueNames(fc.Restaurants))

	b.WriteString(`

Please create a day-by-day itinerary with the following format:
- Day X (Date)
  - Morning (9:00 AM - 12:00 PM): Activity with specific location
  - Afternoon (12:00 PM - 5:00 PM): Activity with specific location
  - Evening (5:00 PM - 9:00 PM): Activity with specific location
  - Night: Rest/accommodation suggestion

Include:
1. Specific time slots for each activity
2. Recommended accommodation from the provided list
3. Meal suggestions with restaurant names
4. Rest periods
5. Travel time between locations
`)
	fmt.Fprintf(&b, "6. Activities that match the travel type: %s\n\n", req.TravelType)
	fmt.Fprintf(&b, "Make it engaging and practical for %d people.\n", req.NumberOfPeople)
	fmt.Fprintf(&b, "Make sure all recommendations fit within the $%s budget constraint.\n", budget)
	return b.String()
}

func PopularSpotsPrompt(req SpotRequest) string {
	spot, loc := req.SpotType, req.Location
	parts := []string{
		fmt.Sprintf("You are a travel expert AI assistant. Find the most popular %s in %s based on the following criteria:", spot, loc),
		"",
		fmt.Sprintf("1. ONLY include places that are specifically %s", spot),
		fmt.Sprintf("2. ONLY include places located in %s", loc),
		"3. ONLY include places with high Google ratings (4.0+ stars) and many reviews (100+ reviews)",
		"4. Focus on the most popular and well-reviewed establishments",
		"",
		"For each spot, provide the following information in JSON format:",
		"- name: The exact name of the establishment",
		"- rating: Google rating (out of 5)",
		"- reviewCount: Approximate number of Google reviews",
		"- address: Full address if available",
		"- description: Brief description of what makes it popular (2-3 sentences max)",
		"- priceLevel: Price range (Budget/Moderate/Expensive/Luxury) if applicable",
		"- googleUrl: Generate a Google search URL for this specific place using the format: https://www.google.com/search?q=PLACE_NAME+LOCATION (URL encode the query)",
		"",
		fmt.Sprintf("Return ONLY a valid JSON array with maximum %d spots. If no popular %s are found in %s, return an empty array [].", MaxPopularSpots, spot, loc),
		"",
		"Example format:",
		`[
  {
    "name": "Example Place Name",
    "rating": 4.5,
    "reviewCount": "2,500+",
    "address": "123 Example Street, City",
    "description": "Popular local spot known for excellent food and atmosphere.",
    "priceLevel": "Moderate",
    "googleUrl": "https://www.google.com/search?q=Example+Place+Name+City+Location"
  }
]`,
		"",
		"IMPORTANT:",
		"- Return ONLY the JSON array, no additional text",
		fmt.Sprintf("- Ensure all spots are actually %s and located in %s", spot, loc),
		"- Focus on places with genuine high ratings and review counts",
		"- Make sure to include the googleUrl field for each spot with proper URL encoding",
		"- If you're not confident about a place's popularity or location, don't include it",
	}
	return strings.Join(parts, "\n")
}

func HiddenGemsPrompt(req SpotRequest) string {
	spot, loc := req.SpotType, req.Location
	lower := strings.ToLower(spot)
	parts := []string{
		"You are a local travel expert specializing in discovering hidden gems and niche spots.",
		"",
		fmt.Sprintf("TASK: Find hidden/niche %s in %s that meet these STRICT criteria:", spot, loc),
		"1. Have LESS than 200 Google reviews",
		"2. Have good Google ratings",
		`3. Could also be mentioned as "hidden spots", "local secrets", "less crowded", or "off the beaten path" (not necessary but helpful)`,
		"4. Could have mentions on niche platforms like Reddit, Quora (not necessary but helpful)",
		"5. Are genuinely lesser-known compared to mainstream tourist spots",
		"",
		"IMPORTANT REQUIREMENTS:",
		fmt.Sprintf("- Only suggest REAL places that exist in %s", loc),
		fmt.Sprintf("- Focus on authentic, lesser-known %s", lower),
		"- Prioritize places locals recommend but tourists rarely visit",
		`- Each place must have fewer than 200 reviews to qualify as "hidden"`,
		"",
		fmt.Sprintf("Please provide EXACTLY 6-%d hidden gems (if available) in this JSON format:", MaxHiddenGems),
		fmt.Sprintf(`{
  "spots": [
    {
      "name": "Exact name of the place",
      "description": "Brief description highlighting what makes it special and hidden",
      "address": "Specific address or area in %s",
      "rating": "4.2",
      "reviewCount": "87",
      "hiddenReason": "Why this place is considered hidden (e.g., 'Local favorite mentioned on Reddit', 'Hidden gem with only 50 reviews')",
      "bestTime": "Best time to visit to avoid crowds"
    }
  ]
}`, loc),
		"",
		fmt.Sprintf("If you cannot find any genuine hidden %s in %s that meet the criteria (especially the <200 reviews requirement), return:", lower, loc),
		fmt.Sprintf(`{
  "spots": [],
  "message": "No hidden %s found in %s matching the criteria"
}`, lower, loc),
	}
	return strings.Join(parts, "\n")
}

func RecommendationPrompt(travelMode string, count int) string {
	lower := strings.ToLower(travelMode)
	parts := []string{
		fmt.Sprintf(`Generate exactly %d unique travel trips for "%s" travel mode.`, count, travelMode),
		fmt.Sprintf("Each trip should be from a different country and specifically cater to %s preferences.", lower),
		"",
		"Return the response in this exact JSON format:",
		fmt.Sprintf(`{
  "trips": [
    {
      "title": "A trip title (max 60 characters)",
      "location": "City, Country",
      "description": "Brief description of why this trip is perfect for %s"
    }
  ]
}`, lower),
		"",
		"Requirements:",
		fmt.Sprintf("- All %d trips must be from different countries", count),
		"- Titles should be catchy and engaging",
		fmt.Sprintf("- Each trip should be specifically relevant to %s travel", lower),
		"- Focus on real, accessible destinations",
		"- Vary the geographical regions (Europe, Asia, Americas, Africa, Oceania)",
		"",
		"Travel mode context:",
		"- Relaxation: Spa resorts, beaches, peaceful retreats, wellness destinations",
		"- Trekking: Mountain trails, hiking adventures, nature walks, outdoor expeditions",
		"- Exploring Cultural Heritage: Historical sites, museums, ancient monuments, cultural experiences",
		"- Educational: Learning experiences, workshops, scientific sites, educational tours",
		"- Honeymoon: Romantic destinations, couple activities, luxury experiences, intimate settings",
	}
	return strings.Join(parts, "\n")
}

func AdvisoryPrompt(nationality, destinationCountry string) string {
	parts := []string{
		fmt.Sprintf("Find the official government travel advisory website URL for %s citizens traveling to %s.", nationality, destinationCountry),
		fmt.Sprintf("Please provide ONLY the official government website URL (like foreign ministry, embassy, or official government travel advisory site) that shows travel advisories for %s citizens visiting %s.", nationality, destinationCountry),
		"Do not provide any explanation, just the direct URL. The URL should be the official government source for travel advisories.",
		"",
		"Examples of what I'm looking for:",
		"- For US citizens: state.gov travel advisories",
		"- For UK citizens: gov.uk travel advice",
		"- For Canadian citizens: travel.gc.ca",
		"- For Australian citizens: smartraveller.gov.au",
		"",
		"Return ONLY the URL, nothing else.",
	}
	return strings.Join(parts, "\n")
}
