package pipeline

var fallbackTrips = map[string][]Trip{
	"Relaxation": {
		{Title: "Serene Maldives Overwater Villa Escape", Location: "Malé, Maldives"},
		{Title: "Bali Wellness Retreat & Spa Paradise", Location: "Ubud, Indonesia"},
		{Title: "Santorini Sunset Luxury Resort", Location: "Oia, Greece"},
		{Title: "Costa Rica Rainforest Wellness Lodge", Location: "Manuel Antonio, Costa Rica"},
		{Title: "Swiss Alps Thermal Spa Resort", Location: "St. Moritz, Switzerland"},
		{Title: "Seychelles Private Island Getaway", Location: "Praslin, Seychelles"},
		{Title: "Tuscany Countryside Villa Retreat", Location: "Chianti, Italy"},
		{Title: "Fiji Coral Coast Beach Resort", Location: "Coral Coast, Fiji"},
	},
	"Trekking": {
		{Title: "Everest Base Camp Ultimate Adventure", Location: "Khumbu, Nepal"},
		{Title: "Inca Trail to Machu Picchu Trek", Location: "Cusco, Peru"},
		{Title: "Kilimanjaro Summit Challenge", Location: "Moshi, Tanzania"},
		{Title: "Patagonia Torres del Paine Circuit", Location: "Puerto Natales, Chile"},
		{Title: "Mont Blanc Alpine Crossing", Location: "Chamonix, France"},
		{Title: "Annapurna Circuit Himalayan Trek", Location: "Pokhara, Nepal"},
		{Title: "GR20 Corsica Mountain Adventure", Location: "Corsica, France"},
		{Title: "Milford Track New Zealand Wilderness", Location: "Fiordland, New Zealand"},
	},
	"Exploring Cultural Heritage": {
		{Title: "Ancient Rome & Vatican Treasures", Location: "Rome, Italy"},
		{Title: "Egyptian Pyramids & Nile Journey", Location: "Cairo, Egypt"},
		{Title: "Angkor Wat Temple Complex Discovery", Location: "Siem Reap, Cambodia"},
		{Title: "Great Wall of China Historical Walk", Location: "Beijing, China"},
		{Title: "Petra Rose City Archaeological Wonder", Location: "Wadi Musa, Jordan"},
		{Title: "Kyoto Traditional Temples & Gardens", Location: "Kyoto, Japan"},
		{Title: "Machu Picchu Ancient Inca Citadel", Location: "Cusco, Peru"},
		{Title: "Istanbul Byzantine & Ottoman Heritage", Location: "Istanbul, Turkey"},
	},
	"Educational": {
		{Title: "Galápagos Evolution & Wildlife Study", Location: "Galápagos Islands, Ecuador"},
		{Title: "CERN Particle Physics Discovery Tour", Location: "Geneva, Switzerland"},
		{Title: "NASA Space Center Exploration", Location: "Houston, USA"},
		{Title: "Amazon Rainforest Biodiversity Research", Location: "Manaus, Brazil"},
		{Title: "Archaeological Dig Experience Greece", Location: "Athens, Greece"},
		{Title: "Marine Biology Great Barrier Reef", Location: "Cairns, Australia"},
		{Title: "Astronomy Observatory Atacama Desert", Location: "San Pedro de Atacama, Chile"},
		{Title: "Renewable Energy Innovation Tour", Location: "Copenhagen, Denmark"},
	},
	"Honeymoon": {
		{Title: "Maldives Romantic Overwater Bungalow", Location: "Malé, Maldives"},
		{Title: "Paris City of Love & Romance", Location: "Paris, France"},
		{Title: "Santorini Sunset Honeymoon Suite", Location: "Oia, Greece"},
		{Title: "Bali Couples Spa & Beach Resort", Location: "Seminyak, Indonesia"},
		{Title: "Seychelles Private Island Romance", Location: "La Digue, Seychelles"},
		{Title: "Tuscany Wine Country Romantic Escape", Location: "Chianti, Italy"},
		{Title: "Bora Bora Lagoon Luxury Resort", Location: "Bora Bora, French Polynesia"},
		{Title: "Kyoto Traditional Ryokan Experience", Location: "Kyoto, Japan"},
	},
}

// FallbackTrips returns up to count catalog trips for a travel mode. Unknown
// modes get the Relaxation catalog.
func FallbackTrips(mode string, count int) []Trip {
	trips, ok := fallbackTrips[mode]
	if !ok {
		trips = fallbackTrips["Relaxation"]
	}
	if count >= 0 && len(trips) > count {
		trips = trips[:count]
	}
	out := make([]Trip, len(trips))
	copy(out, trips)
	return out
}
