package pipeline

import (
	"bytes"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

const (
	MaxPopularSpots = 12
	MaxHiddenGems   = 9

	UnknownPlace          = "Unknown Place"
	DefaultReviewCount    = "N/A"
	DefaultGemDescription = "A hidden gem waiting to be discovered"
	DefaultHiddenReason   = "Local hidden spot"
	DefaultBestTime       = "Anytime"

	googleSearchPrefix = "https://www.google.com/search?q="
)

// RawPopularSpot is one array element as the model produced it.
type RawPopularSpot struct {
	Name        FlexString `json:"name"`
	Rating      FlexFloat  `json:"rating"`
	ReviewCount FlexString `json:"reviewCount"`
	Address     FlexString `json:"address"`
	Description FlexString `json:"description"`
	PriceLevel  FlexString `json:"priceLevel"`
	GoogleURL   FlexString `json:"googleUrl"`
}

type PopularSpot struct {
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReviewCount string  `json:"reviewCount"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	PriceLevel  string  `json:"priceLevel"`
	GoogleURL   string  `json:"googleUrl"`
}

type RawHiddenGem struct {
	Name         FlexString      `json:"name"`
	Description  FlexString      `json:"description"`
	Address      FlexString      `json:"address"`
	Rating       json.RawMessage `json:"rating"`
	ReviewCount  json.RawMessage `json:"reviewCount"`
	HiddenReason FlexString      `json:"hiddenReason"`
	BestTime     FlexString      `json:"bestTime"`
}

// RawHiddenGems is the object the hidden gems prompt asks for.
type RawHiddenGems struct {
	Spots   []RawHiddenGem `json:"spots"`
	Message FlexString     `json:"message"`
}

// HiddenGem passes rating and reviewCount through as the model wrote them,
// number or string; both are null when missing, empty or zero.
type HiddenGem struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Address      string          `json:"address"`
	Rating       json.RawMessage `json:"rating"`
	ReviewCount  json.RawMessage `json:"reviewCount"`
	HiddenReason string          `json:"hiddenReason"`
	BestTime     string          `json:"bestTime"`
}

type RawTrip struct {
	Title       FlexString `json:"title"`
	Location    FlexString `json:"location"`
	Description FlexString `json:"description"`
}

type RawTrips struct {
	Trips []RawTrip `json:"trips"`
}

type Trip struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
}

func GoogleSearchURL(name, location string) string {
	return googleSearchPrefix + url.QueryEscape(name+" "+location)
}

// FormatPopularSpots fills defaults and drops spots with a placeholder name
// or a non-positive rating. Only the first MaxPopularSpots are considered.
func FormatPopularSpots(raw []RawPopularSpot, location string) []PopularSpot {
	if len(raw) > MaxPopularSpots {
		raw = raw[:MaxPopularSpots]
	}
	out := make([]PopularSpot, 0, len(raw))
	for _, r := range raw {
		spot := PopularSpot{
			Name:        orDefault(r.Name.Text(), UnknownPlace),
			ReviewCount: orDefault(reviewCountText(r.ReviewCount), DefaultReviewCount),
			Address:     r.Address.Text(),
			Description: r.Description.Text(),
			PriceLevel:  r.PriceLevel.Text(),
			GoogleURL:   r.GoogleURL.Text(),
		}
		if r.Rating.Valid {
			spot.Rating = r.Rating.Value
		}
		if !strings.HasPrefix(spot.GoogleURL, googleSearchPrefix) {
			spot.GoogleURL = GoogleSearchURL(spot.Name, location)
		}
		if spot.Name == UnknownPlace || spot.Rating <= 0 {
			continue
		}
		out = append(out, spot)
	}
	return out
}

// FormatHiddenGems fills defaults without dropping anything.
func FormatHiddenGems(raw []RawHiddenGem, location string) []HiddenGem {
	if len(raw) > MaxHiddenGems {
		raw = raw[:MaxHiddenGems]
	}
	out := make([]HiddenGem, 0, len(raw))
	for _, r := range raw {
		out = append(out, HiddenGem{
			Name:         orDefault(r.Name.Text(), UnknownPlace),
			Description:  orDefault(r.Description.Text(), DefaultGemDescription),
			Address:      orDefault(r.Address.Text(), location),
			Rating:       optionalScalar(r.Rating),
			ReviewCount:  optionalScalar(r.ReviewCount),
			HiddenReason: orDefault(r.HiddenReason.Text(), DefaultHiddenReason),
			BestTime:     orDefault(r.BestTime.Text(), DefaultBestTime),
		})
	}
	return out
}

// FormatTrips keeps the first count trips that carry both a title and a
// location.
func FormatTrips(raw []RawTrip, count int) []Trip {
	if count >= 0 && len(raw) > count {
		raw = raw[:count]
	}
	out := make([]Trip, 0, len(raw))
	for _, r := range raw {
		title, location := r.Title.Text(), r.Location.Text()
		if title == "" || location == "" {
			continue
		}
		out = append(out, Trip{Title: title, Location: location, Description: r.Description.Text()})
	}
	return out
}

// EmptySpotsMessage is reported alongside an empty spot list.
func EmptySpotsMessage(spotType, location string) string {
	return fmt.Sprintf("No %s found in %s", spotType, location)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// optionalScalar drops null, false, 0 and "" and keeps any other value
// unchanged.
func optionalScalar(raw json.RawMessage) json.RawMessage {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 {
		return nil
	}
	switch v[0] {
	case 'n', 'f':
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil || s == "" {
			return nil
		}
	case '{', '[', 't':
	default:
		if f, err := strconv.ParseFloat(string(v), 64); err != nil || f == 0 {
			return nil
		}
	}
	return append(json.RawMessage(nil), v...)
}

// reviewCountText renders a numeric review count without a trailing ".0".
func reviewCountText(s FlexString) string {
	v := s.Text()
	if v == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		if f == 0 {
			return ""
		}
		if f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10)
		}
	}
	return v
}
