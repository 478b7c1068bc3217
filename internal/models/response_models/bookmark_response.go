package response_models

import (
	"time"

	"ezyvoyage/internal/models/db_models"
)

type BookmarkResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	TravelMode   string    `json:"travelMode"`
	BookmarkedAt time.Time `json:"bookmarkedAt"`
}

func NewBookmarkResponse(b db_models.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:           b.ID.String(),
		Title:        b.Title,
		Location:     b.Location,
		Description:  b.Description,
		TravelMode:   b.TravelMode,
		BookmarkedAt: time.Unix(b.BookmarkedAt, 0).UTC(),
	}
}

func NewBookmarkResponses(list []db_models.Bookmark) []BookmarkResponse {
	out := make([]BookmarkResponse, 0, len(list))
	for _, b := range list {
		out = append(out, NewBookmarkResponse(b))
	}
	return out
}

type RemovedTrip struct {
	Title    string `json:"title"`
	Location string `json:"location"`
}

// SimilarBookmark is a bookmark with its cosine similarity to the query.
type SimilarBookmark struct {
	BookmarkResponse
	Similarity float64 `json:"similarity"`
}
