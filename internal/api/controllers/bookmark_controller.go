package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"ezyvoyage/internal/models/request_models"
	"ezyvoyage/internal/models/response_models"
	"ezyvoyage/internal/services"
	"ezyvoyage/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BookmarkController struct {
	bookmarks services.BookmarkServiceInterface
}

func NewBookmarkController(bookmarks services.BookmarkServiceInterface) *BookmarkController {
	return &BookmarkController{bookmarks: bookmarks}
}

func (b *BookmarkController) Add(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.AddBookmarkRequest
	if !bindJSON(c, &req) {
		return
	}

	bookmark, err := b.bookmarks.Add(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, gin.H{
		"message":        "Trip bookmarked successfully",
		"bookmarkedTrip": bookmark,
	})
}

func (b *BookmarkController) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	trips, err := b.bookmarks.List(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"bookmarkedTrips": trips,
		"totalCount":      len(trips),
		"message":         "Bookmarked trips retrieved successfully",
	})
}

func (b *BookmarkController) Remove(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.RemoveBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title and location are required")
		return
	}

	remaining, err := b.bookmarks.Remove(c.Request.Context(), userID, req.Title, req.Location)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"message":            "Trip removed from bookmarks successfully",
		"removedTrip":        response_models.RemovedTrip{Title: req.Title, Location: req.Location},
		"remainingBookmarks": remaining,
	})
}

func (b *BookmarkController) Clear(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	cleared, err := b.bookmarks.Clear(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"message":      fmt.Sprintf("All %d bookmarks cleared successfully", cleared),
		"clearedCount": cleared,
	})
}

func (b *BookmarkController) GroupByMode(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	grouped, total, err := b.bookmarks.GroupByMode(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"groupedBookmarks": grouped,
		"totalCount":       total,
		"message":          "Bookmarked trips grouped by travel mode retrieved successfully",
	})
}

// Similar ranks the user's other bookmarks by embedding distance to the given
// trip.
func (b *BookmarkController) Similar(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	title := strings.TrimSpace(c.Query("title"))
	location := strings.TrimSpace(c.Query("location"))

	similar, err := b.bookmarks.Similar(c.Request.Context(), userID, title, location)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"similarTrips": similar,
		"count":        len(similar),
	})
}
