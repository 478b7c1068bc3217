package controllers

import (
	"net/http"
	"strings"

	"ezyvoyage/internal/models/response_models"
	"ezyvoyage/internal/services"
	"ezyvoyage/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	recommendations services.RecommendationServiceInterface
	photos          services.PhotoServiceInterface
}

func NewRecommendationController(recommendations services.RecommendationServiceInterface, photos services.PhotoServiceInterface) *RecommendationController {
	return &RecommendationController{recommendations: recommendations, photos: photos}
}

// GetImage always answers with an image once a location is given, falling
// back to a placeholder URL.
func (r *RecommendationController) GetImage(c *gin.Context) {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		utils.RespondError(c, http.StatusBadRequest, "Location parameter is required")
		return
	}

	img := r.photos.DestinationImage(c.Request.Context(), location, c.Query("title"))
	utils.RespondJSON(c, http.StatusOK, gin.H{"imageUrl": img.ImageURL, "alt": img.Alt})
}

func (r *RecommendationController) GetRecommendations(c *gin.Context) {
	r.respond(c, "Recommendations generated successfully", "Failed to generate AI recommendations. Please try again later.")
}

func (r *RecommendationController) RefreshRecommendations(c *gin.Context) {
	r.respond(c, "Recommendations refreshed successfully", "Failed to refresh recommendations")
}

func (r *RecommendationController) respond(c *gin.Context, successMessage, failureMessage string) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	recs, err := r.recommendations.Recommendations(c.Request.Context(), userID)
	if err != nil {
		utils.HandlePipelineError(c, err, failureMessage)
		return
	}

	utils.RespondJSON(c, http.StatusOK, recommendationBody(recs, successMessage))
}

func recommendationBody(recs response_models.Recommendations, message string) gin.H {
	return gin.H{
		"userTravelMode": recs.UserTravelMode,
		"favoriteTrips":  recs.FavoriteTrips,
		"otherTrips":     recs.OtherTrips,
		"message":        message,
	}
}
