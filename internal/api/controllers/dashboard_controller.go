package controllers

import (
	"net/http"

	"ezyvoyage/internal/models/request_models"
	"ezyvoyage/internal/models/response_models"
	"ezyvoyage/internal/services"
	"ezyvoyage/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardController serves both /api/dashboard and /api/user.
type DashboardController struct {
	profiles services.ProfileService
}

func NewDashboardController(profiles services.ProfileService) *DashboardController {
	return &DashboardController{profiles: profiles}
}

func (d *DashboardController) Profile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := d.profiles.Profile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"message": "User profile fetched successfully",
		"user":    response_models.NewUserResponse(user),
	})
}

func (d *DashboardController) UpdateTravelMode(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.UpdateTravelModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := d.profiles.UpdateTravelMode(c.Request.Context(), userID, req.TravelMode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"message": "Travel mode updated successfully",
		"user":    response_models.NewUserResponse(user),
	})
}

func (d *DashboardController) Stats(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	stats, err := d.profiles.Stats(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"stats": stats})
}

func (d *DashboardController) UserProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := d.profiles.Profile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"user": response_models.NewUserResponse(user)})
}

func (d *DashboardController) UpdateUserProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := d.profiles.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    response_models.NewUserResponse(user),
	})
}
