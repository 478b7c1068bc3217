package controllers

import (
	"net/http"
	"strings"

	"ezyvoyage/internal/models/request_models"
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/internal/services"
	"ezyvoyage/pkg/utils"

	"github.com/gin-gonic/gin"
)

const missingItineraryFields = "All fields are required: destination, travelType, numberOfPeople, numberOfDays, budget"

// TravelController serves the itinerary, popular spots and hidden gems
// pipelines.
type TravelController struct {
	planner services.PlannerServiceInterface
}

func NewTravelController(planner services.PlannerServiceInterface) *TravelController {
	return &TravelController{planner: planner}
}

// GenerateItinerary godoc
// @Summary Generate a day-by-day itinerary
// @Tags Travel
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryRequest true "Trip details"
// @Router /api/travel/generate-itinerary [post]
func (t *TravelController) GenerateItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.HasAllFields() {
		utils.RespondError(c, http.StatusBadRequest, missingItineraryFields)
		return
	}

	data, err := t.planner.GenerateItinerary(c.Request.Context(), req.Input())
	if err != nil {
		utils.HandlePipelineError(c, err, "Failed to generate itinerary")
		return
	}

	utils.RespondSuccess(c, data, "")
}

// PopularSpots godoc
// @Summary List well-known spots of one type in a location
// @Tags Popular
// @Accept json
// @Produce json
// @Param request body request_models.SpotsRequest true "Location and spot type"
// @Router /api/popular/spots [post]
func (t *TravelController) PopularSpots(c *gin.Context) {
	req, ok := bindSpots(c)
	if !ok {
		return
	}

	res, err := t.planner.PopularSpots(c.Request.Context(), req.Location, req.SpotType)
	if err != nil {
		utils.HandlePipelineError(c, err, "Internal server error occurred")
		return
	}

	body := gin.H{
		"spots":    res.Spots,
		"count":    len(res.Spots),
		"location": res.Location,
		"spotType": res.SpotType,
	}
	if len(res.Spots) == 0 {
		body["message"] = pipeline.EmptySpotsMessage(res.SpotType, res.Location)
	}
	utils.RespondJSON(c, http.StatusOK, body)
}

func (t *TravelController) PopularHealth(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, gin.H{"message": "Popular spots service is running"})
}

func (t *TravelController) HiddenGems(c *gin.Context) {
	req, ok := bindSpots(c)
	if !ok {
		return
	}

	res, err := t.planner.HiddenGems(c.Request.Context(), req.Location, req.SpotType)
	if err != nil {
		utils.HandlePipelineError(c, err, "Something went wrong while finding hidden gems")
		return
	}

	body := gin.H{
		"spots":      res.Spots,
		"location":   res.Location,
		"spotType":   res.SpotType,
		"totalFound": len(res.Spots),
	}
	if res.Message != "" {
		body["message"] = res.Message
	}
	utils.RespondJSON(c, http.StatusOK, body)
}

func (t *TravelController) NicheHealth(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, gin.H{"message": "Hidden Gems service is running"})
}

func bindSpots(c *gin.Context) (request_models.SpotsRequest, bool) {
	var req request_models.SpotsRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.Location) == "" || strings.TrimSpace(req.SpotType) == "" {
		utils.RespondError(c, http.StatusBadRequest, "Location and spot type are required")
		return req, false
	}
	return req, true
}
