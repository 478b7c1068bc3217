package controllers

import (
	"errors"
	"net/http"

	"ezyvoyage/internal/models/request_models"
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/internal/services"
	"ezyvoyage/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdvisoryController struct {
	advisory services.AdvisoryServiceInterface
}

func NewAdvisoryController(advisory services.AdvisoryServiceInterface) *AdvisoryController {
	return &AdvisoryController{advisory: advisory}
}

func (a *AdvisoryController) UserNationality(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	nationality, err := a.advisory.UserNationality(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"userNationality": nationality,
		"countries":       services.Countries,
	}, "")
}

func (a *AdvisoryController) AdvisoryURL(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.AdvisoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination country is required")
		return
	}

	data, err := a.advisory.AdvisoryURL(c.Request.Context(), userID, req.DestinationCountry)
	if err != nil {
		var se *pipeline.ServiceError
		if errors.As(err, &se) && !errors.Is(err, utils.ErrAINotConfigured) {
			utils.Logger(c).Error("advisory completion failed", zap.Error(err))
			utils.RespondError(c, http.StatusInternalServerError, "Error generating travel advisory URL")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, data, "")
}
