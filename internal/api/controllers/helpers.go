package controllers

import (
	"net/http"

	"ezyvoyage/internal/api/validators"
	"ezyvoyage/pkg/middleware"
	"ezyvoyage/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindJSON decodes the body into req and writes the 400 response itself when
// decoding or validation fails.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if errs, ok := validators.FieldErrors(err); ok {
			utils.RespondValidationError(c, errs)
			return false
		}
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return false
	}
	return true
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No token, authorization denied")
		return uuid.Nil, false
	}
	return id, true
}
