package controllers

import (
	"net/http"

	"ezyvoyage/pkg/utils"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Server is running!"})
}

func NotFound(c *gin.Context) {
	utils.RespondError(c, http.StatusNotFound, "Route not found")
}
