package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"note-keeper/internal/api"
)

func GetHeartBeat(c *gin.Context) {
	c.AbortWithStatus(http.StatusOK)
}

func GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, api.NewGenericResponse(api.Success, "running", nil))
}
