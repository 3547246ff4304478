package routes

import (
	"github.com/gin-gonic/gin"
	"note-keeper/internal/auth"
	"note-keeper/internal/constants"
)

func RegisterPublicRoutes(r *gin.Engine, controllerRegistry map[int]any) {
	r.POST("/auth/login", func(c *gin.Context) {
		authApi := controllerRegistry[constants.Auth].(auth.Api)
		authApi.Login(c)
	})
}
