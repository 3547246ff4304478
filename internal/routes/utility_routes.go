package routes

import (
	"github.com/gin-gonic/gin"
	"note-keeper/internal/controllers"
)

func RegisterUtilityRoutes(r *gin.Engine) {
	r.GET("/heartbeat", controllers.GetHeartBeat)
	r.GET("/status", controllers.GetStatus)
}
