package routes

import (
	"github.com/gin-gonic/gin"
	"note-keeper/internal/auth"
	"note-keeper/internal/constants"
	"note-keeper/internal/middlewares"
	"note-keeper/internal/note"
)

func RegisterProtectedRoutes(r *gin.Engine, controllerRegistry map[int]any) {

	authGroup := r.Group("")

	authGroup.Use(middlewares.AuthHandler())
	{
		// auth
		authApi := controllerRegistry[constants.Auth].(auth.Api)
		authGroup.GET("/auth/token", authApi.GetAuthToken)
		authGroup.GET("/auth/refresh", authApi.RefreshToken)
		authGroup.GET("/auth/hash/:pw", authApi.CreatePasswordHash)

		// notes
		noteApi := controllerRegistry[constants.Note].(note.Api)
		authGroup.GET("/users/:username/notes", noteApi.ListNotes)
		authGroup.POST("/users/:username/notes", noteApi.CreateNote)
		authGroup.GET("/users/:username/notes/:noteId", noteApi.GetNote)
		authGroup.DELETE("/users/:username/notes/:noteId", noteApi.DeleteNote)
		authGroup.GET("/users/:username/notes/:noteId/edit", noteApi.GetNoteForEdit)
		authGroup.POST("/users/:username/notes/:noteId/edit", noteApi.UpdateNote)
	}
}
