package api

import (
	"alcyxob/exercise-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the exercise-tracker API on the given router.
func SetupRoutes(
	router *gin.Engine,
	userService service.UserService,
	logService service.ExerciseLogService,
) {
	userHandler := NewUserHandler(userService)
	logHandler := NewExerciseLogHandler(logService)

	apiGroup := router.Group("/api")
	{
		// --- User Store ---
		apiGroup.POST("/users", userHandler.CreateUser)
		apiGroup.GET("/users", userHandler.ListUsers)

		// --- Exercise Log ---
		apiGroup.POST("/users/:_id/exercises", logHandler.AppendExercise)
		apiGroup.GET("/users/:_id/logs", logHandler.GetLogs)
	}
}
