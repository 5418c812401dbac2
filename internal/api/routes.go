package api

import (
	"net/http"

	"treinoapp/workout-service/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the workout endpoints under the /api prefix.
func SetupRoutes(router *gin.Engine, workoutService service.WorkoutService) {
	workoutHandler := NewWorkoutHandler(workoutService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		workoutGroup := apiGroup.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			// Static routes must be registered alongside the :id param;
			// gin resolves them with static-first priority.
			workoutGroup.GET("/predefined", workoutHandler.ListPredefinedWorkouts)
			workoutGroup.GET("/custom", workoutHandler.ListCustomWorkouts)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
			workoutGroup.POST("/:id/copy", workoutHandler.CopyWorkout)
		}
	}
}
