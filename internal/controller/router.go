package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ousidus/braintrain/internal/dto"
)

// RegisterRoutes wires every API route onto the engine. The paths are part of
// the client contract and must not change.
func RegisterRoutes(router *gin.Engine, exerciseCtrl *ExerciseController, sessionCtrl *SessionController) {
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.HealthResponse{Message: "Brain Training API", Status: "healthy"})
	})
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})

	api := router.Group("/api")
	{
		exercises := api.Group("/exercises")
		exercises.GET("/arithmetic", exerciseCtrl.GetArithmetic)
		exercises.GET("/reading", exerciseCtrl.GetReading)
		exercises.GET("/stroop", exerciseCtrl.GetStroop)
		exercises.GET("/memory-words", exerciseCtrl.GetMemoryWords)

		api.GET("/exercise-types", exerciseCtrl.GetExerciseTypes)

		api.POST("/sessions", sessionCtrl.CreateSession)
		api.GET("/sessions/:id", sessionCtrl.GetSession)
		api.POST("/results", sessionCtrl.SaveResult)
	}
}
