package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/ports"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	userHandler *handlers.UserHandler,
	authHandler *handlers.AuthHandler,
	authService ports.AuthService,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		// Reading the board requires no credential.
		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/auth/login", authHandler.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(authService))
	{
		authed.POST("/tasks", taskHandler.CreateTask)
		authed.PUT("/tasks/:id", taskHandler.UpdateTask)
		authed.PATCH("/tasks/:id", taskHandler.MoveTask)
		authed.DELETE("/tasks/:id", taskHandler.DeleteTask)

		authed.GET("/users/me", userHandler.Me)
		authed.POST("/users", userHandler.CreateUser)
		authed.GET("/assignees", userHandler.ListAssignees)
	}
}
