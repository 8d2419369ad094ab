package handler

import (
	"github.com/labstack/echo/v4"

	"task-service/internal/application/interfaces"
)

type Handler struct {
	authService interfaces.AuthService
	taskService interfaces.TaskService
}

func NewHandler(authService interfaces.AuthService, taskService interfaces.TaskService) *Handler {
	return &Handler{
		authService: authService,
		taskService: taskService,
	}
}

// RegisterRoutes wires the API under /api/v1. Everything below /tasks plus
// /auth/me requires a valid access token.
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/refresh", h.Refresh)
	auth.GET("/me", h.Me, authMiddleware)

	tasks := api.Group("/tasks", authMiddleware)
	tasks.POST("", h.CreateTask)
	tasks.POST("/bulk", h.BulkCreateTasks)
	tasks.GET("", h.ListTasks)
	tasks.GET("/categories", h.GetCategories)
	tasks.GET("/calendar/:year/:month", h.GetCalendar)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)
}
