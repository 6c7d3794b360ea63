// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/goals-manager/backend/internal/integration/entrypoint/controller"
	"github.com/goals-manager/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	healthController *controller.HealthController
	userController   *controller.UserController
	goalController   *controller.GoalController
	habitController  *controller.HabitController
	taskController   *controller.TaskController
	noteController   *controller.NoteController
	rateLimiter      *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	userController *controller.UserController,
	goalController *controller.GoalController,
	habitController *controller.HabitController,
	taskController *controller.TaskController,
	noteController *controller.NoteController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController: healthController,
		userController:   userController,
		goalController:   goalController,
		habitController:  habitController,
		taskController:   taskController,
		noteController:   noteController,
		rateLimiter:      rateLimiter,
		authMiddleware:   authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(middleware.RequestID())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}
	{
		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.PUT("", r.userController.Upsert)
				users.GET("", r.userController.List)
				users.GET("/lookup", r.userController.Lookup)
				users.GET("/:id", r.userController.Get)
				users.GET("/:id/exists", r.userController.Exists)
				users.DELETE("/:id", r.userController.Delete)
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.POST("", r.goalController.Create)
				goals.GET("", r.goalController.List)
				goals.GET("/count", r.goalController.Count)
				goals.GET("/:id", r.goalController.Get)
				goals.PATCH("/:id", r.goalController.Update)
				goals.PATCH("/:id/status", r.goalController.UpdateStatus)
				goals.DELETE("/:id", r.goalController.Delete)
				goals.GET("/:id/exists", r.goalController.Exists)

				// Notes hang off their goal for listing and counting
				if r.noteController != nil {
					goals.GET("/:id/notes", r.noteController.ListByGoal)
					goals.GET("/:id/notes/count", r.noteController.Count)
				}
			}
		}

		// Habit routes (require authentication)
		if r.habitController != nil && r.authMiddleware != nil {
			habits := v1.Group("/habits")
			habits.Use(r.authMiddleware.Authenticate())
			{
				habits.POST("", r.habitController.Create)
				habits.GET("", r.habitController.List)
				habits.GET("/count", r.habitController.Count)
				habits.GET("/:id", r.habitController.Get)
				habits.PATCH("/:id", r.habitController.Update)
				habits.DELETE("/:id", r.habitController.Delete)
				habits.GET("/:id/exists", r.habitController.Exists)
			}
		}

		// Task routes (require authentication)
		if r.taskController != nil && r.authMiddleware != nil {
			tasks := v1.Group("/tasks")
			tasks.Use(r.authMiddleware.Authenticate())
			{
				tasks.POST("", r.taskController.Create)
				tasks.GET("", r.taskController.List)
				tasks.GET("/range", r.taskController.GetInRange)
				tasks.GET("/count", r.taskController.Count)
				tasks.GET("/:id", r.taskController.Get)
				tasks.PATCH("/:id", r.taskController.Update)
				tasks.PATCH("/:id/toggle", r.taskController.Toggle)
				tasks.DELETE("/:id", r.taskController.Delete)
				tasks.GET("/:id/exists", r.taskController.Exists)
			}
		}

		// Note routes (require authentication)
		if r.noteController != nil && r.authMiddleware != nil {
			notes := v1.Group("/notes")
			notes.Use(r.authMiddleware.Authenticate())
			{
				notes.POST("", r.noteController.Create)
				notes.GET("/:id", r.noteController.Get)
				notes.PATCH("/:id", r.noteController.Update)
				notes.DELETE("/:id", r.noteController.Delete)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
