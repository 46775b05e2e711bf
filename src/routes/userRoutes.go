package routes

import (
	"github.com/LibriTrack/LibriTrack-Backend/src/controllers"
	"github.com/LibriTrack/LibriTrack-Backend/src/middleware"
	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService, timelineService *services.TimelineService) {
	userController := controllers.NewUserController(service)
	timelineController := controllers.NewTimelineController(timelineService)

	// Public routes
	router.POST("/login", userController.AuthenticateUser)
	router.POST("/register", userController.CreateUser)

	// Protected routes
	user := router.Group("/users")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/", userController.GetAllUsers)
		user.GET("/:id", userController.GetUserByID)
		user.GET("/:id/timeline", timelineController.GetUserTimeline)
		user.DELETE("/:id", userController.DeleteUser)
	}
}
