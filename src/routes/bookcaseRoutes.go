package routes

import (
	"github.com/LibriTrack/LibriTrack-Backend/src/controllers"
	"github.com/LibriTrack/LibriTrack-Backend/src/middleware"
	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupBookcaseRoutes(router *gin.Engine, service *services.BookcaseService) {

	bookcaseController := controllers.NewBookcaseController(service)

	// Protected routes
	bookcase := router.Group("/bookcases")
	bookcase.Use(middleware.AuthMiddleware())
	{
		bookcase.GET("/", bookcaseController.GetAllBookcases)
		bookcase.GET("/:id", bookcaseController.GetBookcaseByID)
		bookcase.POST("/", bookcaseController.CreateBookcase)
		bookcase.PUT("/:id", bookcaseController.UpdateBookcase)
		bookcase.DELETE("/:id", bookcaseController.DeleteBookcase)
	}
}
