package routes

import (
	"github.com/LibriTrack/LibriTrack-Backend/src/controllers"
	"github.com/LibriTrack/LibriTrack-Backend/src/middleware"
	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupBookRoutes(router *gin.Engine, service *services.BookService, timelineService *services.TimelineService) {

	bookController := controllers.NewBookController(service)
	timelineController := controllers.NewTimelineController(timelineService)

	// Protected routes
	book := router.Group("/books")
	book.Use(middleware.AuthMiddleware())
	{
		book.GET("/", bookController.GetAllBooks)
		book.GET("/:id", bookController.GetBookByID)
		book.GET("/:id/timeline", timelineController.GetBookTimeline)
		book.POST("/", bookController.CreateBook)
		book.POST("/import", bookController.ImportBooks)
		book.POST("/:id/move", bookController.MoveBook)
		book.PUT("/:id", bookController.UpdateBook)
		book.DELETE("/:id", bookController.DeleteBook)
	}
}
