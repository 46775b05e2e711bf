package routes

import (
	"github.com/LibriTrack/LibriTrack-Backend/src/controllers"
	"github.com/LibriTrack/LibriTrack-Backend/src/middleware"
	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupGenreRoutes(router *gin.Engine, service *services.GenreService) {

	genreController := controllers.NewGenreController(service)

	// Protected routes
	genre := router.Group("/genres")
	genre.Use(middleware.AuthMiddleware())
	{
		genre.GET("/", genreController.GetAllGenres)
		genre.POST("/", genreController.CreateGenre)
		genre.DELETE("/:id", genreController.DeleteGenre)
	}
}
