package routes

import (
	"github.com/LibriTrack/LibriTrack-Backend/src/controllers"
	"github.com/LibriTrack/LibriTrack-Backend/src/middleware"
	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupZoneRoutes(router *gin.Engine, service *services.ZoneService) {

	zoneController := controllers.NewZoneController(service)

	// Protected routes
	zone := router.Group("/zones")
	zone.Use(middleware.AuthMiddleware())
	{
		zone.GET("/", zoneController.GetAllZones)
		zone.GET("/:id", zoneController.GetZoneByID)
		zone.POST("/", zoneController.CreateZone)
		zone.PUT("/:id", zoneController.UpdateZone)
		zone.DELETE("/:id", zoneController.DeleteZone)
	}
}
