package routes

import (
	"github.com/LibriTrack/LibriTrack-Backend/src/controllers"
	"github.com/LibriTrack/LibriTrack-Backend/src/middleware"
	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupFloorRoutes(router *gin.Engine, service *services.FloorService) {

	floorController := controllers.NewFloorController(service)

	// Protected routes
	floor := router.Group("/floors")
	floor.Use(middleware.AuthMiddleware())
	{
		floor.GET("/", floorController.GetAllFloors)
		floor.GET("/:id", floorController.GetFloorByID)
		floor.GET("/:id/occupancy", floorController.GetFloorOccupancy)
		floor.POST("/", floorController.CreateFloor)
		floor.PUT("/:id", floorController.UpdateFloor)
		floor.DELETE("/:id", floorController.DeleteFloor)
	}
}
