package routes

import (
	"github.com/LibriTrack/LibriTrack-Backend/src/controllers"
	"github.com/LibriTrack/LibriTrack-Backend/src/middleware"
	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupReservationRoutes(router *gin.Engine, service *services.ReservationService) {

	reservationController := controllers.NewReservationController(service)

	// Protected routes
	reservation := router.Group("/reservations")
	reservation.Use(middleware.AuthMiddleware())
	{
		reservation.GET("/", reservationController.GetAllReservations)
		reservation.GET("/:id", reservationController.GetReservationByID)
		reservation.POST("/", reservationController.CreateReservation)
		reservation.DELETE("/:id", reservationController.CancelReservation)
	}
}
