package routes

import (
	"github.com/LibriTrack/LibriTrack-Backend/src/controllers"
	"github.com/LibriTrack/LibriTrack-Backend/src/middleware"
	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupLoanRoutes(router *gin.Engine, service *services.LoanService) {

	loanController := controllers.NewLoanController(service)

	// Protected routes
	loan := router.Group("/loans")
	loan.Use(middleware.AuthMiddleware())
	{
		loan.GET("/", loanController.GetAllLoans)
		loan.GET("/:id", loanController.GetLoanByID)
		loan.POST("/", loanController.CreateLoan)
		loan.POST("/:id/return", loanController.ReturnLoan)
		loan.PUT("/:id", loanController.UpdateLoan)
	}
}
