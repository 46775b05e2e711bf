package controllers

import (
	"net/http"

	"github.com/LibriTrack/LibriTrack-Backend/src/dtos"
	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

// GetAllReservations handles GET requests to retrieve reservations page by page
func (c *ReservationController) GetAllReservations(ctx *gin.Context) {
	page, perPage := pageParams(ctx)

	reservations, meta, err := c.service.GetAllReservations(page, perPage, intQuery(ctx, "user_id"), intQuery(ctx, "book_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.PaginatedResponse{Data: reservations, Meta: meta})
}

// GetReservationByID handles GET requests to retrieve a reservation by its ID
func (c *ReservationController) GetReservationByID(ctx *gin.Context) {
	reservation, err := c.service.GetReservationByID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reservation)
}

// CreateReservation handles POST requests to queue a reservation
func (c *ReservationController) CreateReservation(ctx *gin.Context) {
	var request dtos.ReservationRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := c.service.CreateReservation(request.Email, request.ISBN)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, reservation)
}

// CancelReservation handles DELETE requests to soft-cancel a reservation
func (c *ReservationController) CancelReservation(ctx *gin.Context) {
	if err := c.service.CancelReservation(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
