package controllers

import (
	"net/http"
	"strconv"

	"github.com/LibriTrack/LibriTrack-Backend/src/dtos"
	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type FloorController struct {
	service *services.FloorService
}

func NewFloorController(service *services.FloorService) *FloorController {
	return &FloorController{service: service}
}

// GetAllFloors handles GET requests to retrieve floors page by page
func (c *FloorController) GetAllFloors(ctx *gin.Context) {
	page, perPage := pageParams(ctx)

	floors, meta, err := c.service.GetAllFloors(page, perPage, intQuery(ctx, "floor_number"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.PaginatedResponse{Data: floors, Meta: meta})
}

// GetFloorByID handles GET requests to retrieve a floor by its ID
func (c *FloorController) GetFloorByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid floor ID"})
		return
	}

	floor, err := c.service.GetFloorByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, floor)
}

// GetFloorOccupancy handles GET requests for the zone count of a floor
func (c *FloorController) GetFloorOccupancy(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid floor ID"})
		return
	}

	occupancy, capacity, err := c.service.FloorOccupancy(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"occupancy": occupancy, "capacity": capacity})
}

// CreateFloor handles POST requests to create a new floor
func (c *FloorController) CreateFloor(ctx *gin.Context) {
	var floor models.FloorModel
	if err := ctx.ShouldBindJSON(&floor); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdFloor, err := c.service.CreateFloor(&floor)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, createdFloor)
}

// UpdateFloor handles PUT requests to update an existing floor
func (c *FloorController) UpdateFloor(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid floor ID"})
		return
	}

	var floor models.FloorModel
	if err := ctx.ShouldBindJSON(&floor); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedFloor, err := c.service.UpdateFloor(id, &floor)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updatedFloor)
}

// DeleteFloor handles DELETE requests. ?cascade=true is the destructive admin
// override that removes the whole subtree.
func (c *FloorController) DeleteFloor(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid floor ID"})
		return
	}

	cascade := ctx.Query("cascade") == "true"
	if err := c.service.DeleteFloor(id, cascade); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
