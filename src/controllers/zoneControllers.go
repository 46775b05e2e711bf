package controllers

import (
	"net/http"
	"strconv"

	"github.com/LibriTrack/LibriTrack-Backend/src/dtos"
	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ZoneController struct {
	service *services.ZoneService
}

func NewZoneController(service *services.ZoneService) *ZoneController {
	return &ZoneController{service: service}
}

// GetAllZones handles GET requests to retrieve zones page by page with filters
func (c *ZoneController) GetAllZones(ctx *gin.Context) {
	page, perPage := pageParams(ctx)

	filters := services.ZoneFilters{
		Number:      intQuery(ctx, "number"),
		Capacity:    intQuery(ctx, "capacity"),
		GenreName:   ctx.Query("genre"),
		FloorNumber: intQuery(ctx, "floor"),
	}

	zones, meta, err := c.service.GetAllZones(page, perPage, filters)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.PaginatedResponse{Data: zones, Meta: meta})
}

// GetZoneByID handles GET requests to retrieve a zone by its ID
func (c *ZoneController) GetZoneByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zone ID"})
		return
	}

	zone, err := c.service.GetZoneByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, zone)
}

// CreateZone handles POST requests to create a new zone under a floor
func (c *ZoneController) CreateZone(ctx *gin.Context) {
	var zone models.ZoneModel
	if err := ctx.ShouldBindJSON(&zone); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdZone, err := c.service.CreateZone(&zone)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, createdZone)
}

// UpdateZone handles PUT requests to update an existing zone
func (c *ZoneController) UpdateZone(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zone ID"})
		return
	}

	var zone models.ZoneModel
	if err := ctx.ShouldBindJSON(&zone); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedZone, err := c.service.UpdateZone(id, &zone)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updatedZone)
}

// DeleteZone handles DELETE requests to remove a zone
func (c *ZoneController) DeleteZone(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zone ID"})
		return
	}

	cascade := ctx.Query("cascade") == "true"
	if err := c.service.DeleteZone(id, cascade); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
