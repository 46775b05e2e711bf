package controllers

import (
	"net/http"
	"strconv"

	"github.com/LibriTrack/LibriTrack-Backend/src/dtos"
	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type BookcaseController struct {
	service *services.BookcaseService
}

func NewBookcaseController(service *services.BookcaseService) *BookcaseController {
	return &BookcaseController{service: service}
}

// GetAllBookcases handles GET requests to retrieve bookcases page by page
func (c *BookcaseController) GetAllBookcases(ctx *gin.Context) {
	page, perPage := pageParams(ctx)

	bookcases, meta, err := c.service.GetAllBookcases(page, perPage, intQuery(ctx, "zone_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.PaginatedResponse{Data: bookcases, Meta: meta})
}

// GetBookcaseByID handles GET requests to retrieve a bookcase by its ID
func (c *BookcaseController) GetBookcaseByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bookcase ID"})
		return
	}

	bookcase, err := c.service.GetBookcaseByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, bookcase)
}

// CreateBookcase handles POST requests to create a new bookcase under a zone
func (c *BookcaseController) CreateBookcase(ctx *gin.Context) {
	var bookcase models.BookcaseModel
	if err := ctx.ShouldBindJSON(&bookcase); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdBookcase, err := c.service.CreateBookcase(&bookcase)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, createdBookcase)
}

// UpdateBookcase handles PUT requests to update an existing bookcase
func (c *BookcaseController) UpdateBookcase(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bookcase ID"})
		return
	}

	var bookcase models.BookcaseModel
	if err := ctx.ShouldBindJSON(&bookcase); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedBookcase, err := c.service.UpdateBookcase(id, &bookcase)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updatedBookcase)
}

// DeleteBookcase handles DELETE requests to remove a bookcase
func (c *BookcaseController) DeleteBookcase(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bookcase ID"})
		return
	}

	cascade := ctx.Query("cascade") == "true"
	if err := c.service.DeleteBookcase(id, cascade); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
