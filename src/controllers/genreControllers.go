package controllers

import (
	"net/http"
	"strconv"

	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type GenreController struct {
	service *services.GenreService
}

func NewGenreController(service *services.GenreService) *GenreController {
	return &GenreController{service: service}
}

// GetAllGenres handles GET requests to retrieve all genre records
func (c *GenreController) GetAllGenres(ctx *gin.Context) {
	genres, err := c.service.GetAllGenres()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, genres)
}

// CreateGenre handles POST requests to create a new genre record
func (c *GenreController) CreateGenre(ctx *gin.Context) {
	var genre models.GenreModel
	if err := ctx.ShouldBindJSON(&genre); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdGenre, err := c.service.CreateGenre(&genre)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, createdGenre)
}

// DeleteGenre handles DELETE requests to remove a genre record by its ID
func (c *GenreController) DeleteGenre(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre ID"})
		return
	}

	if err := c.service.DeleteGenre(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
