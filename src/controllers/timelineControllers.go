package controllers

import (
	"net/http"
	"strconv"

	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type TimelineController struct {
	service *services.TimelineService
}

func NewTimelineController(service *services.TimelineService) *TimelineController {
	return &TimelineController{service: service}
}

// GetUserTimeline handles GET requests for the merged loan + reservation
// history of a user, optionally windowed by start/end dates
func (c *TimelineController) GetUserTimeline(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	records, err := c.service.UserTimeline(id, dateQuery(ctx, "start"), dateQuery(ctx, "end"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// GetBookTimeline handles GET requests for the circulation history of a book
func (c *TimelineController) GetBookTimeline(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	records, err := c.service.BookTimeline(id, dateQuery(ctx, "start"), dateQuery(ctx, "end"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}
