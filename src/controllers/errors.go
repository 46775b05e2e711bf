package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError translates service errors into HTTP statuses with enough
// structure for the frontend to show a specific, actionable message.
func respondError(ctx *gin.Context, err error) {
	var domainErr *services.DomainError
	if errors.As(err, &domainErr) {
		ctx.JSON(statusForKind(domainErr.Kind), gin.H{
			"error":  domainErr.Detail,
			"kind":   string(domainErr.Kind),
			"entity": domainErr.Entity,
		})
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func statusForKind(kind services.ErrorKind) int {
	switch kind {
	case services.ErrCapacityExceeded,
		services.ErrAlreadyLoaned,
		services.ErrAlreadyReturned,
		services.ErrNotEmpty,
		services.ErrConcurrentModification:
		return http.StatusConflict
	case services.ErrUnknownUser, services.ErrUnknownBook, services.ErrInvalidParent:
		return http.StatusNotFound
	case services.ErrInvalidDueDate, services.ErrInvalidValue:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// pageParams reads the page/per_page query params with the usual defaults
func pageParams(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(ctx.DefaultQuery("per_page", "10"))
	return page, perPage
}

func intQuery(ctx *gin.Context, name string) *int {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

// dateQuery parses a date query param, accepting plain dates and RFC 3339
func dateQuery(ctx *gin.Context, name string) *time.Time {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	parsed, err := parseDate(raw)
	if err != nil {
		return nil
	}
	return &parsed
}

func parseDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, raw)
}
