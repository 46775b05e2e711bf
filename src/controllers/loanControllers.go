package controllers

import (
	"net/http"

	"github.com/LibriTrack/LibriTrack-Backend/src/dtos"
	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type LoanController struct {
	service *services.LoanService
}

func NewLoanController(service *services.LoanService) *LoanController {
	return &LoanController{service: service}
}

// GetAllLoans handles GET requests to retrieve loan records page by page
func (c *LoanController) GetAllLoans(ctx *gin.Context) {
	page, perPage := pageParams(ctx)

	loans, meta, err := c.service.GetAllLoans(page, perPage, intQuery(ctx, "user_id"), intQuery(ctx, "book_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.PaginatedResponse{Data: loans, Meta: meta})
}

// GetLoanByID handles GET requests to retrieve a loan by its ID
func (c *LoanController) GetLoanByID(ctx *gin.Context) {
	loan, err := c.service.GetLoanByID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, loan)
}

// CreateLoan handles POST requests to issue a new loan
func (c *LoanController) CreateLoan(ctx *gin.Context) {
	var request dtos.IssueLoanRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dueDate, err := parseDate(request.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date"})
		return
	}

	loan, err := c.service.IssueLoan(request.Email, request.ISBN, dueDate)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, loan)
}

// ReturnLoan handles POST requests to close an active loan
func (c *LoanController) ReturnLoan(ctx *gin.Context) {
	loan, err := c.service.ReturnLoan(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, loan)
}

// UpdateLoan handles PUT requests to update an active loan
func (c *LoanController) UpdateLoan(ctx *gin.Context) {
	var request dtos.UpdateLoanRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dueDate, err := parseDate(request.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date"})
		return
	}

	loan, err := c.service.UpdateLoan(ctx.Param("id"), dueDate, request.Email)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, loan)
}
