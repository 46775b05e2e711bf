package controllers

import (
	"net/http"
	"strconv"

	"github.com/LibriTrack/LibriTrack-Backend/src/dtos"
	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type BookController struct {
	service *services.BookService
}

func NewBookController(service *services.BookService) *BookController {
	return &BookController{service: service}
}

// GetAllBooks handles GET requests to retrieve books page by page with filters
func (c *BookController) GetAllBooks(ctx *gin.Context) {
	page, perPage := pageParams(ctx)

	filters := services.BookFilters{
		Title:      ctx.Query("title"),
		Author:     ctx.Query("author"),
		ISBN:       ctx.Query("isbn"),
		BookcaseID: intQuery(ctx, "bookcase_id"),
	}

	books, meta, err := c.service.GetAllBooks(page, perPage, filters)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.PaginatedResponse{Data: books, Meta: meta})
}

// GetBookByID handles GET requests to retrieve a book by its ID
func (c *BookController) GetBookByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	book, err := c.service.GetBookByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, book)
}

// CreateBook handles POST requests to insert a book into a bookcase
func (c *BookController) CreateBook(ctx *gin.Context) {
	var request dtos.BookRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book := models.BookModel{
		Title:      request.Title,
		Author:     request.Author,
		Editor:     request.Editor,
		ISBN:       request.ISBN,
		Length:     request.Length,
		BookcaseId: request.BookcaseId,
	}

	createdBook, err := c.service.CreateBook(&book, request.Genres)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, createdBook)
}

// UpdateBook handles PUT requests to update book metadata and genres
func (c *BookController) UpdateBook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	var request dtos.BookRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book := models.BookModel{
		Title:  request.Title,
		Author: request.Author,
		Editor: request.Editor,
		ISBN:   request.ISBN,
		Length: request.Length,
	}

	updatedBook, err := c.service.UpdateBook(id, &book, request.Genres)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updatedBook)
}

// MoveBook handles POST requests to re-place a book into another bookcase
func (c *BookController) MoveBook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	var request dtos.MoveBookRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movedBook, err := c.service.MoveBook(id, request.BookcaseId)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, movedBook)
}

// DeleteBook handles DELETE requests to soft-delete a book
func (c *BookController) DeleteBook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	if err := c.service.DeleteBook(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// ImportBooks handles POST requests with an xlsx upload of books
func (c *BookController) ImportBooks(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	reader, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer reader.Close()

	result, err := c.service.ImportBooksFromExcel(reader)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"imported": result.Imported, "errors": result.Errors})
}
