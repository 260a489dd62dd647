package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/BiblioTrack/BiblioTrack-Backend/src/apperrors"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/dtos"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type BookController struct {
	service *services.BookService
}

func NewBookController(service *services.BookService) *BookController {
	return &BookController{service: service}
}

// GetAllBooks handles GET requests to retrieve all books
func (c *BookController) GetAllBooks(ctx *gin.Context) {
	books, err := c.service.GetAllBooks()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, books)
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
		if errors.Is(err, apperrors.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, book)
}

// CreateBook handles POST requests to register a new book
func (c *BookController) CreateBook(ctx *gin.Context) {
	var newBook dtos.BookCreateDTO
	if err := ctx.ShouldBindJSON(&newBook); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newBookId, err := c.service.CreateBook(&newBook)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, newBookId)
}

// UpdateBook handles PATCH requests to partially update a book
func (c *BookController) UpdateBook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	var bookOnUpdate dtos.BookUpdateDTO
	if err := ctx.ShouldBindJSON(&bookOnUpdate); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedBook, err := c.service.UpdateBook(id, &bookOnUpdate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, updatedBook)
}

// DeleteBook handles DELETE requests to remove a book by its ID
func (c *BookController) DeleteBook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	if err := c.service.DeleteBook(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Book deleted"})
}

// ImportBooks handles POST requests with an Excel workbook of books
func (c *BookController) ImportBooks(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "A file upload named 'file' is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	result, err := c.service.ImportBooksFromExcel(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
