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

type BorrowedBookController struct {
	service *services.BorrowedBookService
}

func NewBorrowedBookController(service *services.BorrowedBookService) *BorrowedBookController {
	return &BorrowedBookController{service: service}
}

// GetAllBorrowedBooks handles GET requests to retrieve all loan records
func (c *BorrowedBookController) GetAllBorrowedBooks(ctx *gin.Context) {
	borrowedBooks, err := c.service.GetAllBorrowedBooks()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, borrowedBooks)
}

// GetBorrowedBookByID handles GET requests to retrieve a loan by its ID
func (c *BorrowedBookController) GetBorrowedBookByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid borrowed book ID"})
		return
	}

	borrowedBook, err := c.service.GetBorrowedBookByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "BorrowedBook not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, borrowedBook)
}

// GetAllByReaderID handles GET requests to list the loans of one reader
func (c *BorrowedBookController) GetAllByReaderID(ctx *gin.Context) {
	readerId, err := strconv.Atoi(ctx.Param("reader_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reader ID"})
		return
	}

	borrowedBooks, err := c.service.GetAllByReaderID(readerId)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, borrowedBooks)
}

// GetAllByBookID handles GET requests to list the loans of one book
func (c *BorrowedBookController) GetAllByBookID(ctx *gin.Context) {
	bookId, err := strconv.Atoi(ctx.Param("book_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	borrowedBooks, err := c.service.GetAllByBookID(bookId)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, borrowedBooks)
}

// Borrow handles POST requests to lend a book to a reader
func (c *BorrowedBookController) Borrow(ctx *gin.Context) {
	bookId, err := strconv.Atoi(ctx.Param("book_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}
	readerId, err := strconv.Atoi(ctx.Param("reader_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reader ID"})
		return
	}

	newBorrowedBookId, err := c.service.Borrow(bookId, readerId)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAlreadyBorrowed):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Reader has already borrowed this book"})
		case errors.Is(err, apperrors.ErrTooManyLoans):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Reader already has 3 borrowed books"})
		case errors.Is(err, apperrors.ErrUnableToBorrow):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Unable to borrow book, no instances available"})
		case errors.Is(err, apperrors.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusOK, newBorrowedBookId)
}

// Return handles POST requests to take a lent book back
func (c *BorrowedBookController) Return(ctx *gin.Context) {
	bookId, err := strconv.Atoi(ctx.Param("book_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}
	readerId, err := strconv.Atoi(ctx.Param("reader_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reader ID"})
		return
	}

	if err := c.service.Return(bookId, readerId); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAlreadyReturned):
			ctx.JSON(http.StatusConflict, gin.H{"error": "BorrowedBook has already been returned"})
		case errors.Is(err, apperrors.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "BorrowedBook not found"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Book returned"})
}

// UpdateBorrowedBook handles PATCH requests to correct loan dates
func (c *BorrowedBookController) UpdateBorrowedBook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid borrowed book ID"})
		return
	}

	var borrowedBookOnUpdate dtos.BorrowedBookUpdateDTO
	if err := ctx.ShouldBindJSON(&borrowedBookOnUpdate); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedBorrowedBook, err := c.service.UpdateBorrowedBook(id, &borrowedBookOnUpdate)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "BorrowedBook not found"})
		case errors.Is(err, apperrors.ErrInvalidDateRange):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Borrow date must be before return date"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusOK, updatedBorrowedBook)
}

// DeleteBorrowedBook handles DELETE requests to remove a loan record
func (c *BorrowedBookController) DeleteBorrowedBook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid borrowed book ID"})
		return
	}

	if err := c.service.DeleteBorrowedBook(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "BorrowedBook not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "BorrowedBook deleted"})
}
