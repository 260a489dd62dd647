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

type ReaderController struct {
	service *services.ReaderService
}

func NewReaderController(service *services.ReaderService) *ReaderController {
	return &ReaderController{service: service}
}

// GetAllReaders handles GET requests to retrieve all readers
func (c *ReaderController) GetAllReaders(ctx *gin.Context) {
	readers, err := c.service.GetAllReaders()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, readers)
}

// GetReaderByID handles GET requests to retrieve a reader by ID
func (c *ReaderController) GetReaderByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reader ID"})
		return
	}

	reader, err := c.service.GetReaderByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Reader not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, reader)
}

// CreateReader handles POST requests to register a new reader
func (c *ReaderController) CreateReader(ctx *gin.Context) {
	var newReader dtos.ReaderCreateDTO
	if err := ctx.ShouldBindJSON(&newReader); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newReaderId, err := c.service.CreateReader(&newReader)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Reader email already exists"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, newReaderId)
}

// UpdateReader handles PATCH requests to partially update a reader
func (c *ReaderController) UpdateReader(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reader ID"})
		return
	}

	var readerOnUpdate dtos.ReaderUpdateDTO
	if err := ctx.ShouldBindJSON(&readerOnUpdate); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedReader, err := c.service.UpdateReader(id, &readerOnUpdate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Reader not found"})
			return
		}
		if errors.Is(err, apperrors.ErrConflict) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Reader email already exists"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, updatedReader)
}

// DeleteReader handles DELETE requests to remove a reader by ID
func (c *ReaderController) DeleteReader(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reader ID"})
		return
	}

	if err := c.service.DeleteReader(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Reader not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Reader deleted"})
}
