package controllers

import (
	"errors"
	"net/http"

	"github.com/BiblioTrack/BiblioTrack-Backend/src/apperrors"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/dtos"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/middleware"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// Register handles POST requests to create a new API user
func (c *UserController) Register(ctx *gin.Context) {
	var newUser dtos.UserRegisterDTO
	if err := ctx.ShouldBindJSON(&newUser); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newUserId, err := c.service.RegisterUser(newUser.Email, newUser.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, newUserId)
}

// Login handles POST requests to authenticate a user. On success the
// access token is returned in the body and set as an httponly cookie.
func (c *UserController) Login(ctx *gin.Context) {
	var credentials dtos.UserLoginDTO
	if err := ctx.ShouldBindJSON(&credentials); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.service.AuthenticateUser(credentials.Email, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, apperrors.ErrInvalidPassword):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.SetCookie(middleware.AccessTokenCookie, token, 3600, "/", "", false, true)
	ctx.JSON(http.StatusOK, token)
}
