package routes

import (
	"github.com/BiblioTrack/BiblioTrack-Backend/src/controllers"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	userController := controllers.NewUserController(service)

	// Public routes
	auth := router.Group("/auth")
	{
		auth.POST("/register/", userController.Register)
		auth.POST("/login/", userController.Login)
	}
}
