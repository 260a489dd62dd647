package routes

import (
	"github.com/BiblioTrack/BiblioTrack-Backend/src/controllers"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupReaderRoutes(router *gin.Engine, service *services.ReaderService, auth gin.HandlerFunc) {

	readerController := controllers.NewReaderController(service)

	// Protected routes
	reader := router.Group("/readers")
	reader.Use(auth)
	{
		reader.GET("/", readerController.GetAllReaders)
		reader.GET("/:id", readerController.GetReaderByID)
		reader.POST("/create/", readerController.CreateReader)
		reader.PATCH("/update/:id", readerController.UpdateReader)
		reader.DELETE("/delete/:id", readerController.DeleteReader)
	}
}
