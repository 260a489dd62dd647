package routes

import (
	"github.com/BiblioTrack/BiblioTrack-Backend/src/controllers"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupBookRoutes(router *gin.Engine, service *services.BookService, auth gin.HandlerFunc) {

	bookController := controllers.NewBookController(service)

	// Protected routes
	book := router.Group("/books")
	book.Use(auth)
	{
		book.GET("/", bookController.GetAllBooks)
		book.GET("/:id", bookController.GetBookByID)
		book.POST("/create/", bookController.CreateBook)
		book.POST("/import/", bookController.ImportBooks)
		book.PATCH("/update/:id", bookController.UpdateBook)
		book.DELETE("/delete/:id", bookController.DeleteBook)
	}
}
