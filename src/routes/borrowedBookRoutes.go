package routes

import (
	"github.com/BiblioTrack/BiblioTrack-Backend/src/controllers"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupBorrowedBookRoutes(router *gin.Engine, service *services.BorrowedBookService, auth gin.HandlerFunc) {

	borrowedBookController := controllers.NewBorrowedBookController(service)

	// Protected routes
	borrowedBook := router.Group("/borrowed-book")
	borrowedBook.Use(auth)
	{
		borrowedBook.GET("/", borrowedBookController.GetAllBorrowedBooks)
		borrowedBook.GET("/:id", borrowedBookController.GetBorrowedBookByID)
		borrowedBook.GET("/reader/:reader_id", borrowedBookController.GetAllByReaderID)
		borrowedBook.GET("/book/:book_id", borrowedBookController.GetAllByBookID)
		borrowedBook.POST("/borrow/:book_id/:reader_id", borrowedBookController.Borrow)
		borrowedBook.POST("/return/:book_id/:reader_id", borrowedBookController.Return)
		borrowedBook.PATCH("/update/:id", borrowedBookController.UpdateBorrowedBook)
		borrowedBook.DELETE("/delete/:id", borrowedBookController.DeleteBorrowedBook)
	}
}
