package main

import (
	"log"
	"os"

	"github.com/BiblioTrack/BiblioTrack-Backend/src/db"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/middleware"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/models"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/routes"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/seed"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.BookModel{},
		&models.ReaderModel{},
		&models.BorrowedBookModel{},
		&models.UserModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Seed admin user and starter catalog
	seed.Seed(db)

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	secretKey := os.Getenv("JWT_SECRET_KEY")
	if secretKey == "" {
		log.Println("JWT_SECRET_KEY is not set, using an insecure development default")
		secretKey = "dev-secret-key"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.SetupCORS())

	// Services setup
	userService := services.NewUserService(db, secretKey)
	bookService := services.NewBookService(db)
	readerService := services.NewReaderService(db)
	borrowedBookService := services.NewBorrowedBookService(db, bookService)

	// Routes setup
	auth := middleware.AuthMiddleware(secretKey, userService)
	routes.SetupUserRoutes(router, userService)
	routes.SetupBookRoutes(router, bookService, auth)
	routes.SetupReaderRoutes(router, readerService, auth)
	routes.SetupBorrowedBookRoutes(router, borrowedBookService, auth)

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
