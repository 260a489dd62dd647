package seed

import (
	"log"
	"os"

	"github.com/BiblioTrack/BiblioTrack-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Seed(db *gorm.DB) {
	// Admin user
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@library.local"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin"
	}

	var user models.UserModel
	result := db.Where("email = ?", adminEmail).First(&user)
	if result.Error == nil {
		log.Printf("User %q already exists\n", adminEmail)
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)

		newUser := models.UserModel{
			Email:    adminEmail,
			Password: string(hashedPassword),
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("Failed to create user: %v\n", err)
		} else {
			log.Printf("User %q created\n", adminEmail)
		}
	}

	// Starter catalog, only on an empty books table
	var bookCount int64
	if err := db.Model(&models.BookModel{}).Count(&bookCount).Error; err != nil {
		log.Printf("Failed to count books: %v\n", err)
		return
	}
	if bookCount > 0 {
		log.Println("Books table already populated, skipping catalog seed")
		return
	}

	starterBooks := []models.BookModel{
		{Title: "The Go Programming Language", Author: "Alan A. A. Donovan", PublishYear: 2015, Isbn: "978-0134190440", Instances: 3},
		{Title: "Clean Architecture", Author: "Robert C. Martin", PublishYear: 2017, Isbn: "978-0134494166", Instances: 2},
		{Title: "Designing Data-Intensive Applications", Author: "Martin Kleppmann", PublishYear: 2017, Isbn: "978-1449373320", Instances: 2},
	}
	for _, book := range starterBooks {
		if err := db.Create(&book).Error; err != nil {
			log.Printf("Failed to create book %q: %v\n", book.Title, err)
		} else {
			log.Printf("Book %q created\n", book.Title)
		}
	}
}
