package services

import (
	"testing"

	"github.com/BiblioTrack/BiblioTrack-Backend/src/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection so every session sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.BookModel{},
		&models.ReaderModel{},
		&models.BorrowedBookModel{},
		&models.UserModel{},
	))

	return db
}

func createTestBook(t *testing.T, db *gorm.DB, isbn string, instances int) *models.BookModel {
	t.Helper()

	book := models.BookModel{
		Title:       "Test Book " + isbn,
		Author:      "Test Author",
		PublishYear: 2020,
		Isbn:        isbn,
		Instances:   instances,
	}
	require.NoError(t, db.Create(&book).Error)

	return &book
}

func createTestReader(t *testing.T, db *gorm.DB, email string) *models.ReaderModel {
	t.Helper()

	reader := models.ReaderModel{
		Name:  "Test Reader",
		Email: email,
	}
	require.NoError(t, db.Create(&reader).Error)

	return &reader
}
