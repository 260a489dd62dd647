package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/BiblioTrack/BiblioTrack-Backend/src/apperrors"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/dtos"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/models"
	"gorm.io/gorm"
)

// A reader may hold at most this many open loans at a time.
const maxBorrowedBooksPerReader = 3

type BorrowedBookService struct {
	db          *gorm.DB
	bookService *BookService
}

// NewBorrowedBookService creates a new instance of BorrowedBookService.
// bookService handles instance counting and cache invalidation for the
// books touched by borrow/return.
func NewBorrowedBookService(db *gorm.DB, bookService *BookService) *BorrowedBookService {
	return &BorrowedBookService{
		db:          db,
		bookService: bookService,
	}
}

// GetAllBorrowedBooks retrieves all BorrowedBook records from the database
func (s *BorrowedBookService) GetAllBorrowedBooks() ([]models.BorrowedBookModel, error) {
	var borrowedBooks []models.BorrowedBookModel

	result := s.db.
		Preload("Book").
		Preload("Reader").
		Find(&borrowedBooks)

	return borrowedBooks, result.Error
}

// GetBorrowedBookByID retrieves a BorrowedBook record by its ID
func (s *BorrowedBookService) GetBorrowedBookByID(id int) (*models.BorrowedBookModel, error) {
	var borrowedBook models.BorrowedBookModel

	result := s.db.
		Preload("Book").
		Preload("Reader").
		First(&borrowedBook, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("borrowed book with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, result.Error
	}
	return &borrowedBook, nil
}

// GetAllByReaderID retrieves all loans of one reader
func (s *BorrowedBookService) GetAllByReaderID(readerId int) ([]models.BorrowedBookModel, error) {
	var borrowedBooks []models.BorrowedBookModel

	result := s.db.
		Preload("Book").
		Where("reader_id = ?", readerId).
		Find(&borrowedBooks)

	return borrowedBooks, result.Error
}

// GetAllByBookID retrieves all loans of one book
func (s *BorrowedBookService) GetAllByBookID(bookId int) ([]models.BorrowedBookModel, error) {
	var borrowedBooks []models.BorrowedBookModel

	result := s.db.
		Preload("Reader").
		Where("book_id = ?", bookId).
		Find(&borrowedBooks)

	return borrowedBooks, result.Error
}

// Borrow creates an open loan for (reader, book) and takes one
// instance off the book. The whole sequence runs in one transaction:
// either the loan row exists and the count is decremented, or neither
// happened.
func (s *BorrowedBookService) Borrow(bookId int, readerId int) (int, error) {
	var newId int

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// A reader cannot hold the same title twice at once.
		var alreadyBorrowed int64
		if err := tx.Model(&models.BorrowedBookModel{}).
			Where("book_id = ? AND reader_id = ? AND return_at IS NULL", bookId, readerId).
			Count(&alreadyBorrowed).Error; err != nil {
			return err
		}
		if alreadyBorrowed > 0 {
			return fmt.Errorf("reader %d, book %d: %w", readerId, bookId, apperrors.ErrAlreadyBorrowed)
		}

		// Per-reader open-loan limit.
		var openLoans int64
		if err := tx.Model(&models.BorrowedBookModel{}).
			Where("reader_id = ? AND return_at IS NULL", readerId).
			Count(&openLoans).Error; err != nil {
			return err
		}
		if openLoans >= maxBorrowedBooksPerReader {
			return fmt.Errorf("reader %d: %w", readerId, apperrors.ErrTooManyLoans)
		}

		if err := s.bookService.decreaseInstances(tx, bookId, 1); err != nil {
			if errors.Is(err, apperrors.ErrNoInstances) {
				return fmt.Errorf("book %d: %w", bookId, apperrors.ErrUnableToBorrow)
			}
			return err
		}

		borrowedBook := models.BorrowedBookModel{
			BookId:   bookId,
			ReaderId: readerId,
			BorrowAt: time.Now(),
		}
		if err := tx.Create(&borrowedBook).Error; err != nil {
			return err
		}
		newId = borrowedBook.Id

		return nil
	})

	if err != nil {
		return 0, err
	}

	// Availability changed
	s.bookService.InvalidateBookCache(bookId)

	return newId, nil
}

// Return closes the open loan for (reader, book) and puts the
// instance back. Runs in one transaction, like Borrow.
func (s *BorrowedBookService) Return(bookId int, readerId int) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var borrowedBook models.BorrowedBookModel
		err := tx.
			Where("book_id = ? AND reader_id = ? AND return_at IS NULL", bookId, readerId).
			First(&borrowedBook).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// No open loan: distinguish "already returned" from "never borrowed".
			var closedLoans int64
			if err := tx.Model(&models.BorrowedBookModel{}).
				Where("book_id = ? AND reader_id = ? AND return_at IS NOT NULL", bookId, readerId).
				Count(&closedLoans).Error; err != nil {
				return err
			}
			if closedLoans > 0 {
				return fmt.Errorf("reader %d, book %d: %w", readerId, bookId, apperrors.ErrAlreadyReturned)
			}
			return fmt.Errorf("borrowed book for reader %d and book %d: %w", readerId, bookId, apperrors.ErrNotFound)
		}

		if err := s.bookService.increaseInstances(tx, bookId, 1); err != nil {
			return err
		}

		now := time.Now()
		borrowedBook.ReturnAt = &now

		return tx.Save(&borrowedBook).Error
	})

	if err != nil {
		return err
	}

	s.bookService.InvalidateBookCache(bookId)

	return nil
}

// UpdateBorrowedBook patches the dates of a loan record. The patched
// record must keep borrow date strictly before return date.
func (s *BorrowedBookService) UpdateBorrowedBook(id int, borrowedBookOnUpdate *dtos.BorrowedBookUpdateDTO) (*models.BorrowedBookModel, error) {
	var borrowedBook models.BorrowedBookModel
	if err := s.db.First(&borrowedBook, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("borrowed book with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}

	borrowedBookOnUpdate.ApplyTo(&borrowedBook)

	if borrowedBook.ReturnAt != nil && !borrowedBook.BorrowAt.Before(*borrowedBook.ReturnAt) {
		return nil, fmt.Errorf("borrowed book with id %d: %w", id, apperrors.ErrInvalidDateRange)
	}

	if err := s.db.Save(&borrowedBook).Error; err != nil {
		return nil, err
	}

	return &borrowedBook, nil
}

// DeleteBorrowedBook removes a loan record by its ID. This is an
// administrative correction, not a return: instance counts are left
// untouched.
func (s *BorrowedBookService) DeleteBorrowedBook(id int) error {
	var borrowedBook models.BorrowedBookModel
	if err := s.db.First(&borrowedBook, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("borrowed book with id %d: %w", id, apperrors.ErrNotFound)
		}
		return err
	}

	return s.db.Delete(&models.BorrowedBookModel{}, id).Error
}
