package services

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BiblioTrack/BiblioTrack-Backend/src/apperrors"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/dtos"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Cache entry
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

type BookService struct {
	db    *gorm.DB
	cache map[string]*CacheEntry
	mutex sync.RWMutex
}

func NewBookService(db *gorm.DB) *BookService {
	service := &BookService{
		db:    db,
		cache: make(map[string]*CacheEntry),
	}

	// Clean up cache every 30 minutes
	go service.cleanupCache()

	return service
}

func (s *BookService) cleanupCache() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, entry := range s.cache {
			if now.After(entry.ExpiresAt) {
				delete(s.cache, key)
			}
		}
		s.mutex.Unlock()
	}
}

func (s *BookService) setCache(key string, data interface{}, duration time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache[key] = &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(duration),
	}
}

func (s *BookService) getCache(key string) (interface{}, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.cache[key]
	if !exists || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Data, true
}

// InvalidateBookCache drops the cached list and the cached entry of a
// single book. Called by this service and by BorrowedBookService after
// instance counts change.
func (s *BookService) InvalidateBookCache(bookId int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.cache, "all_books")
	delete(s.cache, fmt.Sprintf("book_%d", bookId))
}

// GetAllBooks retrieves all Book records from the database
func (s *BookService) GetAllBooks() ([]models.BookModel, error) {
	if cached, found := s.getCache("all_books"); found {
		return cached.([]models.BookModel), nil
	}

	var books []models.BookModel
	result := s.db.Find(&books)
	if result.Error != nil {
		return nil, result.Error
	}

	s.setCache("all_books", books, 5*time.Minute)

	return books, nil
}

// GetBookByID retrieves a Book record by its ID
func (s *BookService) GetBookByID(id int) (*models.BookModel, error) {
	cacheKey := fmt.Sprintf("book_%d", id)
	if cached, found := s.getCache(cacheKey); found {
		book := cached.(models.BookModel)
		return &book, nil
	}

	var book models.BookModel
	result := s.db.First(&book, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("book with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, result.Error
	}

	s.setCache(cacheKey, book, 5*time.Minute)

	return &book, nil
}

// CreateBook creates a new Book record and returns its ID
func (s *BookService) CreateBook(newBook *dtos.BookCreateDTO) (int, error) {
	book := newBook.ToModel()
	result := s.db.Create(book)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("book with isbn %s: %w", book.Isbn, apperrors.ErrConflict)
		}
		return 0, result.Error
	}

	s.InvalidateBookCache(book.Id)

	return book.Id, nil
}

// UpdateBook applies a partial update to an existing Book record.
// Only the fields present in the DTO are changed.
func (s *BookService) UpdateBook(id int, bookOnUpdate *dtos.BookUpdateDTO) (*models.BookModel, error) {
	var book models.BookModel
	if err := s.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("book with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}

	bookOnUpdate.ApplyTo(&book)

	if err := s.db.Save(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("book with isbn %s: %w", book.Isbn, apperrors.ErrConflict)
		}
		return nil, err
	}

	s.InvalidateBookCache(id)

	return &book, nil
}

// DeleteBook deletes a Book record by its ID
func (s *BookService) DeleteBook(id int) error {
	var book models.BookModel
	if err := s.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("book with id %d: %w", id, apperrors.ErrNotFound)
		}
		return err
	}

	if err := s.db.Delete(&models.BookModel{}, id).Error; err != nil {
		return err
	}

	s.InvalidateBookCache(id)

	return nil
}

// IncreaseInstances adds n available instances to a book.
func (s *BookService) IncreaseInstances(id int, n int) error {
	if err := s.increaseInstances(s.db, id, n); err != nil {
		return err
	}
	s.InvalidateBookCache(id)
	return nil
}

// DecreaseInstances removes n available instances from a book. The
// count never goes negative: the decrement only applies when at least
// n instances are available.
func (s *BookService) DecreaseInstances(id int, n int) error {
	if err := s.decreaseInstances(s.db, id, n); err != nil {
		return err
	}
	s.InvalidateBookCache(id)
	return nil
}

func (s *BookService) increaseInstances(tx *gorm.DB, id int, n int) error {
	result := tx.Model(&models.BookModel{}).
		Where("id = ?", id).
		Update("instances", gorm.Expr("instances + ?", n))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("book with id %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (s *BookService) decreaseInstances(tx *gorm.DB, id int, n int) error {
	// Conditional update: the WHERE guard makes check-and-decrement a
	// single atomic statement, so concurrent borrows cannot oversell.
	result := tx.Model(&models.BookModel{}).
		Where("id = ? AND instances >= ?", id, n).
		Update("instances", gorm.Expr("instances - ?", n))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.BookModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("book with id %d: %w", id, apperrors.ErrNotFound)
		}
		return fmt.Errorf("book with id %d: %w", id, apperrors.ErrNoInstances)
	}
	return nil
}

// ImportBooksFromExcel loads books from an uploaded workbook. Rows are
// processed independently: a bad row is reported and skipped, the rest
// of the file still imports. Expected columns: title, author, publish
// year, ISBN, instances, description.
func (s *BookService) ImportBooksFromExcel(r io.Reader) (*dtos.BookImportResultDTO, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", sheets[0], err)
	}

	result := &dtos.BookImportResultDTO{Imported: 0, Errors: []string{}}

	for i, row := range rows {
		// Skip the header row
		if i == 0 {
			continue
		}
		rowNum := i + 1

		if len(row) < 5 {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: expected at least 5 columns", rowNum))
			continue
		}

		title := strings.TrimSpace(row[0])
		author := strings.TrimSpace(row[1])
		isbn := strings.TrimSpace(row[3])
		if title == "" || author == "" || isbn == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: title, author and isbn are required", rowNum))
			continue
		}

		publishYear, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil || publishYear < 1 {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid publish year %q", rowNum, row[2]))
			continue
		}

		instances, err := strconv.Atoi(strings.TrimSpace(row[4]))
		if err != nil || instances < 1 {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid instances %q", rowNum, row[4]))
			continue
		}

		description := ""
		if len(row) > 5 {
			description = strings.TrimSpace(row[5])
		}

		book := models.BookModel{
			Title:       title,
			Author:      author,
			PublishYear: publishYear,
			Isbn:        isbn,
			Instances:   instances,
			Description: description,
		}
		if err := s.db.Create(&book).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: isbn %s already exists", rowNum, isbn))
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			}
			continue
		}

		result.Imported++
	}

	if result.Imported > 0 {
		s.mutex.Lock()
		delete(s.cache, "all_books")
		s.mutex.Unlock()
	}

	return result, nil
}
