package services

import (
	"errors"
	"fmt"

	"github.com/BiblioTrack/BiblioTrack-Backend/src/apperrors"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/dtos"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/models"
	"gorm.io/gorm"
)

type ReaderService struct {
	db *gorm.DB
}

// NewReaderService creates a new instance of ReaderService
func NewReaderService(db *gorm.DB) *ReaderService {
	return &ReaderService{db: db}
}

// GetAllReaders retrieves all Reader records from the database
func (s *ReaderService) GetAllReaders() ([]models.ReaderModel, error) {
	var readers []models.ReaderModel
	result := s.db.Find(&readers)
	if result.Error != nil {
		return nil, result.Error
	}
	return readers, nil
}

// GetReaderByID retrieves a Reader record by its ID
func (s *ReaderService) GetReaderByID(id int) (*models.ReaderModel, error) {
	var reader models.ReaderModel
	result := s.db.First(&reader, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reader with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, result.Error
	}
	return &reader, nil
}

// CreateReader creates a new Reader record and returns its ID
func (s *ReaderService) CreateReader(newReader *dtos.ReaderCreateDTO) (int, error) {
	reader := newReader.ToModel()
	result := s.db.Create(reader)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("reader with email %s: %w", reader.Email, apperrors.ErrConflict)
		}
		return 0, result.Error
	}
	return reader.Id, nil
}

// UpdateReader applies a partial update to an existing Reader record.
// Only the fields present in the DTO are changed.
func (s *ReaderService) UpdateReader(id int, readerOnUpdate *dtos.ReaderUpdateDTO) (*models.ReaderModel, error) {
	var reader models.ReaderModel
	if err := s.db.First(&reader, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reader with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}

	readerOnUpdate.ApplyTo(&reader)

	if err := s.db.Save(&reader).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("reader with email %s: %w", reader.Email, apperrors.ErrConflict)
		}
		return nil, err
	}

	return &reader, nil
}

// DeleteReader deletes a Reader record by its ID
func (s *ReaderService) DeleteReader(id int) error {
	var reader models.ReaderModel
	if err := s.db.First(&reader, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("reader with id %d: %w", id, apperrors.ErrNotFound)
		}
		return err
	}

	return s.db.Delete(&models.ReaderModel{}, id).Error
}
