package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/BiblioTrack/BiblioTrack-Backend/src/apperrors"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db        *gorm.DB
	secretKey string
}

// NewUserService creates a new instance of UserService. secretKey
// signs the access tokens issued by AuthenticateUser.
func NewUserService(db *gorm.DB, secretKey string) *UserService {
	return &UserService{db: db, secretKey: secretKey}
}

// RegisterUser creates a new User record with a hashed password and
// returns its ID
func (s *UserService) RegisterUser(email, password string) (int, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := models.UserModel{
		Email:    email,
		Password: string(hashedPassword),
	}
	result := s.db.Create(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("user with email %s: %w", email, apperrors.ErrConflict)
		}
		return 0, result.Error
	}

	return user.Id, nil
}

// GetUserByID retrieves a User record by its ID
func (s *UserService) GetUserByID(id int) (*models.UserModel, error) {
	var user models.UserModel
	result := s.db.First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, result.Error
	}
	return &user, nil
}

// AuthenticateUser checks user credentials and returns a signed JWT
// access token if valid
func (s *UserService) AuthenticateUser(email, password string) (string, error) {
	var user models.UserModel
	result := s.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("user with email %s: %w", email, apperrors.ErrNotFound)
		}
		return "", result.Error
	}

	// Compare the provided password with the hashed password in the database
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("user with email %s: %w", email, apperrors.ErrInvalidPassword)
	}

	claims := jwt.MapClaims{
		"user_id": user.Id,
		"exp":     time.Now().Add(time.Hour).Unix(), // Token expires in 1 hour
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
