package dtos

import "github.com/BiblioTrack/BiblioTrack-Backend/src/models"

type ReaderCreateDTO struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func (d *ReaderCreateDTO) ToModel() *models.ReaderModel {
	return &models.ReaderModel{
		Name:  d.Name,
		Email: d.Email,
	}
}

type ReaderUpdateDTO struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

func (d *ReaderUpdateDTO) ApplyTo(reader *models.ReaderModel) {
	if d.Name != nil {
		reader.Name = *d.Name
	}
	if d.Email != nil {
		reader.Email = *d.Email
	}
}
