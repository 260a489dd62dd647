package dtos

import "github.com/BiblioTrack/BiblioTrack-Backend/src/models"

// BookCreateDTO carries the fields required to register a new title.
type BookCreateDTO struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	PublishYear int    `json:"publishYear" binding:"required,gte=1"`
	Isbn        string `json:"isbn" binding:"required"`
	Instances   int    `json:"instances" binding:"required,gte=1"`
	Description string `json:"description"`
}

func (d *BookCreateDTO) ToModel() *models.BookModel {
	return &models.BookModel{
		Title:       d.Title,
		Author:      d.Author,
		PublishYear: d.PublishYear,
		Isbn:        d.Isbn,
		Instances:   d.Instances,
		Description: d.Description,
	}
}

// BookUpdateDTO is a partial update: only non-nil fields are applied
// to the stored record, everything else is left untouched.
type BookUpdateDTO struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	PublishYear *int    `json:"publishYear" binding:"omitempty,gte=1"`
	Isbn        *string `json:"isbn"`
	Instances   *int    `json:"instances" binding:"omitempty,gte=0"`
	Description *string `json:"description"`
}

func (d *BookUpdateDTO) ApplyTo(book *models.BookModel) {
	if d.Title != nil {
		book.Title = *d.Title
	}
	if d.Author != nil {
		book.Author = *d.Author
	}
	if d.PublishYear != nil {
		book.PublishYear = *d.PublishYear
	}
	if d.Isbn != nil {
		book.Isbn = *d.Isbn
	}
	if d.Instances != nil {
		book.Instances = *d.Instances
	}
	if d.Description != nil {
		book.Description = *d.Description
	}
}

// BookImportResultDTO summarizes an Excel catalog import.
type BookImportResultDTO struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}
