package dtos

import (
	"time"

	"github.com/BiblioTrack/BiblioTrack-Backend/src/models"
)

// BorrowedBookUpdateDTO patches the dates of an existing loan record.
// Administrative corrections only; borrowing and returning go through
// the dedicated workflow endpoints.
type BorrowedBookUpdateDTO struct {
	BorrowAt *time.Time `json:"borrowAt"`
	ReturnAt *time.Time `json:"returnAt"`
}

func (d *BorrowedBookUpdateDTO) ApplyTo(borrowedBook *models.BorrowedBookModel) {
	if d.BorrowAt != nil {
		borrowedBook.BorrowAt = *d.BorrowAt
	}
	if d.ReturnAt != nil {
		borrowedBook.ReturnAt = d.ReturnAt
	}
}
