package models

import "time"

type BorrowedBookModel struct {
	Id       int          `json:"id" gorm:"primaryKey;autoIncrement"`
	BookId   int          `json:"bookId" gorm:"column:book_id;not null"`
	Book     *BookModel   `json:"book,omitempty" gorm:"foreignKey:BookId;references:Id"`
	ReaderId int          `json:"readerId" gorm:"column:reader_id;not null"`
	Reader   *ReaderModel `json:"reader,omitempty" gorm:"foreignKey:ReaderId;references:Id"`
	BorrowAt time.Time    `json:"borrowAt" gorm:"type:date;not null"`
	ReturnAt *time.Time   `json:"returnAt" gorm:"type:date"`
}
