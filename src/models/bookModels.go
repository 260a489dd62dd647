package models

type BookModel struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" gorm:"type:varchar(255);not null"`
	Author      string `json:"author" gorm:"type:varchar(255);not null"`
	PublishYear int    `json:"publishYear" gorm:"not null"`
	Isbn        string `json:"isbn" gorm:"type:varchar(32);uniqueIndex;not null"`
	Instances   int    `json:"instances" gorm:"not null;default:1"`
	Description string `json:"description" gorm:"type:text"`
}
