package models

import (
	"time"

	"gorm.io/gorm"
)

type BookModel struct {
	ID         int            `json:"id" gorm:"primaryKey;autoIncrement"`
	Title      string         `json:"title" gorm:"column:title;type:varchar(255);not null"`
	Author     string         `json:"author" gorm:"column:author;type:varchar(255);not null"`
	Editor     string         `json:"editor" gorm:"column:editor;type:varchar(255)"`
	ISBN       string         `json:"isbn" gorm:"column:isbn;type:varchar(20);uniqueIndex;not null"`
	Length     int            `json:"length" gorm:"column:length"`
	BookcaseId int            `json:"bookcaseId" gorm:"column:bookcase_id;not null"`
	Bookcase   *BookcaseModel `json:"bookcase,omitempty" gorm:"foreignKey:BookcaseId;references:ID"`
	Genres     []GenreModel   `json:"genres,omitempty" gorm:"many2many:book_genres"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
