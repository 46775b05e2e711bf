package models

type GenreModel struct {
	ID    int         `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string      `json:"name" gorm:"column:name;type:varchar(255);uniqueIndex;not null"`
	Books []BookModel `json:"-" gorm:"many2many:book_genres"`
}
