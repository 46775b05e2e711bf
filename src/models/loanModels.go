package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoanModel struct {
	Id         string     `json:"id" gorm:"primaryKey;type:uuid"`
	BookId     int        `json:"bookId" gorm:"column:book_id;not null"`
	Book       *BookModel `json:"book,omitempty" gorm:"foreignKey:BookId;references:ID"`
	UserId     int        `json:"userId" gorm:"column:user_id;not null"`
	User       *UserModel `json:"user,omitempty" gorm:"foreignKey:UserId;references:Id"`
	DueDate    time.Time  `json:"dueDate" gorm:"column:due_date;not null"`
	IsActive   bool       `json:"isActive" gorm:"column:is_active;not null"`
	ReturnedAt *time.Time `json:"returnedAt" gorm:"column:returned_at"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// BeforeCreate assigns the UUID primary key on insert
func (l *LoanModel) BeforeCreate(tx *gorm.DB) error {
	if l.Id == "" {
		l.Id = uuid.NewString()
	}
	return nil
}
