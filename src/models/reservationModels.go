package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationModel is a queueing intent only: it never holds bookcase capacity
// and is soft-deleted on cancel so the timeline keeps the record.
type ReservationModel struct {
	Id        string         `json:"id" gorm:"primaryKey;type:uuid"`
	BookId    int            `json:"bookId" gorm:"column:book_id;not null"`
	Book      *BookModel     `json:"book,omitempty" gorm:"foreignKey:BookId;references:ID"`
	UserId    int            `json:"userId" gorm:"column:user_id;not null"`
	User      *UserModel     `json:"user,omitempty" gorm:"foreignKey:UserId;references:Id"`
	Expedit   *time.Time     `json:"expedit" gorm:"column:expedit"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"deletedAt" gorm:"index"`
}

func (r *ReservationModel) BeforeCreate(tx *gorm.DB) error {
	if r.Id == "" {
		r.Id = uuid.NewString()
	}
	return nil
}
