package models

import (
	"time"

	"gorm.io/gorm"
)

type FloorModel struct {
	ID          int            `json:"id" gorm:"primaryKey;autoIncrement"`
	FloorNumber int            `json:"floorNumber" gorm:"column:floor_number;uniqueIndex;not null"`
	Capacity    int            `json:"capacity" gorm:"column:capacity;not null"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
