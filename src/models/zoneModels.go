package models

import (
	"time"

	"gorm.io/gorm"
)

type ZoneModel struct {
	ID        int            `json:"id" gorm:"primaryKey;autoIncrement"`
	Number    int            `json:"number" gorm:"column:number;not null"`
	Capacity  int            `json:"capacity" gorm:"column:capacity;not null"`
	GenreName string         `json:"genreName" gorm:"column:genre_name;type:varchar(255);not null"`
	FloorId   int            `json:"floorId" gorm:"column:floor_id;not null"`
	Floor     *FloorModel    `json:"floor,omitempty" gorm:"foreignKey:FloorId;references:ID"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
