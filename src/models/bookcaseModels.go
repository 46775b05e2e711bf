package models

import (
	"time"

	"gorm.io/gorm"
)

type BookcaseModel struct {
	ID        int            `json:"id" gorm:"primaryKey;autoIncrement"`
	Number    int            `json:"number" gorm:"column:number;not null"`
	Capacity  int            `json:"capacity" gorm:"column:capacity;not null"`
	ZoneId    int            `json:"zoneId" gorm:"column:zone_id;not null"`
	Zone      *ZoneModel     `json:"zone,omitempty" gorm:"foreignKey:ZoneId;references:ID"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
