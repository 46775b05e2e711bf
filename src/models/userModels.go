package models

import (
	"time"

	"gorm.io/gorm"
)

type UserModel struct {
	Id        int            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string         `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Email     string         `json:"email" gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
