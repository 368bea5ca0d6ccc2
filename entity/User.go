package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     Role   `gorm:"type:text;not null;default:USER" json:"role"`

	// Relations — preload only when needed
	Rides    []Ride    `json:"-"`
	Payments []Payment `json:"-"`
}
