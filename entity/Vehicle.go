package entity

import (
	"gorm.io/gorm"
)

type Vehicle struct {
	gorm.Model
	Type   string `gorm:"not null" json:"type"`
	Plate  string `gorm:"not null" json:"plate"`
	Driver string `json:"driver"`
	Active bool   `gorm:"not null;default:true" json:"active"`

	Rides []Ride `json:"-"`
}
