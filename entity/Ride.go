package entity

import (
	"gorm.io/gorm"
)

type Ride struct {
	gorm.Model
	Origin      string     `gorm:"not null" json:"origin"`
	Destination string     `gorm:"not null" json:"destination"`
	OriginLat   *float64   `json:"originLat,omitempty"`
	OriginLng   *float64   `json:"originLng,omitempty"`
	DestLat     *float64   `json:"destLat,omitempty"`
	DestLng     *float64   `json:"destLng,omitempty"`
	Status      RideStatus `gorm:"type:text;not null;default:pending" json:"status"`

	UserID uint  `json:"userId"`
	User   *User `json:"user,omitempty"`

	VehicleID *uint    `json:"vehicleId"`
	Vehicle   *Vehicle `json:"vehicle,omitempty"`

	// preload for detail and admin listing only
	Payments []Payment `json:"payments,omitempty"`
}
