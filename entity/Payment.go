package entity

import (
	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	Ref      string        `gorm:"uniqueIndex;not null" json:"ref"`
	Amount   float64       `json:"amount"`
	Currency string        `gorm:"not null;default:USD" json:"currency"`
	Method   string        `gorm:"not null;default:QR" json:"method"`
	Status   PaymentStatus `gorm:"type:text;not null;default:pending" json:"status"`

	UserID uint `json:"userId"`

	RideID uint  `json:"rideId"`
	Ride   *Ride `json:"-"`
}
