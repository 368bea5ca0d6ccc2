package repository

import (
	"gorm.io/gorm"

	"github.com/janebaby34221-collab/Superapp/entity"
)

type RideRepository struct {
	DB *gorm.DB
}

func NewRideRepository(db *gorm.DB) *RideRepository {
	return &RideRepository{DB: db}
}

func (r *RideRepository) Create(ride *entity.Ride) error {
	return r.DB.Create(ride).Error
}

func (r *RideRepository) FindByID(id uint) (*entity.Ride, error) {
	var ride entity.Ride
	if err := r.DB.First(&ride, id).Error; err != nil {
		return nil, err
	}
	return &ride, nil
}

// FindDetail loads the ride with its user, vehicle and payments.
func (r *RideRepository) FindDetail(id uint) (*entity.Ride, error) {
	var ride entity.Ride
	err := r.DB.
		Preload("User").
		Preload("Vehicle").
		Preload("Payments").
		First(&ride, id).Error
	if err != nil {
		return nil, err
	}
	return &ride, nil
}

func (r *RideRepository) ListByUser(userID uint) ([]entity.Ride, error) {
	var rides []entity.Ride
	err := r.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rides).Error
	if err != nil {
		return nil, err
	}
	return rides, nil
}

// ListAll is the admin view: every ride with relations joined.
func (r *RideRepository) ListAll() ([]entity.Ride, error) {
	var rides []entity.Ride
	err := r.DB.
		Preload("User").
		Preload("Vehicle").
		Preload("Payments").
		Order("created_at DESC, id DESC").
		Find(&rides).Error
	if err != nil {
		return nil, err
	}
	return rides, nil
}

// UpdateStatus runs inside the caller's transaction when tx is one.
func (r *RideRepository) UpdateStatus(tx *gorm.DB, id uint, status entity.RideStatus) error {
	return tx.Model(&entity.Ride{}).Where("id = ?", id).Update("status", status).Error
}
