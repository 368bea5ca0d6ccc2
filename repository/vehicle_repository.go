package repository

import (
	"gorm.io/gorm"

	"github.com/janebaby34221-collab/Superapp/entity"
)

type VehicleRepository struct {
	DB *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{DB: db}
}

func (r *VehicleRepository) Create(v *entity.Vehicle) error {
	return r.DB.Create(v).Error
}

func (r *VehicleRepository) FindByID(id uint) (*entity.Vehicle, error) {
	var v entity.Vehicle
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns vehicles newest first; activeOnly filters to active ones,
// which is what regular users get.
func (r *VehicleRepository) List(activeOnly bool) ([]entity.Vehicle, error) {
	q := r.DB.Order("created_at DESC, id DESC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var vehicles []entity.Vehicle
	if err := q.Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}
