package repository

import (
	"gorm.io/gorm"

	"github.com/janebaby34221-collab/Superapp/entity"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(p *entity.Payment) error {
	return r.DB.Create(p).Error
}

func (r *PaymentRepository) FindByID(id uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) UpdateStatus(tx *gorm.DB, id uint, status entity.PaymentStatus) error {
	return tx.Model(&entity.Payment{}).Where("id = ?", id).Update("status", status).Error
}
