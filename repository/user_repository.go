package repository

import (
	"gorm.io/gorm"

	"github.com/janebaby34221-collab/Superapp/entity"
)

// UserRepository owns all access to the users table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListNewestFirst returns every account, most recent first.
func (r *UserRepository) ListNewestFirst() ([]entity.User, error) {
	var users []entity.User
	if err := r.DB.Order("created_at DESC, id DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) UpdateRole(id uint, role entity.Role) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Update("role", role).Error
}

// Delete removes the row for good; a soft delete would keep the unique
// email index occupied and block re-registration.
func (r *UserRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.User{}, id).Error
}
