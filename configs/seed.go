package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/janebaby34221-collab/Superapp/entity"
)

// SeedSuperadmin bootstraps the reserved main account on first start.
func SeedSuperadmin(db *gorm.DB, cfg *Config) error {
	if cfg.SuperadminEmail == "" || cfg.SuperadminPassword == "" {
		log.Println("⚠️ skip seeding superadmin: missing SUPERADMIN_EMAIL/SUPERADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.SuperadminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("ℹ️ superadmin already exists:", cfg.SuperadminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SuperadminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	superadmin := entity.User{
		Email:    cfg.SuperadminEmail,
		Password: string(hash),
		Name:     cfg.SuperadminName,
		Phone:    cfg.SuperadminPhone,
		Role:     entity.RoleSuperAdmin,
	}
	if err := db.Create(&superadmin).Error; err != nil {
		return err
	}
	log.Println("🎉 superadmin created:", superadmin.Email)
	return nil
}
