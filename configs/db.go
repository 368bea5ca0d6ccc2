package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/janebaby34221-collab/Superapp/entity"
)

// ConnectDB opens the sqlite database. The handle is safe for concurrent
// use and is passed explicitly to whoever needs it; there is no package
// global.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{TranslateError: true})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Vehicle{},
		&entity.Ride{},
		&entity.Payment{},
	)
}
