package services

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/janebaby34221-collab/Superapp/entity"
)

// openTestDB gives each test its own in-memory database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Vehicle{}, &entity.Ride{}, &entity.Payment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, role entity.Role) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw123456"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &entity.User{Email: email, Password: string(hash), Name: "Test", Role: role}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createRide(t *testing.T, db *gorm.DB, userID uint) *entity.Ride {
	t.Helper()
	ride := &entity.Ride{Origin: "A", Destination: "B", Status: entity.RidePending, UserID: userID}
	if err := db.Create(ride).Error; err != nil {
		t.Fatalf("create ride: %v", err)
	}
	return ride
}
