package services

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/janebaby34221-collab/Superapp/entity"
	"github.com/janebaby34221-collab/Superapp/repository"
)

func setupRideService(t *testing.T) (*RideService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	rides := repository.NewRideRepository(db)
	vehicles := repository.NewVehicleRepository(db)
	return NewRideService(rides, vehicles, nil), db
}

func TestCreateRidePending(t *testing.T) {
	svc, db := setupRideService(t)
	user := createUser(t, db, "alice@example.com", entity.RoleUser)

	ride, err := svc.Create(user.ID, CreateRideInput{Origin: "A", Destination: "B"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ride.Status != entity.RidePending {
		t.Fatalf("new ride must be pending, got %s", ride.Status)
	}
	if ride.UserID != user.ID {
		t.Fatalf("ride must be owned by the caller")
	}
}

func TestCreateRideUnknownVehicle(t *testing.T) {
	svc, db := setupRideService(t)
	user := createUser(t, db, "alice@example.com", entity.RoleUser)

	bogus := uint(999)
	if _, err := svc.Create(user.ID, CreateRideInput{Origin: "A", Destination: "B", VehicleID: &bogus}); !errors.Is(err, ErrInvalidVehicle) {
		t.Fatalf("expected ErrInvalidVehicle, got %v", err)
	}
}

func TestCreateRideWithVehicle(t *testing.T) {
	svc, db := setupRideService(t)
	user := createUser(t, db, "alice@example.com", entity.RoleUser)
	v := &entity.Vehicle{Type: "sedan", Plate: "AB-123", Active: true}
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create vehicle: %v", err)
	}

	ride, err := svc.Create(user.ID, CreateRideInput{Origin: "A", Destination: "B", VehicleID: &v.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ride.VehicleID == nil || *ride.VehicleID != v.ID {
		t.Fatal("vehicle reference not persisted")
	}
}

func TestGetRideOwnership(t *testing.T) {
	svc, db := setupRideService(t)
	owner := createUser(t, db, "alice@example.com", entity.RoleUser)
	stranger := createUser(t, db, "bob@example.com", entity.RoleUser)
	admin := createUser(t, db, "carol@example.com", entity.RoleAdmin)
	ride := createRide(t, db, owner.ID)

	if _, err := svc.Get(ride.ID, owner.ID, owner.Role); err != nil {
		t.Fatalf("owner must see own ride: %v", err)
	}
	if _, err := svc.Get(ride.ID, stranger.ID, stranger.Role); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(ride.ID, admin.ID, admin.Role); err != nil {
		t.Fatalf("admin must see any ride: %v", err)
	}
	if _, err := svc.Get(999, owner.ID, owner.Role); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateStatusForbiddenForStrangers(t *testing.T) {
	svc, db := setupRideService(t)
	owner := createUser(t, db, "alice@example.com", entity.RoleUser)
	stranger := createUser(t, db, "bob@example.com", entity.RoleUser)
	ride := createRide(t, db, owner.ID)

	if _, err := svc.UpdateStatus(ride.ID, entity.RideCompleted, stranger.ID, stranger.Role); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	var got entity.Ride
	db.First(&got, ride.ID)
	if got.Status != entity.RidePending {
		t.Fatalf("status must be untouched, got %s", got.Status)
	}
}

func TestUpdateStatusByOwnerAndAdmin(t *testing.T) {
	svc, db := setupRideService(t)
	owner := createUser(t, db, "alice@example.com", entity.RoleUser)
	admin := createUser(t, db, "carol@example.com", entity.RoleAdmin)
	ride := createRide(t, db, owner.ID)

	updated, err := svc.UpdateStatus(ride.ID, entity.RideAccepted, owner.ID, owner.Role)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Status != entity.RideAccepted {
		t.Fatalf("got %s", updated.Status)
	}

	if _, err := svc.UpdateStatus(ride.ID, entity.RideCancelled, admin.ID, admin.Role); err != nil {
		t.Fatalf("admin update: %v", err)
	}
	var got entity.Ride
	db.First(&got, ride.ID)
	if got.Status != entity.RideCancelled {
		t.Fatalf("status not persisted, got %s", got.Status)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, db := setupRideService(t)
	owner := createUser(t, db, "alice@example.com", entity.RoleUser)
	ride := createRide(t, db, owner.ID)

	if _, err := svc.UpdateStatus(ride.ID, "teleported", owner.ID, owner.Role); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestListMineNewestFirst(t *testing.T) {
	svc, db := setupRideService(t)
	owner := createUser(t, db, "alice@example.com", entity.RoleUser)
	other := createUser(t, db, "bob@example.com", entity.RoleUser)
	first := createRide(t, db, owner.ID)
	second := createRide(t, db, owner.ID)
	createRide(t, db, other.ID)

	rides, err := svc.ListMine(owner.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rides) != 2 {
		t.Fatalf("expected 2 rides, got %d", len(rides))
	}
	if rides[0].ID != second.ID || rides[1].ID != first.ID {
		t.Fatalf("not newest first: %d, %d", rides[0].ID, rides[1].ID)
	}
}
