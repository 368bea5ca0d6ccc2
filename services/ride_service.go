package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/janebaby34221-collab/Superapp/entity"
	"github.com/janebaby34221-collab/Superapp/repository"
)

// RideService owns the ride lifecycle. Every status change goes through
// here so the notifier sees all of them.
type RideService struct {
	rides    *repository.RideRepository
	vehicles *repository.VehicleRepository
	notifier StatusNotifier
}

func NewRideService(rides *repository.RideRepository, vehicles *repository.VehicleRepository, notifier StatusNotifier) *RideService {
	return &RideService{rides: rides, vehicles: vehicles, notifier: notifier}
}

type CreateRideInput struct {
	Origin      string
	Destination string
	OriginLat   *float64
	OriginLng   *float64
	DestLat     *float64
	DestLng     *float64
	VehicleID   *uint
}

// Create persists a pending ride owned by the caller. A supplied vehicle
// id must resolve.
func (s *RideService) Create(userID uint, in CreateRideInput) (*entity.Ride, error) {
	if in.VehicleID != nil {
		if _, err := s.vehicles.FindByID(*in.VehicleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidVehicle
			}
			return nil, err
		}
	}

	ride := &entity.Ride{
		Origin:      in.Origin,
		Destination: in.Destination,
		OriginLat:   in.OriginLat,
		OriginLng:   in.OriginLng,
		DestLat:     in.DestLat,
		DestLng:     in.DestLng,
		Status:      entity.RidePending,
		UserID:      userID,
		VehicleID:   in.VehicleID,
	}
	if err := s.rides.Create(ride); err != nil {
		return nil, err
	}
	return ride, nil
}

func (s *RideService) ListMine(userID uint) ([]entity.Ride, error) {
	return s.rides.ListByUser(userID)
}

func (s *RideService) ListAll() ([]entity.Ride, error) {
	return s.rides.ListAll()
}

// Get loads a ride with relations; only the owner or an admin may view it.
func (s *RideService) Get(rideID, requesterID uint, role entity.Role) (*entity.Ride, error) {
	ride, err := s.rides.FindDetail(rideID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if ride.UserID != requesterID && !role.AtLeast(entity.RoleAdmin) {
		return nil, ErrForbidden
	}
	return ride, nil
}

// UpdateStatus overwrites the ride status. The status must come from the
// closed RideStatus set and the requester must own the ride or be an admin.
func (s *RideService) UpdateStatus(rideID uint, status entity.RideStatus, requesterID uint, role entity.Role) (*entity.Ride, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	ride, err := s.rides.FindByID(rideID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if ride.UserID != requesterID && !role.AtLeast(entity.RoleAdmin) {
		return nil, ErrForbidden
	}

	if err := s.rides.UpdateStatus(s.rides.DB, rideID, status); err != nil {
		return nil, err
	}

	// reload so the returned ride and the event carry the new UpdatedAt
	ride, err = s.rides.FindByID(rideID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.RideStatusChanged(ride)
	}
	return ride, nil
}
