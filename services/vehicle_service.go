package services

import (
	"github.com/janebaby34221-collab/Superapp/entity"
	"github.com/janebaby34221-collab/Superapp/repository"
)

type VehicleService struct {
	vehicles *repository.VehicleRepository
}

func NewVehicleService(vehicles *repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

func (s *VehicleService) Create(vtype, plate, driver string) (*entity.Vehicle, error) {
	v := &entity.Vehicle{
		Type:   vtype,
		Plate:  plate,
		Driver: driver,
		Active: true,
	}
	if err := s.vehicles.Create(v); err != nil {
		return nil, err
	}
	return v, nil
}

// List shows everything to admins and only active vehicles to users.
func (s *VehicleService) List(role entity.Role) ([]entity.Vehicle, error) {
	activeOnly := !role.AtLeast(entity.RoleAdmin)
	return s.vehicles.List(activeOnly)
}

// Nearby is a location stub: vehicles carry no coordinates yet, so every
// active vehicle is "nearby". TODO: store vehicle positions and filter by
// the haversine distance.
func (s *VehicleService) Nearby() ([]entity.Vehicle, error) {
	return s.vehicles.List(true)
}
