package services

import "errors"

// Sentinel errors; controllers map them onto HTTP statuses in one place.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrReservedAccount    = errors.New("reserved account cannot be modified")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidVehicle     = errors.New("invalid vehicleId")
	ErrInvalidRide        = errors.New("invalid rideId")
	ErrInvalidAmount      = errors.New("positive amount required")
)
