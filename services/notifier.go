package services

import "github.com/janebaby34221-collab/Superapp/entity"

// StatusNotifier receives every ride-status change. The WebSocket hub
// implements it; a nil notifier is allowed and simply drops events.
type StatusNotifier interface {
	RideStatusChanged(ride *entity.Ride)
}
