package entity

// RideStatus is the closed set of ride states. Status updates outside this
// set are rejected at the boundary.
type RideStatus string

const (
	RidePending    RideStatus = "pending"
	RideAccepted   RideStatus = "accepted"
	RideInProgress RideStatus = "in_progress"
	RideCompleted  RideStatus = "completed"
	RideCancelled  RideStatus = "cancelled"
)

func (s RideStatus) Valid() bool {
	switch s {
	case RidePending, RideAccepted, RideInProgress, RideCompleted, RideCancelled:
		return true
	}
	return false
}
