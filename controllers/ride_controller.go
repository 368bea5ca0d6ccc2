package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/janebaby34221-collab/Superapp/entity"
	"github.com/janebaby34221-collab/Superapp/pkg/resp"
	"github.com/janebaby34221-collab/Superapp/services"
	"github.com/janebaby34221-collab/Superapp/utils"
)

type CreateRideRequest struct {
	Origin      string   `json:"origin" binding:"required"`
	Destination string   `json:"destination" binding:"required"`
	OriginLat   *float64 `json:"originLat"`
	OriginLng   *float64 `json:"originLng"`
	DestLat     *float64 `json:"destLat"`
	DestLng     *float64 `json:"destLng"`
	VehicleID   *uint    `json:"vehicleId"`
}

type UpdateRideStatusRequest struct {
	Status entity.RideStatus `json:"status" binding:"required"`
}

type RideController struct {
	rides *services.RideService
}

func NewRideController(rides *services.RideService) *RideController {
	return &RideController{rides: rides}
}

func rideID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid ride id")
		return 0, false
	}
	return uint(id), true
}

// POST /rides
func (r *RideController) Create(c *gin.Context) {
	var req CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ride, err := r.rides.Create(utils.CurrentUserID(c), services.CreateRideInput{
		Origin:      req.Origin,
		Destination: req.Destination,
		OriginLat:   req.OriginLat,
		OriginLng:   req.OriginLng,
		DestLat:     req.DestLat,
		DestLng:     req.DestLng,
		VehicleID:   req.VehicleID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, ride)
}

// GET /rides — caller's rides, newest first
func (r *RideController) ListMine(c *gin.Context) {
	rides, err := r.rides.ListMine(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rides)
}

// GET /rides/all (admin) — every ride with relations
func (r *RideController) ListAll(c *gin.Context) {
	rides, err := r.rides.ListAll()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rides)
}

// GET /rides/:id
func (r *RideController) Detail(c *gin.Context) {
	id, ok := rideID(c)
	if !ok {
		return
	}

	ride, err := r.rides.Get(id, utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, ride)
}

// PATCH /rides/:id/status
func (r *RideController) UpdateStatus(c *gin.Context) {
	id, ok := rideID(c)
	if !ok {
		return
	}

	var req UpdateRideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "status required")
		return
	}

	ride, err := r.rides.UpdateStatus(id, req.Status, utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, ride)
}
