package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/janebaby34221-collab/Superapp/pkg/resp"
	"github.com/janebaby34221-collab/Superapp/services"
	"github.com/janebaby34221-collab/Superapp/utils"
)

type CreateVehicleRequest struct {
	Type   string `json:"type" binding:"required"`
	Plate  string `json:"plate" binding:"required"`
	Driver string `json:"driver"`
}

type VehicleController struct {
	vehicles *services.VehicleService
}

func NewVehicleController(vehicles *services.VehicleService) *VehicleController {
	return &VehicleController{vehicles: vehicles}
}

// POST /vehicles (admin)
func (v *VehicleController) Create(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	vehicle, err := v.vehicles.Create(req.Type, req.Plate, req.Driver)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, vehicle)
}

// GET /vehicles — admins see all, users only active ones
func (v *VehicleController) List(c *gin.Context) {
	vehicles, err := v.vehicles.List(utils.CurrentRole(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, vehicles)
}

// GET /nearby-vehicles?lat=&lng=&radiusKm=
func (v *VehicleController) Nearby(c *gin.Context) {
	if _, err := strconv.ParseFloat(c.Query("lat"), 64); err != nil {
		resp.BadRequest(c, "lat & lng required")
		return
	}
	if _, err := strconv.ParseFloat(c.Query("lng"), 64); err != nil {
		resp.BadRequest(c, "lat & lng required")
		return
	}

	radiusKm := 5.0
	if r, err := strconv.ParseFloat(c.Query("radiusKm"), 64); err == nil {
		radiusKm = r
	}

	vehicles, err := v.vehicles.Nearby()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"radiusKm": radiusKm, "vehicles": vehicles})
}
