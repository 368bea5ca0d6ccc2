package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/janebaby34221-collab/Superapp/pkg/resp"
	"github.com/janebaby34221-collab/Superapp/services"
)

// fail maps service sentinel errors to the HTTP taxonomy. Anything
// unexpected becomes a generic 500 so internals never leak.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrReservedAccount):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		resp.Conflict(c, err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		resp.Conflict(c, "duplicate record")
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidVehicle),
		errors.Is(err, services.ErrInvalidRide),
		errors.Is(err, services.ErrInvalidAmount):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, errors.New("internal server error"))
	}
}
