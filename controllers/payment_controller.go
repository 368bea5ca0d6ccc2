package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janebaby34221-collab/Superapp/pkg/resp"
	"github.com/janebaby34221-collab/Superapp/services"
	"github.com/janebaby34221-collab/Superapp/utils"
)

type CreatePaymentRequest struct {
	RideID   uint    `json:"rideId" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"`
}

type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// POST /payments
func (p *PaymentController) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	payment, qrPayload, err := p.payments.Create(
		utils.CurrentUserID(c), utils.CurrentRole(c),
		req.RideID, req.Amount, req.Currency, req.Method,
	)
	if err != nil {
		fail(c, err)
		return
	}

	body := gin.H{"ok": true, "payment": payment}
	if qrPayload != "" {
		body["qrPayload"] = qrPayload
	}
	c.JSON(http.StatusCreated, body)
}
