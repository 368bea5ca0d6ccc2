package services

import (
	"encoding/json"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/janebaby34221-collab/Superapp/entity"
	"github.com/janebaby34221-collab/Superapp/repository"
)

// PaymentService is a settlement stub. QR payments stay pending and hand
// the client a payload to render; any other method settles on the spot.
type PaymentService struct {
	db       *gorm.DB
	payments *repository.PaymentRepository
	rides    *repository.RideRepository
	notifier StatusNotifier
}

func NewPaymentService(db *gorm.DB, payments *repository.PaymentRepository, rides *repository.RideRepository, notifier StatusNotifier) *PaymentService {
	return &PaymentService{db: db, payments: payments, rides: rides, notifier: notifier}
}

// QRPayload is the unsigned blob the client turns into a QR code. It
// proves nothing about settlement.
type QRPayload struct {
	PaymentID uint    `json:"paymentId"`
	Ref       string  `json:"ref"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	RideID    uint    `json:"rideId"`
}

// Create records a payment against a ride the requester owns (or any ride
// for admins). Returns the payment and, for QR, the payload string.
func (s *PaymentService) Create(requesterID uint, role entity.Role, rideID uint, amount float64, currency, method string) (*entity.Payment, string, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, "", ErrInvalidAmount
	}
	if currency == "" {
		currency = "USD"
	}
	if method == "" {
		method = entity.MethodQR
	}

	ride, err := s.rides.FindByID(rideID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidRide
		}
		return nil, "", err
	}
	if ride.UserID != requesterID && !role.AtLeast(entity.RoleAdmin) {
		return nil, "", ErrForbidden
	}

	payment := &entity.Payment{
		Ref:      uuid.NewString(),
		Amount:   amount,
		Currency: currency,
		Method:   method,
		Status:   entity.PaymentPending,
		UserID:   requesterID,
		RideID:   ride.ID,
	}
	if err := s.payments.Create(payment); err != nil {
		return nil, "", err
	}

	if method == entity.MethodQR {
		payload, err := json.Marshal(QRPayload{
			PaymentID: payment.ID,
			Ref:       payment.Ref,
			Amount:    amount,
			Currency:  currency,
			RideID:    ride.ID,
		})
		if err != nil {
			return nil, "", err
		}
		return payment, string(payload), nil
	}

	// Immediate settlement: payment and ride complete together or not at
	// all.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.payments.UpdateStatus(tx, payment.ID, entity.PaymentCompleted); err != nil {
			return err
		}
		return s.rides.UpdateStatus(tx, ride.ID, entity.RideCompleted)
	})
	if err != nil {
		return nil, "", err
	}
	payment.Status = entity.PaymentCompleted
	ride.Status = entity.RideCompleted

	if s.notifier != nil {
		// reload: the copy loaded before the transaction has a stale
		// UpdatedAt
		if fresh, err := s.rides.FindByID(ride.ID); err == nil {
			ride = fresh
		}
		s.notifier.RideStatusChanged(ride)
	}
	return payment, "", nil
}
