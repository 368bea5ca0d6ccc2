package entity

// PaymentStatus is the two-state payment lifecycle.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// MethodQR is the only payment method with special semantics: the payment
// stays pending and the caller receives a payload to render as a QR code.
// Every other method settles immediately.
const MethodQR = "QR"
