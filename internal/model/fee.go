package model

import "time"

// PaymentMethod enumerates the accepted fee payment channels.
type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "Credit Card"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
	PaymentPayPal       PaymentMethod = "PayPal"
)

// Fee is a charge billed to a student.
type Fee struct {
	ID          int       `json:"id"`
	StudentID   string    `json:"student_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Paid        bool      `json:"paid"`
}

// FeePayment records money received against a fee. Several payments may
// reference one fee; nothing enforces that they sum to the fee amount.
type FeePayment struct {
	ID          int           `json:"id"`
	FeeID       int           `json:"fee_id"`
	Amount      float64       `json:"amount"`
	PaymentDate time.Time     `json:"payment_date"`
	Method      PaymentMethod `json:"method"`
}

// CreateFeeRequest is the payload for billing a student.
type CreateFeeRequest struct {
	StudentID   string    `json:"student_id" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	Description string    `json:"description" binding:"required,min=2,max=255"`
	DueDate     time.Time `json:"due_date" binding:"required"`
}

// RecordPaymentRequest is the payload for recording a payment on a fee.
type RecordPaymentRequest struct {
	Amount float64       `json:"amount" binding:"required,gt=0"`
	Method PaymentMethod `json:"method" binding:"required,oneof='Credit Card' 'Bank Transfer' 'PayPal'"`
}

// FeeSummary is a student's fee position: every fee, every payment made
// through those fees, and the outstanding total over unpaid fees.
type FeeSummary struct {
	Fees             []Fee        `json:"fees"`
	Payments         []FeePayment `json:"payments"`
	TotalOutstanding float64      `json:"total_outstanding"`
}
