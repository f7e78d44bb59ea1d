package domain

import "time"

type PaymentStatus string

const (
	PaymentRequested PaymentStatus = "REQUESTED"
	PaymentApproved  PaymentStatus = "APPROVED"
	PaymentDeclined  PaymentStatus = "DECLINED"
)

// Payment records one approval attempt against an order. Declined attempts
// keep their row; a retry creates a new one, so order_id is not unique.
type Payment struct {
	ID              uint64        `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID         string        `json:"orderId" gorm:"type:varchar(50);not null;index"`
	PaymentKey      string        `json:"paymentKey" gorm:"type:varchar(100);not null"`
	Amount          int64         `json:"amount" gorm:"not null"`
	Status          PaymentStatus `json:"status" gorm:"type:varchar(20);not null"`
	PGResultCode    string        `json:"pgResultCode" gorm:"type:varchar(50)"`
	PGResultMessage string        `json:"pgResultMessage" gorm:"type:varchar(500)"`
	CreatedAt       time.Time     `json:"createdAt" gorm:"autoCreateTime"`
}

func (p *Payment) IsApproved() bool {
	return p.Status == PaymentApproved
}
