package domain

import "time"

type OrderStatus string

const (
	StatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	StatusPaid           OrderStatus = "PAID"
	StatusPaymentFailed  OrderStatus = "PAYMENT_FAILED"
)

type Order struct {
	OrderID     string      `json:"orderId" gorm:"primaryKey;type:varchar(50)"`
	UserID      uint64      `json:"userId" gorm:"not null"`
	ProductID   uint64      `json:"productId" gorm:"not null;index"`
	Quantity    int         `json:"quantity" gorm:"not null"`
	TotalAmount int64       `json:"totalAmount" gorm:"not null"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (o *Order) IsPendingPayment() bool {
	return o.Status == StatusPendingPayment
}

func (o *Order) IsPaid() bool {
	return o.Status == StatusPaid
}
