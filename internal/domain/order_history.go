package domain

import "time"

type OrderEventType string

const (
	EventOrderCreated    OrderEventType = "ORDER_CREATED"
	EventPaymentApproved OrderEventType = "PAYMENT_APPROVED"
	EventPaymentFailed   OrderEventType = "PAYMENT_FAILED"
)

// OrderHistory is an append-only audit row. Rows are never updated or
// deleted and are read back in creation order.
type OrderHistory struct {
	ID          uint64         `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID     string         `json:"orderId" gorm:"type:varchar(50);not null;index"`
	EventType   OrderEventType `json:"eventType" gorm:"type:varchar(30);not null"`
	PayloadJSON string         `json:"payloadJson" gorm:"type:text"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"autoCreateTime"`
}
