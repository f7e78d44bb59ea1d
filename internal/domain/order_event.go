package domain

import "time"

// History payloads mirror the request that triggered the event.

type OrderCreatedPayload struct {
	UserID    uint64 `json:"userId"`
	ProductID uint64 `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type PaymentPayload struct {
	OrderID    string `json:"orderId"`
	PaymentKey string `json:"paymentKey"`
	Amount     int64  `json:"amount"`
}

// Events published to the message broker after a commit.

type OrderCreatedEvent struct {
	OrderID     string    `json:"orderId"`
	UserID      uint64    `json:"userId"`
	ProductID   uint64    `json:"productId"`
	Quantity    int       `json:"quantity"`
	TotalAmount int64     `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PaymentResultEvent struct {
	OrderID       string        `json:"orderId"`
	PaymentID     uint64        `json:"paymentId"`
	Amount        int64         `json:"amount"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	OrderStatus   OrderStatus   `json:"orderStatus"`
	PGResultCode  string        `json:"pgResultCode"`
	CreatedAt     time.Time     `json:"createdAt"`
}
