package http

import (
	"time"

	"commerce-api/internal/domain"
	"commerce-api/internal/services"
)

// Quantity and amount deliberately have no binding constraints: zero and
// negative values must reach the workflows so they answer with their own
// error codes instead of a generic binding failure.

type CreateOrderRequest struct {
	UserID    uint64 `json:"userId" binding:"required"`
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderResponse struct {
	OrderID     string             `json:"orderId"`
	UserID      uint64             `json:"userId"`
	ProductID   uint64             `json:"productId"`
	Quantity    int                `json:"quantity"`
	TotalAmount int64              `json:"totalAmount"`
	Status      domain.OrderStatus `json:"status"`
}

func newCreateOrderResponse(o *domain.Order) CreateOrderResponse {
	return CreateOrderResponse{
		OrderID:     o.OrderID,
		UserID:      o.UserID,
		ProductID:   o.ProductID,
		Quantity:    o.Quantity,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
	}
}

type ApprovePaymentRequest struct {
	OrderID    string `json:"orderId" binding:"required"`
	PaymentKey string `json:"paymentKey" binding:"required"`
	Amount     int64  `json:"amount"`
}

type ApprovePaymentResponse struct {
	OrderID       string               `json:"orderId"`
	PaymentID     uint64               `json:"paymentId"`
	PaymentKey    string               `json:"paymentKey"`
	Amount        int64                `json:"amount"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
	OrderStatus   domain.OrderStatus   `json:"orderStatus"`
	ApprovedAt    time.Time            `json:"approvedAt"`
}

func newApprovePaymentResponse(r *services.ApprovePaymentResult) ApprovePaymentResponse {
	return ApprovePaymentResponse{
		OrderID:       r.OrderID,
		PaymentID:     r.PaymentID,
		PaymentKey:    r.PaymentKey,
		Amount:        r.Amount,
		PaymentStatus: r.PaymentStatus,
		OrderStatus:   r.OrderStatus,
		ApprovedAt:    r.ApprovedAt,
	}
}

type ProductResponse struct {
	ProductID      uint64    `json:"productId"`
	Name           string    `json:"name"`
	BasePrice      int64     `json:"basePrice"`
	DiscountPrice  int64     `json:"discountPrice"`
	AvailableStock int       `json:"availableStock"`
	Available      bool      `json:"available"`
	CreatedAt      time.Time `json:"createdAt"`
}

func newProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:      p.ProductID,
		Name:           p.Name,
		BasePrice:      p.BasePrice,
		DiscountPrice:  p.DiscountPrice,
		AvailableStock: p.AvailableStock,
		Available:      p.IsAvailable(),
		CreatedAt:      p.CreatedAt,
	}
}

type OrderHistoryResponse struct {
	ID        uint64                `json:"id"`
	OrderID   string                `json:"orderId"`
	EventType domain.OrderEventType `json:"eventType"`
	Payload   string                `json:"payload"`
	CreatedAt time.Time             `json:"createdAt"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
