package services

import (
	"time"

	"commerce-api/internal/domain"
)

func CreateTestProduct(id uint64, name string, discountPrice int64, stock int, available bool) *domain.Product {
	return &domain.Product{
		ProductID:      id,
		Name:           name,
		BasePrice:      discountPrice + 10000,
		DiscountPrice:  discountPrice,
		AvailableStock: stock,
		Available:      available,
		CreatedAt:      time.Now(),
	}
}

func CreateTestOrder(orderID string, userID, productID uint64, quantity int, totalAmount int64, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		OrderID:     orderID,
		UserID:      userID,
		ProductID:   productID,
		Quantity:    quantity,
		TotalAmount: totalAmount,
		Status:      status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

const (
	TestUserID       = uint64(1)
	TestProductID    = uint64(1)
	TestOrderID      = "ORD-20260831-abc12345"
	TestProductName  = "Test Product"
	TestProductPrice = int64(129000)
)
