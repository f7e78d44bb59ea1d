package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"commerce-api/internal/apperr"
	"commerce-api/internal/domain"
	rabbit "commerce-api/internal/infra/rabbitmq"
	"commerce-api/internal/repository"

	"github.com/google/uuid"
)

type OrderService struct {
	txm       repository.TxManager
	orders    repository.OrderRepository
	histories repository.OrderHistoryRepository
	products  *ProductService
	publisher rabbit.PublisherInterface
}

func NewOrderService(
	txm repository.TxManager,
	orders repository.OrderRepository,
	histories repository.OrderHistoryRepository,
	products *ProductService,
	publisher rabbit.PublisherInterface,
) *OrderService {
	return &OrderService{
		txm:       txm,
		orders:    orders,
		histories: histories,
		products:  products,
		publisher: publisher,
	}
}

// CreateOrder validates the request against the catalog, then persists the
// order and its audit row in one transaction. Stock is only checked here;
// the decrement happens when the payment is approved.
func (s *OrderService) CreateOrder(ctx context.Context, userID, productID uint64, quantity int) (*domain.Order, error) {
	if quantity <= 0 {
		return nil, apperr.BusinessRule(apperr.CodeQuantityInvalid, "quantity must be a positive integer",
			fmt.Sprintf("Quantity: %d", quantity))
	}

	product, err := s.products.GetProductOrThrow(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.products.ValidateAvailability(product); err != nil {
		return nil, err
	}
	if err := s.products.ValidateStock(product, quantity); err != nil {
		return nil, err
	}

	order := &domain.Order{
		OrderID:     generateOrderID(),
		UserID:      userID,
		ProductID:   productID,
		Quantity:    quantity,
		TotalAmount: product.DiscountPrice * int64(quantity),
		Status:      domain.StatusPendingPayment,
	}

	payload := domain.OrderCreatedPayload{UserID: userID, ProductID: productID, Quantity: quantity}

	err = s.txm.Do(ctx, func(r *repository.Repositories) error {
		if err := r.Orders.Save(ctx, order); err != nil {
			return err
		}
		return recordHistory(ctx, r.Histories, order.OrderID, domain.EventOrderCreated, payload)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("order created", "orderId", order.OrderID, "userId", userID,
		"productId", productID, "totalAmount", order.TotalAmount)

	go s.publishOrderCreated(context.Background(), order)

	return order, nil
}

// GetOrderOrThrow is the lookup the payment workflow builds on.
func (s *OrderService) GetOrderOrThrow(ctx context.Context, orderID string) (*domain.Order, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, apperr.Internal("order lookup failed", err)
	}
	if o == nil {
		return nil, apperr.NotFound(apperr.CodeOrderNotFound, "order not found", "Order ID: "+orderID)
	}
	return o, nil
}

func (s *OrderService) GetOrderHistory(ctx context.Context, orderID string) ([]domain.OrderHistory, error) {
	rows, err := s.histories.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperr.Internal("order history lookup failed", err)
	}
	if rows == nil {
		rows = []domain.OrderHistory{}
	}
	return rows, nil
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:     order.OrderID,
		UserID:      order.UserID,
		ProductID:   order.ProductID,
		Quantity:    order.Quantity,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	}

	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		slog.Error("failed to publish order.created event", "orderId", order.OrderID, "error", err)
	}
}

// generateOrderID keeps the ORD-<date>-<suffix> shape for log greppability
// but draws the suffix from a v4 UUID instead of a 4-digit random number.
func generateOrderID() string {
	datePart := time.Now().Format("20060102")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("ORD-%s-%s", datePart, suffix)
}
