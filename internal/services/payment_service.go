package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"commerce-api/internal/apperr"
	"commerce-api/internal/domain"
	"commerce-api/internal/infra/pg"
	rabbit "commerce-api/internal/infra/rabbitmq"
	"commerce-api/internal/repository"
)

type PaymentService struct {
	txm       repository.TxManager
	payments  repository.PaymentRepository
	orders    *OrderService
	pgClient  pg.ClientInterface
	publisher rabbit.PublisherInterface
}

func NewPaymentService(
	txm repository.TxManager,
	payments repository.PaymentRepository,
	orders *OrderService,
	pgClient pg.ClientInterface,
	publisher rabbit.PublisherInterface,
) *PaymentService {
	return &PaymentService{
		txm:       txm,
		payments:  payments,
		orders:    orders,
		pgClient:  pgClient,
		publisher: publisher,
	}
}

// ApprovePaymentResult combines the payment row with the order status it
// produced. ApprovedAt is the payment's creation time.
type ApprovePaymentResult struct {
	OrderID       string
	PaymentID     uint64
	PaymentKey    string
	Amount        int64
	PaymentStatus domain.PaymentStatus
	OrderStatus   domain.OrderStatus
	ApprovedAt    time.Time
}

// ApprovePayment runs the validation pipeline (payable -> duplicate ->
// amount), calls the gateway, then commits the payment row, the order
// transition, the stock decrement and the audit row as one unit. Any
// validation failure happens before the gateway is contacted and leaves no
// persisted changes.
func (s *PaymentService) ApprovePayment(ctx context.Context, orderID, paymentKey string, amount int64) (*ApprovePaymentResult, error) {
	order, err := s.orders.GetOrderOrThrow(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Checked before the duplicate check: re-approving a paid order reports
	// ORDER_NOT_PAYABLE, not PAYMENT_ALREADY_APPROVED.
	if !order.IsPendingPayment() {
		return nil, apperr.Conflict(apperr.CodeOrderNotPayable, "order is not in a payable state",
			fmt.Sprintf("Order ID: %s, Current Status: %s", order.OrderID, order.Status))
	}

	existing, err := s.payments.FindLatestByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperr.Internal("payment lookup failed", err)
	}
	if existing != nil && existing.IsApproved() {
		return nil, apperr.Conflict(apperr.CodePaymentAlreadyApproved, "payment already approved",
			"Order ID: "+orderID)
	}

	if amount != order.TotalAmount {
		return nil, apperr.BusinessRule(apperr.CodeAmountMismatch, "payment amount does not match order amount",
			fmt.Sprintf("Requested: %d, Order Amount: %d", amount, order.TotalAmount))
	}

	pgResult, err := s.pgClient.Approve(ctx, paymentKey, orderID, amount)
	if err != nil {
		return nil, apperr.BusinessRule(apperr.CodePGApprovalFailed, "payment gateway approval failed", err.Error())
	}

	payload := domain.PaymentPayload{OrderID: orderID, PaymentKey: paymentKey, Amount: amount}
	payment := &domain.Payment{
		OrderID:    orderID,
		PaymentKey: paymentKey,
		Amount:     amount,
		Status:     domain.PaymentRequested,
	}

	var updated domain.Order
	err = s.txm.Do(ctx, func(r *repository.Repositories) error {
		if pgResult.Success {
			return s.applyApproval(ctx, r, order, payment, pgResult, payload, &updated)
		}
		return s.applyDecline(ctx, r, order, payment, pgResult, payload, &updated)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("payment approval completed", "orderId", orderID,
		"paymentStatus", payment.Status, "orderStatus", updated.Status)

	go s.publishPaymentResult(context.Background(), payment, &updated)

	return &ApprovePaymentResult{
		OrderID:       updated.OrderID,
		PaymentID:     payment.ID,
		PaymentKey:    payment.PaymentKey,
		Amount:        payment.Amount,
		PaymentStatus: payment.Status,
		OrderStatus:   updated.Status,
		ApprovedAt:    payment.CreatedAt,
	}, nil
}

func (s *PaymentService) applyApproval(
	ctx context.Context,
	r *repository.Repositories,
	order *domain.Order,
	payment *domain.Payment,
	pgResult *pg.ApprovalResult,
	payload domain.PaymentPayload,
	updated *domain.Order,
) error {
	p, err := domain.TransitionPayment(*payment, domain.PaymentApproved, pgResult.ResultCode, pgResult.ResultMessage)
	if err != nil {
		return err
	}
	*payment = p
	if err := r.Payments.Save(ctx, payment); err != nil {
		return err
	}

	o, err := domain.TransitionOrder(*order, domain.StatusPaid)
	if err != nil {
		return err
	}
	if err := r.Orders.Update(ctx, &o); err != nil {
		return err
	}
	*updated = o

	// Stock is re-read and re-checked here: it may have been exhausted
	// between order creation and approval. Exhaustion rolls back the whole
	// approval, payment row included.
	product, err := r.Products.FindByID(ctx, order.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperr.NotFound(apperr.CodeProductNotFound, "product not found",
			fmt.Sprintf("Product ID: %d", order.ProductID))
	}
	if !product.HasEnoughStock(order.Quantity) {
		return apperr.BusinessRule(apperr.CodeOutOfStock, "not enough stock",
			fmt.Sprintf("Requested: %d, Available: %d", order.Quantity, product.AvailableStock))
	}
	product.AvailableStock -= order.Quantity
	if err := r.Products.Update(ctx, product); err != nil {
		return err
	}

	return recordHistory(ctx, r.Histories, order.OrderID, domain.EventPaymentApproved, payload)
}

func (s *PaymentService) applyDecline(
	ctx context.Context,
	r *repository.Repositories,
	order *domain.Order,
	payment *domain.Payment,
	pgResult *pg.ApprovalResult,
	payload domain.PaymentPayload,
	updated *domain.Order,
) error {
	slog.Warn("pg approval failed", "orderId", order.OrderID,
		"pgCode", pgResult.ResultCode, "pgMessage", pgResult.ResultMessage)

	p, err := domain.TransitionPayment(*payment, domain.PaymentDeclined, pgResult.ResultCode, pgResult.ResultMessage)
	if err != nil {
		return err
	}
	*payment = p
	if err := r.Payments.Save(ctx, payment); err != nil {
		return err
	}

	o, err := domain.TransitionOrder(*order, domain.StatusPaymentFailed)
	if err != nil {
		return err
	}
	if err := r.Orders.Update(ctx, &o); err != nil {
		return err
	}
	*updated = o

	return recordHistory(ctx, r.Histories, order.OrderID, domain.EventPaymentFailed, payload)
}

func (s *PaymentService) publishPaymentResult(ctx context.Context, payment *domain.Payment, order *domain.Order) {
	routingKey := "payment.approved"
	if payment.Status == domain.PaymentDeclined {
		routingKey = "payment.failed"
	}

	evt := domain.PaymentResultEvent{
		OrderID:       payment.OrderID,
		PaymentID:     payment.ID,
		Amount:        payment.Amount,
		PaymentStatus: payment.Status,
		OrderStatus:   order.Status,
		PGResultCode:  payment.PGResultCode,
		CreatedAt:     payment.CreatedAt,
	}

	if err := s.publisher.Publish(ctx, routingKey, evt); err != nil {
		slog.Error("failed to publish payment event", "orderId", payment.OrderID, "error", err)
	}
}
