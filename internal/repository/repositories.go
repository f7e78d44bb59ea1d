package repository

import (
	"context"

	"commerce-api/internal/domain"
)

// FindByID style lookups return (nil, nil) when the row does not exist;
// services translate that into their own not-found errors.

type ProductRepository interface {
	Save(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id uint64) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type OrderRepository interface {
	Save(ctx context.Context, o *domain.Order) error
	Update(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, orderID string) (*domain.Order, error)
}

type PaymentRepository interface {
	Save(ctx context.Context, p *domain.Payment) error
	FindLatestByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
}

type OrderHistoryRepository interface {
	Save(ctx context.Context, h *domain.OrderHistory) error
	// FindByOrderID returns rows ascending by creation time. Unknown order
	// ids yield an empty slice, not an error.
	FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderHistory, error)
}

type Repositories struct {
	Products  ProductRepository
	Orders    OrderRepository
	Payments  PaymentRepository
	Histories OrderHistoryRepository
}

// TxManager runs fn against transaction-scoped repositories. Every write
// made through the passed Repositories commits or rolls back as one unit.
type TxManager interface {
	Do(ctx context.Context, fn func(r *Repositories) error) error
}
