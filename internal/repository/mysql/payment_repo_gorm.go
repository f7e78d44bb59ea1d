package mysql

import (
	"context"
	"errors"

	"commerce-api/internal/domain"
	"commerce-api/internal/repository"

	"gorm.io/gorm"
)

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Save(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindLatestByOrderID returns the most recent attempt for the order. A
// declined attempt may be followed by newer rows for the same order.
func (r *paymentRepo) FindLatestByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id DESC").
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
