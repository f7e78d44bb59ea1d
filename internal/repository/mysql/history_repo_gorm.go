package mysql

import (
	"context"

	"commerce-api/internal/domain"
	"commerce-api/internal/repository"

	"gorm.io/gorm"
)

type historyRepo struct {
	db *gorm.DB
}

func NewOrderHistoryRepository(db *gorm.DB) repository.OrderHistoryRepository {
	return &historyRepo{db: db}
}

func (r *historyRepo) Save(ctx context.Context, h *domain.OrderHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *historyRepo) FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderHistory, error) {
	out := []domain.OrderHistory{}
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
