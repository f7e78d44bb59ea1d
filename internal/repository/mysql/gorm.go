package mysql

import (
	"context"

	"commerce-api/internal/repository"

	"gorm.io/gorm"
)

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Products:  NewProductRepository(db),
		Orders:    NewOrderRepository(db),
		Payments:  NewPaymentRepository(db),
		Histories: NewOrderHistoryRepository(db),
	}
}

type txManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) repository.TxManager {
	return &txManager{db: db}
}

func (m *txManager) Do(ctx context.Context, fn func(r *repository.Repositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
