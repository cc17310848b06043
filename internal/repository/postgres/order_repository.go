package postgres

import (
	"context"
	"fmt"
	"time"

	"webstore/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		DB: db,
	}
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Order
	err := r.DB.WithContext(ctx).Order("order_id").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

func (r *OrderRepository) FindByStatus(ctx context.Context, status string) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Order
	err := r.DB.WithContext(ctx).Where("order_status = ?", status).Order("order_id").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders by status: %w", err)
	}

	return orders, nil
}

// FindPlacedSince returns orders with order_date on or after since.
func (r *OrderRepository) FindPlacedSince(ctx context.Context, since time.Time) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Order
	err := r.DB.WithContext(ctx).Where("order_date >= ?", since).Order("order_id").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recent orders: %w", err)
	}

	return orders, nil
}

func (r *OrderRepository) FindByIDs(ctx context.Context, ids []uint64) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(ids) == 0 {
		return nil, nil
	}

	var orders []domain.Order
	err := r.DB.WithContext(ctx).Where("order_id IN ?", ids).Order("order_id").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders by ids: %w", err)
	}

	return orders, nil
}
