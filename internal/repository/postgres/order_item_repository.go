package postgres

import (
	"context"
	"fmt"

	"webstore/domain"

	"gorm.io/gorm"
)

type OrderItemRepository struct {
	DB *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) *OrderItemRepository {
	return &OrderItemRepository{
		DB: db,
	}
}

func (r *OrderItemRepository) FindAll(ctx context.Context) ([]domain.OrderItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.OrderItem
	err := r.DB.WithContext(ctx).Order("order_item_id").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find order items: %w", err)
	}

	return items, nil
}

func (r *OrderItemRepository) FindByOrderIDs(ctx context.Context, orderIDs []uint64) ([]domain.OrderItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(orderIDs) == 0 {
		return nil, nil
	}

	var items []domain.OrderItem
	err := r.DB.WithContext(ctx).Where("order_id IN ?", orderIDs).Order("order_item_id").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find order items by order ids: %w", err)
	}

	return items, nil
}

// FindDiscounted returns items with a discount greater than zero.
func (r *OrderItemRepository) FindDiscounted(ctx context.Context) ([]domain.OrderItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.OrderItem
	err := r.DB.WithContext(ctx).Where("discount > 0").Order("order_item_id").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find discounted order items: %w", err)
	}

	return items, nil
}
