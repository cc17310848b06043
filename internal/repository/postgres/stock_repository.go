package postgres

import (
	"context"
	"fmt"

	"webstore/domain"

	"gorm.io/gorm"
)

type StockRepository struct {
	DB *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{
		DB: db,
	}
}

func (r *StockRepository) FindByProductIDs(ctx context.Context, productIDs []uint64) ([]domain.Stock, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(productIDs) == 0 {
		return nil, nil
	}

	var stocks []domain.Stock
	err := r.DB.WithContext(ctx).Where("product_id IN ?", productIDs).Order("product_id, store_id").Find(&stocks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find stocks by product ids: %w", err)
	}

	return stocks, nil
}
