package postgres

import (
	"context"
	"fmt"

	"webstore/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).Order("product_id").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	return products, nil
}

// FindIDsByCategoryName resolves the product ids attached to a category
// through the products_categories join table.
func (r *ProductRepository) FindIDsByCategoryName(ctx context.Context, categoryName string) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ids []uint64
	err := r.DB.WithContext(ctx).
		Model(&domain.ProductCategory{}).
		Joins("join categories c on c.category_id = products_categories.category_id").
		Where("c.category_name = ?", categoryName).
		Order("products_categories.product_id").
		Pluck("products_categories.product_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find product ids by category: %w", err)
	}

	return ids, nil
}
