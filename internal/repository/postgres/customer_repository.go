package postgres

import (
	"context"
	"fmt"

	"webstore/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		DB: db,
	}
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var customers []domain.Customer
	err := r.DB.WithContext(ctx).Order("customer_id").Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find customers: %w", err)
	}

	return customers, nil
}
