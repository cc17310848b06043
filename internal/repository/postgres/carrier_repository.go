package postgres

import (
	"context"
	"fmt"

	"webstore/domain"

	"gorm.io/gorm"
)

type CarrierRepository struct {
	DB *gorm.DB
}

func NewCarrierRepository(db *gorm.DB) *CarrierRepository {
	return &CarrierRepository{
		DB: db,
	}
}

func (r *CarrierRepository) FindAll(ctx context.Context) ([]domain.Carrier, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var carriers []domain.Carrier
	err := r.DB.WithContext(ctx).Order("carrier_id").Find(&carriers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find carriers: %w", err)
	}

	return carriers, nil
}
