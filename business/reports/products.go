package reports

import (
	"context"
	"sort"

	"webstore/pkg/logger"
)

// ProductsByPriceDesc returns every product ordered by price, highest first.
// Equal prices keep the repository's product id order.
func (s *ReportsService) ProductsByPriceDesc(ctx context.Context) ([]ProductPriceRow, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to fetch products", err)
		return nil, err
	}

	rows := make([]ProductPriceRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, ProductPriceRow{
			ProductName: p.ProductName,
			Price:       p.Price,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Price.GreaterThan(rows[j].Price)
	})

	return rows, nil
}

// TotalSoldPerProduct returns the summed quantity sold per product across all
// orders (0 for products never ordered), highest first.
func (s *ReportsService) TotalSoldPerProduct(ctx context.Context) ([]ProductSalesRow, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to fetch products", err)
		return nil, err
	}

	items, err := s.orderItemRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to fetch order items", err)
		return nil, err
	}

	sold := make(map[uint64]int, len(products))
	for _, item := range items {
		sold[item.ProductID] += item.Quantity
	}

	rows := make([]ProductSalesRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, ProductSalesRow{
			ProductName: p.ProductName,
			TotalSold:   sold[p.ProductID],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalSold > rows[j].TotalSold
	})

	return rows, nil
}
