package reports

import (
	"context"

	"webstore/domain"
	"webstore/pkg/logger"
)

// ElectronicsCategory is the category name the advanced order report pivots on.
const ElectronicsCategory = "Electronics"

// ElectronicsOrders returns orders containing at least one product from the
// Electronics category. Each matching item carries the name of the store
// holding the most stock for that product; a higher quantity wins, equal
// quantities break toward the lower store id, and a product with no stock
// rows gets an empty store name.
func (s *ReportsService) ElectronicsOrders(ctx context.Context) ([]ElectronicsOrderRow, error) {
	productIDs, err := s.productRepo.FindIDsByCategoryName(ctx, ElectronicsCategory)
	if err != nil {
		logger.Error("failed to fetch electronics product ids", err)
		return nil, err
	}

	if len(productIDs) == 0 {
		return []ElectronicsOrderRow{}, nil
	}

	inCategory := make(map[uint64]bool, len(productIDs))
	for _, id := range productIDs {
		inCategory[id] = true
	}

	items, err := s.orderItemRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to fetch order items", err)
		return nil, err
	}

	itemsByOrder := make(map[uint64][]domain.OrderItem)
	orderIDs := make([]uint64, 0)
	for _, item := range items {
		if !inCategory[item.ProductID] {
			continue
		}
		if _, seen := itemsByOrder[item.OrderID]; !seen {
			orderIDs = append(orderIDs, item.OrderID)
		}
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	orders, err := s.orderRepo.FindByIDs(ctx, orderIDs)
	if err != nil {
		logger.Error("failed to fetch orders", err)
		return nil, err
	}

	customers, err := s.customerIndex(ctx)
	if err != nil {
		logger.Error("failed to fetch customers", err)
		return nil, err
	}

	products, err := s.productNameIndex(ctx)
	if err != nil {
		logger.Error("failed to fetch products", err)
		return nil, err
	}

	bestStore, err := s.maxStockStores(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]ElectronicsOrderRow, 0, len(orders))
	for _, o := range orders {
		name, err := customerNameFor(customers, o)
		if err != nil {
			logger.Error("order without customer", err)
			return nil, err
		}

		productRows := make([]ElectronicsProductRow, 0, len(itemsByOrder[o.OrderID]))
		for _, item := range itemsByOrder[o.OrderID] {
			productName, err := productNameFor(products, item)
			if err != nil {
				logger.Error("order item without product", err)
				return nil, err
			}

			productRows = append(productRows, ElectronicsProductRow{
				ProductName:       productName,
				StoreWithMaxStock: bestStore[item.ProductID],
			})
		}

		rows = append(rows, ElectronicsOrderRow{
			OrderID:      o.OrderID,
			CustomerName: name,
			Products:     productRows,
		})
	}

	return rows, nil
}

// maxStockStores maps each product id to the name of the store holding its
// largest stock quantity. Products without stock rows are absent from the map.
func (s *ReportsService) maxStockStores(ctx context.Context, productIDs []uint64) (map[uint64]string, error) {
	stocks, err := s.stockRepo.FindByProductIDs(ctx, productIDs)
	if err != nil {
		logger.Error("failed to fetch stocks", err)
		return nil, err
	}

	stores, err := s.storeRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to fetch stores", err)
		return nil, err
	}

	storeNames := make(map[uint64]string, len(stores))
	for _, store := range stores {
		storeNames[store.StoreID] = store.StoreName
	}

	best := make(map[uint64]domain.Stock)
	for _, stock := range stocks {
		current, ok := best[stock.ProductID]
		if !ok || stock.QuantityInStock > current.QuantityInStock ||
			(stock.QuantityInStock == current.QuantityInStock && stock.StoreID < current.StoreID) {
			best[stock.ProductID] = stock
		}
	}

	names := make(map[uint64]string, len(best))
	for productID, stock := range best {
		names[productID] = storeNames[stock.StoreID]
	}

	return names, nil
}
