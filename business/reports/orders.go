package reports

import (
	"context"
	"time"

	"webstore/pkg/logger"
)

// PendingStatus is the literal order status the pending-orders report filters on.
const PendingStatus = "Pending"

// OrdersWithItemCount returns every order with its customer, status and the
// summed quantity over its items (0 when the order has none).
func (s *ReportsService) OrdersWithItemCount(ctx context.Context) ([]OrderItemCountRow, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to fetch orders", err)
		return nil, err
	}

	items, err := s.orderItemRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to fetch order items", err)
		return nil, err
	}

	customers, err := s.customerIndex(ctx)
	if err != nil {
		logger.Error("failed to fetch customers", err)
		return nil, err
	}

	counts := make(map[uint64]int)
	for _, item := range items {
		counts[item.OrderID] += item.Quantity
	}

	rows := make([]OrderItemCountRow, 0, len(orders))
	for _, o := range orders {
		name, err := customerNameFor(customers, o)
		if err != nil {
			logger.Error("order without customer", err)
			return nil, err
		}

		rows = append(rows, OrderItemCountRow{
			OrderID:      o.OrderID,
			CustomerName: name,
			Status:       o.OrderStatus,
			ItemCount:    counts[o.OrderID],
		})
	}

	return rows, nil
}

// PendingOrdersWithTotal returns orders with status "Pending" and their total
// price, summed as unit_price*quantity-discount over the order's items.
func (s *ReportsService) PendingOrdersWithTotal(ctx context.Context) ([]OrderTotalRow, error) {
	orders, err := s.orderRepo.FindByStatus(ctx, PendingStatus)
	if err != nil {
		logger.Error("failed to fetch pending orders", err)
		return nil, err
	}

	orderIDs := make([]uint64, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.OrderID)
	}

	items, err := s.orderItemRepo.FindByOrderIDs(ctx, orderIDs)
	if err != nil {
		logger.Error("failed to fetch order items", err)
		return nil, err
	}

	customers, err := s.customerIndex(ctx)
	if err != nil {
		logger.Error("failed to fetch customers", err)
		return nil, err
	}

	totals := sumLineTotalsByOrder(items)

	rows := make([]OrderTotalRow, 0, len(orders))
	for _, o := range orders {
		name, err := customerNameFor(customers, o)
		if err != nil {
			logger.Error("order without customer", err)
			return nil, err
		}

		rows = append(rows, OrderTotalRow{
			CustomerName: name,
			OrderID:      o.OrderID,
			OrderDate:    o.OrderDate,
			Total:        totals[o.OrderID],
		})
	}

	return rows, nil
}

// RecentOrders returns orders placed within the 30 days before asOf, boundary
// inclusive. The reference time is an explicit parameter so the report stays
// reproducible.
func (s *ReportsService) RecentOrders(ctx context.Context, asOf time.Time) ([]RecentOrderRow, error) {
	since := asOf.AddDate(0, 0, -30)

	orders, err := s.orderRepo.FindPlacedSince(ctx, since)
	if err != nil {
		logger.Error("failed to fetch recent orders", err)
		return nil, err
	}

	customers, err := s.customerIndex(ctx)
	if err != nil {
		logger.Error("failed to fetch customers", err)
		return nil, err
	}

	rows := make([]RecentOrderRow, 0, len(orders))
	for _, o := range orders {
		name, err := customerNameFor(customers, o)
		if err != nil {
			logger.Error("order without customer", err)
			return nil, err
		}

		rows = append(rows, RecentOrderRow{
			OrderID:      o.OrderID,
			OrderDate:    o.OrderDate,
			CustomerName: name,
		})
	}

	return rows, nil
}

// DiscountedOrders returns orders holding at least one item with a discount,
// listing the product names of the discounted items only.
func (s *ReportsService) DiscountedOrders(ctx context.Context) ([]DiscountedOrderRow, error) {
	discounted, err := s.orderItemRepo.FindDiscounted(ctx)
	if err != nil {
		logger.Error("failed to fetch discounted order items", err)
		return nil, err
	}

	itemsByOrder := make(map[uint64][]uint64)
	orderIDs := make([]uint64, 0)
	for _, item := range discounted {
		if _, seen := itemsByOrder[item.OrderID]; !seen {
			orderIDs = append(orderIDs, item.OrderID)
		}
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item.ProductID)
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

	rows := make([]DiscountedOrderRow, 0, len(orders))
	for _, o := range orders {
		name, err := customerNameFor(customers, o)
		if err != nil {
			logger.Error("order without customer", err)
			return nil, err
		}

		productNames := make([]string, 0, len(itemsByOrder[o.OrderID]))
		for _, productID := range itemsByOrder[o.OrderID] {
			productName, ok := products[productID]
			if !ok {
				err := missingProductErr(o.OrderID, productID)
				logger.Error("order item without product", err)
				return nil, err
			}
			productNames = append(productNames, productName)
		}

		rows = append(rows, DiscountedOrderRow{
			OrderID:            o.OrderID,
			CustomerName:       name,
			DiscountedProducts: productNames,
		})
	}

	return rows, nil
}
