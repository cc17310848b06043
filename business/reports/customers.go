package reports

import (
	"context"
	"sort"

	"webstore/domain"
	"webstore/pkg/logger"

	"github.com/shopspring/decimal"
)

// ListCustomers returns one row per customer with full name and email.
func (s *ReportsService) ListCustomers(ctx context.Context) ([]CustomerRow, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to fetch customers", err)
		return nil, err
	}

	rows := make([]CustomerRow, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, CustomerRow{
			FullName: c.FullName(),
			Email:    c.Email,
		})
	}

	return rows, nil
}

// OrderCountPerCustomer returns the number of orders per customer, customers
// with zero orders included.
func (s *ReportsService) OrderCountPerCustomer(ctx context.Context) ([]CustomerOrderCountRow, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to fetch customers", err)
		return nil, err
	}

	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to fetch orders", err)
		return nil, err
	}

	counts := make(map[uint64]int, len(customers))
	for _, o := range orders {
		counts[o.CustomerID]++
	}

	rows := make([]CustomerOrderCountRow, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, CustomerOrderCountRow{
			CustomerName: c.FullName(),
			OrderCount:   counts[c.CustomerID],
		})
	}

	return rows, nil
}

// TopCustomersByValue returns the top 3 customers ranked by the summed value
// of all their orders. Customers without orders compete with value 0.
func (s *ReportsService) TopCustomersByValue(ctx context.Context) ([]CustomerValueRow, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to fetch customers", err)
		return nil, err
	}

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

	orderTotals := sumLineTotalsByOrder(items)

	customerIndex := make(map[uint64]domain.Customer, len(customers))
	for _, c := range customers {
		customerIndex[c.CustomerID] = c
	}

	values := make(map[uint64]decimal.Decimal, len(customers))
	for _, o := range orders {
		if _, err := customerNameFor(customerIndex, o); err != nil {
			logger.Error("order without customer", err)
			return nil, err
		}
		values[o.CustomerID] = values[o.CustomerID].Add(orderTotals[o.OrderID])
	}

	rows := make([]CustomerValueRow, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, CustomerValueRow{
			CustomerName:    c.FullName(),
			TotalOrderValue: values[c.CustomerID],
		})
	}

	// Ties keep customer id order from the repository.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalOrderValue.GreaterThan(rows[j].TotalOrderValue)
	})

	if len(rows) > 3 {
		rows = rows[:3]
	}

	return rows, nil
}

// sumLineTotalsByOrder aggregates unit_price*quantity-discount per order id.
func sumLineTotalsByOrder(items []domain.OrderItem) map[uint64]decimal.Decimal {
	totals := make(map[uint64]decimal.Decimal)
	for _, item := range items {
		totals[item.OrderID] = totals[item.OrderID].Add(item.LineTotal())
	}

	return totals
}
