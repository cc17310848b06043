//go:build !integration

package reports

import (
	"context"
	"time"

	"webstore/domain"
)

// fixture is the in-memory dataset backing the fake repositories. The fakes
// honor the same contracts the postgres repositories do: filters are applied,
// slice order is preserved, and an injected error fails every fetch.
type fixture struct {
	customers  []domain.Customer
	orders     []domain.Order
	items      []domain.OrderItem
	products   []domain.Product
	stocks     []domain.Stock
	stores     []domain.Store
	carriers   []domain.Carrier
	categories map[string][]uint64
	failWith   error
}

func newTestService(fx *fixture) *ReportsService {
	return NewReportsService(
		fakeCustomerRepo{fx},
		fakeOrderRepo{fx},
		fakeOrderItemRepo{fx},
		fakeProductRepo{fx},
		fakeStockRepo{fx},
		fakeStoreRepo{fx},
		fakeCarrierRepo{fx},
	)
}

type fakeCustomerRepo struct{ fx *fixture }

func (r fakeCustomerRepo) FindAll(_ context.Context) ([]domain.Customer, error) {
	if r.fx.failWith != nil {
		return nil, r.fx.failWith
	}
	return r.fx.customers, nil
}

type fakeOrderRepo struct{ fx *fixture }

func (r fakeOrderRepo) FindAll(_ context.Context) ([]domain.Order, error) {
	if r.fx.failWith != nil {
		return nil, r.fx.failWith
	}
	return r.fx.orders, nil
}

func (r fakeOrderRepo) FindByStatus(_ context.Context, status string) ([]domain.Order, error) {
	if r.fx.failWith != nil {
		return nil, r.fx.failWith
	}
	var out []domain.Order
	for _, o := range r.fx.orders {
		if o.OrderStatus == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r fakeOrderRepo) FindPlacedSince(_ context.Context, since time.Time) ([]domain.Order, error) {
	if r.fx.failWith != nil {
		return nil, r.fx.failWith
	}
	var out []domain.Order
	for _, o := range r.fx.orders {
		if !o.OrderDate.Before(since) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r fakeOrderRepo) FindByIDs(_ context.Context, ids []uint64) ([]domain.Order, error) {
	if r.fx.failWith != nil {
		return nil, r.fx.failWith
	}
	wanted := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []domain.Order
	for _, o := range r.fx.orders {
		if wanted[o.OrderID] {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeOrderItemRepo struct{ fx *fixture }

func (r fakeOrderItemRepo) FindAll(_ context.Context) ([]domain.OrderItem, error) {
	if r.fx.failWith != nil {
		return nil, r.fx.failWith
	}
	return r.fx.items, nil
}

func (r fakeOrderItemRepo) FindByOrderIDs(_ context.Context, orderIDs []uint64) ([]domain.OrderItem, error) {
	if r.fx.failWith != nil {
		return nil, r.fx.failWith
	}
	wanted := make(map[uint64]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}
	var out []domain.OrderItem
	for _, item := range r.fx.items {
		if wanted[item.OrderID] {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r fakeOrderItemRepo) FindDiscounted(_ context.Context) ([]domain.OrderItem, error) {
	if r.fx.failWith != nil {
		return nil, r.fx.failWith
	}
	var out []domain.OrderItem
	for _, item := range r.fx.items {
		if item.Discount.IsPositive() {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeProductRepo struct{ fx *fixture }

func (r fakeProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	if r.fx.failWith != nil {
		return nil, r.fx.failWith
	}
	return r.fx.products, nil
}

func (r fakeProductRepo) FindIDsByCategoryName(_ context.Context, categoryName string) ([]uint64, error) {
	if r.fx.failWith != nil {
		return nil, r.fx.failWith
	}
	return r.fx.categories[categoryName], nil
}

type fakeStockRepo struct{ fx *fixture }

func (r fakeStockRepo) FindByProductIDs(_ context.Context, productIDs []uint64) ([]domain.Stock, error) {
	if r.fx.failWith != nil {
		return nil, r.fx.failWith
	}
	wanted := make(map[uint64]bool, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = true
	}
	var out []domain.Stock
	for _, stock := range r.fx.stocks {
		if wanted[stock.ProductID] {
			out = append(out, stock)
		}
	}
	return out, nil
}

type fakeStoreRepo struct{ fx *fixture }

func (r fakeStoreRepo) FindAll(_ context.Context) ([]domain.Store, error) {
	if r.fx.failWith != nil {
		return nil, r.fx.failWith
	}
	return r.fx.stores, nil
}

type fakeCarrierRepo struct{ fx *fixture }

func (r fakeCarrierRepo) FindAll(_ context.Context) ([]domain.Carrier, error) {
	if r.fx.failWith != nil {
		return nil, r.fx.failWith
	}
	return r.fx.carriers, nil
}
