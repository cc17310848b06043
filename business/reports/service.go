package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webstore/domain"
)

// ErrDataIntegrity marks a report that hit a missing required relationship,
// such as an order pointing at a customer row that does not exist. The report
// fails instead of printing a partial row.
var ErrDataIntegrity = errors.New("data integrity violation")

type CustomerRepository interface {
	FindAll(ctx context.Context) ([]domain.Customer, error)
}

type OrderRepository interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByStatus(ctx context.Context, status string) ([]domain.Order, error)
	FindPlacedSince(ctx context.Context, since time.Time) ([]domain.Order, error)
	FindByIDs(ctx context.Context, ids []uint64) ([]domain.Order, error)
}

type OrderItemRepository interface {
	FindAll(ctx context.Context) ([]domain.OrderItem, error)
	FindByOrderIDs(ctx context.Context, orderIDs []uint64) ([]domain.OrderItem, error)
	FindDiscounted(ctx context.Context) ([]domain.OrderItem, error)
}

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindIDsByCategoryName(ctx context.Context, categoryName string) ([]uint64, error)
}

type StockRepository interface {
	FindByProductIDs(ctx context.Context, productIDs []uint64) ([]domain.Stock, error)
}

type StoreRepository interface {
	FindAll(ctx context.Context) ([]domain.Store, error)
}

type CarrierRepository interface {
	FindAll(ctx context.Context) ([]domain.Carrier, error)
}

// ReportsService composes the read-only repositories into the report queries.
// Every method is stateless: it fetches, joins over foreign-key maps, and
// returns an ordered row slice.
type ReportsService struct {
	customerRepo  CustomerRepository
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	productRepo   ProductRepository
	stockRepo     StockRepository
	storeRepo     StoreRepository
	carrierRepo   CarrierRepository
}

func NewReportsService(
	customerRepo CustomerRepository,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	productRepo ProductRepository,
	stockRepo StockRepository,
	storeRepo StoreRepository,
	carrierRepo CarrierRepository,
) *ReportsService {
	return &ReportsService{
		customerRepo:  customerRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
		stockRepo:     stockRepo,
		storeRepo:     storeRepo,
		carrierRepo:   carrierRepo,
	}
}

// customerIndex loads every customer keyed by id for foreign-key lookups.
func (s *ReportsService) customerIndex(ctx context.Context) (map[uint64]domain.Customer, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[uint64]domain.Customer, len(customers))
	for _, c := range customers {
		index[c.CustomerID] = c
	}

	return index, nil
}

// productNameIndex loads every product name keyed by id.
func (s *ReportsService) productNameIndex(ctx context.Context) (map[uint64]string, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[uint64]string, len(products))
	for _, p := range products {
		index[p.ProductID] = p.ProductName
	}

	return index, nil
}

func customerNameFor(index map[uint64]domain.Customer, order domain.Order) (string, error) {
	customer, ok := index[order.CustomerID]
	if !ok {
		return "", fmt.Errorf("%w: order %d references missing customer %d",
			ErrDataIntegrity, order.OrderID, order.CustomerID)
	}

	return customer.FullName(), nil
}

func missingProductErr(orderID, productID uint64) error {
	return fmt.Errorf("%w: order %d references missing product %d",
		ErrDataIntegrity, orderID, productID)
}

func productNameFor(index map[uint64]string, item domain.OrderItem) (string, error) {
	name, ok := index[item.ProductID]
	if !ok {
		return "", fmt.Errorf("%w: order item %d references missing product %d",
			ErrDataIntegrity, item.OrderItemID, item.ProductID)
	}

	return name, nil
}
