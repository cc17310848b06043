package reports

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerRow struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type OrderItemCountRow struct {
	OrderID      uint64 `json:"order_id"`
	CustomerName string `json:"customer_name"`
	Status       string `json:"status"`
	ItemCount    int    `json:"item_count"`
}

type ProductPriceRow struct {
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
}

type OrderTotalRow struct {
	CustomerName string          `json:"customer_name"`
	OrderID      uint64          `json:"order_id"`
	OrderDate    time.Time       `json:"order_date"`
	Total        decimal.Decimal `json:"total"`
}

type CustomerOrderCountRow struct {
	CustomerName string `json:"customer_name"`
	OrderCount   int    `json:"order_count"`
}

type CustomerValueRow struct {
	CustomerName    string          `json:"customer_name"`
	TotalOrderValue decimal.Decimal `json:"total_order_value"`
}

type RecentOrderRow struct {
	OrderID      uint64    `json:"order_id"`
	OrderDate    time.Time `json:"order_date"`
	CustomerName string    `json:"customer_name"`
}

type ProductSalesRow struct {
	ProductName string `json:"product_name"`
	TotalSold   int    `json:"total_sold"`
}

type DiscountedOrderRow struct {
	OrderID            uint64   `json:"order_id"`
	CustomerName       string   `json:"customer_name"`
	DiscountedProducts []string `json:"discounted_products"`
}

type ElectronicsProductRow struct {
	ProductName string `json:"product_name"`
	// StoreWithMaxStock is empty when the product has no stock rows at all.
	StoreWithMaxStock string `json:"store_with_max_stock"`
}

type ElectronicsOrderRow struct {
	OrderID      uint64                  `json:"order_id"`
	CustomerName string                  `json:"customer_name"`
	Products     []ElectronicsProductRow `json:"products"`
}

type CarrierRow struct {
	CarrierName  string `json:"carrier_name"`
	ContactURL   string `json:"contact_url"`
	ContactPhone string `json:"contact_phone"`
}
