//go:build !integration

package console

import (
	"bytes"
	"testing"
	"time"

	"webstore/business/reports"

	"github.com/shopspring/decimal"
)

func TestPendingOrdersLine(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	orderDate, _ := time.Parse("2006-01-02", "2026-08-01")
	err := printer.PendingOrders([]reports.OrderTotalRow{
		{
			CustomerName: "John Doe",
			OrderID:      7,
			OrderDate:    orderDate,
			Total:        decimal.RequireFromString("34.00"),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Customer: John Doe, Order ID: 7, Date: 2026-08-01, Total Price: $34.00\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestElectronicsOrdersNestedLines(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	err := printer.ElectronicsOrders([]reports.ElectronicsOrderRow{
		{
			OrderID:      3,
			CustomerName: "Jane Roe",
			Products: []reports.ElectronicsProductRow{
				{ProductName: "Laptop", StoreWithMaxStock: "Mall"},
				{ProductName: "Phone", StoreWithMaxStock: ""},
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Order ID: 3, Customer: Jane Roe\n" +
		"  Product: Laptop, Store with Max Stock: Mall\n" +
		"  Product: Phone, Store with Max Stock: \n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestDiscountedOrdersJoinsProductNames(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	err := printer.DiscountedOrders([]reports.DiscountedOrderRow{
		{OrderID: 5, CustomerName: "John Doe", DiscountedProducts: []string{"Laptop", "Mouse"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Order ID: 5, Customer: John Doe, Discounted Products: Laptop, Mouse\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestMoneyPadding(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	err := printer.ProductsByPrice([]reports.ProductPriceRow{
		{ProductName: "Mouse", Price: decimal.RequireFromString("19.9")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Product: Mouse, Price: $19.90\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
