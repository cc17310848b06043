package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"webstore/business/reports"

	"github.com/shopspring/decimal"
)

// Printer renders report rows as human-readable lines, one row per line.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func date(t time.Time) string {
	return t.Format("2006-01-02")
}

func (p *Printer) Customers(rows []reports.CustomerRow) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(p.w, "Customer: %s, Email: %s\n", row.FullName, row.Email); err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) OrdersWithItemCount(rows []reports.OrderItemCountRow) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(p.w, "Order ID: %d, Customer: %s, Status: %s, Item Count: %d\n",
			row.OrderID, row.CustomerName, row.Status, row.ItemCount); err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) ProductsByPrice(rows []reports.ProductPriceRow) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(p.w, "Product: %s, Price: %s\n", row.ProductName, money(row.Price)); err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) PendingOrders(rows []reports.OrderTotalRow) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(p.w, "Customer: %s, Order ID: %d, Date: %s, Total Price: %s\n",
			row.CustomerName, row.OrderID, date(row.OrderDate), money(row.Total)); err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) OrderCounts(rows []reports.CustomerOrderCountRow) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(p.w, "Customer: %s, Number of Orders: %d\n",
			row.CustomerName, row.OrderCount); err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) TopCustomers(rows []reports.CustomerValueRow) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(p.w, "Customer: %s, Total Order Value: %s\n",
			row.CustomerName, money(row.TotalOrderValue)); err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) RecentOrders(rows []reports.RecentOrderRow) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(p.w, "Order ID: %d, Date: %s, Customer: %s\n",
			row.OrderID, date(row.OrderDate), row.CustomerName); err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) ProductSales(rows []reports.ProductSalesRow) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(p.w, "Product: %s, Total Sold: %d\n", row.ProductName, row.TotalSold); err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) DiscountedOrders(rows []reports.DiscountedOrderRow) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(p.w, "Order ID: %d, Customer: %s, Discounted Products: %s\n",
			row.OrderID, row.CustomerName, strings.Join(row.DiscountedProducts, ", ")); err != nil {
			return err
		}
	}

	return nil
}

// ElectronicsOrders prints one line per order and an indented sub-line per
// matching item.
func (p *Printer) ElectronicsOrders(rows []reports.ElectronicsOrderRow) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(p.w, "Order ID: %d, Customer: %s\n", row.OrderID, row.CustomerName); err != nil {
			return err
		}

		for _, product := range row.Products {
			if _, err := fmt.Fprintf(p.w, "  Product: %s, Store with Max Stock: %s\n",
				product.ProductName, product.StoreWithMaxStock); err != nil {
				return err
			}
		}
	}

	return nil
}

func (p *Printer) Carriers(rows []reports.CarrierRow) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(p.w, "Carrier: %s, Contact: %s %s\n",
			row.CarrierName, row.ContactURL, row.ContactPhone); err != nil {
			return err
		}
	}

	return nil
}
