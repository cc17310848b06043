package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"webstore/business/reports"
	"webstore/internal/console"
	psqlRepo "webstore/internal/repository/postgres"
	"webstore/pkg/config"
	"webstore/pkg/database"
	"webstore/pkg/logger"
)

// report-cli runs every report once against the configured database and
// prints the rows to stdout, stopping at the first failure.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	service := reports.NewReportsService(
		psqlRepo.NewCustomerRepository(db),
		psqlRepo.NewOrderRepository(db),
		psqlRepo.NewOrderItemRepository(db),
		psqlRepo.NewProductRepository(db),
		psqlRepo.NewStockRepository(db),
		psqlRepo.NewStoreRepository(db),
		psqlRepo.NewCarrierRepository(db),
	)

	printer := console.NewPrinter(os.Stdout)
	ctx := context.Background()

	if err := runAll(ctx, service, printer); err != nil {
		logger.Fatal("Report run failed", "error", err)
	}
}

func runAll(ctx context.Context, service *reports.ReportsService, printer *console.Printer) error {
	steps := []struct {
		title string
		run   func() error
	}{
		{"All customers", func() error {
			rows, err := service.ListCustomers(ctx)
			if err != nil {
				return err
			}
			return printer.Customers(rows)
		}},
		{"Orders with item count", func() error {
			rows, err := service.OrdersWithItemCount(ctx)
			if err != nil {
				return err
			}
			return printer.OrdersWithItemCount(rows)
		}},
		{"Products by descending price", func() error {
			rows, err := service.ProductsByPriceDesc(ctx)
			if err != nil {
				return err
			}
			return printer.ProductsByPrice(rows)
		}},
		{"Pending orders with total price", func() error {
			rows, err := service.PendingOrdersWithTotal(ctx)
			if err != nil {
				return err
			}
			return printer.PendingOrders(rows)
		}},
		{"Order count per customer", func() error {
			rows, err := service.OrderCountPerCustomer(ctx)
			if err != nil {
				return err
			}
			return printer.OrderCounts(rows)
		}},
		{"Top 3 customers by order value", func() error {
			rows, err := service.TopCustomersByValue(ctx)
			if err != nil {
				return err
			}
			return printer.TopCustomers(rows)
		}},
		{"Orders from the last 30 days", func() error {
			rows, err := service.RecentOrders(ctx, time.Now())
			if err != nil {
				return err
			}
			return printer.RecentOrders(rows)
		}},
		{"Total sold per product", func() error {
			rows, err := service.TotalSoldPerProduct(ctx)
			if err != nil {
				return err
			}
			return printer.ProductSales(rows)
		}},
		{"Orders with discounted items", func() error {
			rows, err := service.DiscountedOrders(ctx)
			if err != nil {
				return err
			}
			return printer.DiscountedOrders(rows)
		}},
		{"Electronics orders", func() error {
			rows, err := service.ElectronicsOrders(ctx)
			if err != nil {
				return err
			}
			return printer.ElectronicsOrders(rows)
		}},
	}

	for _, step := range steps {
		fmt.Printf("--- %s ---\n", step.title)
		if err := step.run(); err != nil {
			return fmt.Errorf("%s: %w", step.title, err)
		}
		fmt.Println()
	}

	return nil
}
