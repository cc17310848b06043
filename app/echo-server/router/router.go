package router

import (
	"webstore/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupReportRoutes(api *echo.Group, handler *rest.ReportsHandler) {
	reports := api.Group("/reports")

	reports.GET("/customers", handler.ListCustomers)
	reports.GET("/customers/order-counts", handler.OrderCountPerCustomer)
	reports.GET("/customers/top", handler.TopCustomersByValue)
	reports.GET("/orders/item-counts", handler.OrdersWithItemCount)
	reports.GET("/orders/pending", handler.PendingOrdersWithTotal)
	reports.GET("/orders/recent", handler.RecentOrders)
	reports.GET("/orders/discounted", handler.DiscountedOrders)
	reports.GET("/orders/electronics", handler.ElectronicsOrders)
	reports.GET("/products/by-price", handler.ProductsByPriceDesc)
	reports.GET("/products/sales", handler.TotalSoldPerProduct)
}

func SetupCarrierRoutes(api *echo.Group, handler *rest.ReportsHandler) {
	api.GET("/carriers", handler.ListCarriers)
}

func SetupMetricsRoute(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
