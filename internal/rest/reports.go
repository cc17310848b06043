package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"webstore/business/reports"
	"webstore/pkg/logger"
	"webstore/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ReportsService interface {
	ListCustomers(ctx context.Context) ([]reports.CustomerRow, error)
	OrdersWithItemCount(ctx context.Context) ([]reports.OrderItemCountRow, error)
	ProductsByPriceDesc(ctx context.Context) ([]reports.ProductPriceRow, error)
	PendingOrdersWithTotal(ctx context.Context) ([]reports.OrderTotalRow, error)
	OrderCountPerCustomer(ctx context.Context) ([]reports.CustomerOrderCountRow, error)
	TopCustomersByValue(ctx context.Context) ([]reports.CustomerValueRow, error)
	RecentOrders(ctx context.Context, asOf time.Time) ([]reports.RecentOrderRow, error)
	TotalSoldPerProduct(ctx context.Context) ([]reports.ProductSalesRow, error)
	DiscountedOrders(ctx context.Context) ([]reports.DiscountedOrderRow, error)
	ElectronicsOrders(ctx context.Context) ([]reports.ElectronicsOrderRow, error)
	ListCarriers(ctx context.Context) ([]reports.CarrierRow, error)
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type ReportsHandler struct {
	reportsService ReportsService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewReportsHandler(reportsService ReportsService) *ReportsHandler {
	return &ReportsHandler{
		reportsService: reportsService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type RecentOrdersRequest struct {
	// AsOf overrides the reference date for the 30-day window, mainly for
	// reproducing a past report run. Defaults to the current time.
	AsOf string `query:"as_of" validate:"omitempty,datetime=2006-01-02"`
}

// respond maps report outcomes to HTTP, recording metrics for the run.
func (h *ReportsHandler) respond(c echo.Context, report string, started time.Time, rows interface{}, err error) error {
	metrics.ReportRuns.WithLabelValues(report).Inc()
	metrics.ReportDuration.WithLabelValues(report).Observe(time.Since(started).Seconds())

	if err != nil {
		metrics.ReportFailures.WithLabelValues(report).Inc()
		logger.Error("report failed", "report", report, err)

		if errors.Is(err, reports.ErrDataIntegrity) {
			return c.JSON(http.StatusConflict, ResponseError{Message: err.Error()})
		}

		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rows))
}

func (h *ReportsHandler) ListCustomers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	started := time.Now()
	rows, err := h.reportsService.ListCustomers(ctx)

	return h.respond(c, "customers", started, rows, err)
}

func (h *ReportsHandler) OrdersWithItemCount(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	started := time.Now()
	rows, err := h.reportsService.OrdersWithItemCount(ctx)

	return h.respond(c, "orders_item_count", started, rows, err)
}

func (h *ReportsHandler) ProductsByPriceDesc(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	started := time.Now()
	rows, err := h.reportsService.ProductsByPriceDesc(ctx)

	return h.respond(c, "products_by_price", started, rows, err)
}

func (h *ReportsHandler) PendingOrdersWithTotal(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	started := time.Now()
	rows, err := h.reportsService.PendingOrdersWithTotal(ctx)

	return h.respond(c, "pending_orders", started, rows, err)
}

func (h *ReportsHandler) OrderCountPerCustomer(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	started := time.Now()
	rows, err := h.reportsService.OrderCountPerCustomer(ctx)

	return h.respond(c, "order_counts", started, rows, err)
}

func (h *ReportsHandler) TopCustomersByValue(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	started := time.Now()
	rows, err := h.reportsService.TopCustomersByValue(ctx)

	return h.respond(c, "top_customers", started, rows, err)
}

func (h *ReportsHandler) RecentOrders(c echo.Context) error {
	var req RecentOrdersRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("failed to validate recent orders request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	asOf := time.Now()
	if req.AsOf != "" {
		parsed, err := time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid as_of date"})
		}
		asOf = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	started := time.Now()
	rows, err := h.reportsService.RecentOrders(ctx, asOf)

	return h.respond(c, "recent_orders", started, rows, err)
}

func (h *ReportsHandler) TotalSoldPerProduct(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	started := time.Now()
	rows, err := h.reportsService.TotalSoldPerProduct(ctx)

	return h.respond(c, "product_sales", started, rows, err)
}

func (h *ReportsHandler) DiscountedOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	started := time.Now()
	rows, err := h.reportsService.DiscountedOrders(ctx)

	return h.respond(c, "discounted_orders", started, rows, err)
}

func (h *ReportsHandler) ElectronicsOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	started := time.Now()
	rows, err := h.reportsService.ElectronicsOrders(ctx)

	return h.respond(c, "electronics_orders", started, rows, err)
}

func (h *ReportsHandler) ListCarriers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	started := time.Now()
	rows, err := h.reportsService.ListCarriers(ctx)

	return h.respond(c, "carriers", started, rows, err)
}
