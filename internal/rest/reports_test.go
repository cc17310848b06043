//go:build !integration

package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"webstore/business/reports"

	"github.com/labstack/echo/v4"
)

// fakeReportsService returns canned rows, or err from every method when set.
type fakeReportsService struct {
	customers []reports.CustomerRow
	err       error
}

func (f *fakeReportsService) ListCustomers(_ context.Context) ([]reports.CustomerRow, error) {
	return f.customers, f.err
}

func (f *fakeReportsService) OrdersWithItemCount(_ context.Context) ([]reports.OrderItemCountRow, error) {
	return nil, f.err
}

func (f *fakeReportsService) ProductsByPriceDesc(_ context.Context) ([]reports.ProductPriceRow, error) {
	return nil, f.err
}

func (f *fakeReportsService) PendingOrdersWithTotal(_ context.Context) ([]reports.OrderTotalRow, error) {
	return nil, f.err
}

func (f *fakeReportsService) OrderCountPerCustomer(_ context.Context) ([]reports.CustomerOrderCountRow, error) {
	return nil, f.err
}

func (f *fakeReportsService) TopCustomersByValue(_ context.Context) ([]reports.CustomerValueRow, error) {
	return nil, f.err
}

func (f *fakeReportsService) RecentOrders(_ context.Context, _ time.Time) ([]reports.RecentOrderRow, error) {
	return nil, f.err
}

func (f *fakeReportsService) TotalSoldPerProduct(_ context.Context) ([]reports.ProductSalesRow, error) {
	return nil, f.err
}

func (f *fakeReportsService) DiscountedOrders(_ context.Context) ([]reports.DiscountedOrderRow, error) {
	return nil, f.err
}

func (f *fakeReportsService) ElectronicsOrders(_ context.Context) ([]reports.ElectronicsOrderRow, error) {
	return nil, f.err
}

func (f *fakeReportsService) ListCarriers(_ context.Context) ([]reports.CarrierRow, error) {
	return nil, f.err
}

func TestListCustomersHandler(t *testing.T) {
	service := &fakeReportsService{
		customers: []reports.CustomerRow{
			{FullName: "John Doe", Email: "john@example.com"},
		},
	}
	handler := NewReportsHandler(service)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/customers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListCustomers(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "John Doe") {
		t.Errorf("response body missing customer: %s", rec.Body.String())
	}
}

func TestRecentOrdersHandler_RejectsBadAsOf(t *testing.T) {
	handler := NewReportsHandler(&fakeReportsService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/orders/recent?as_of=not-a-date", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.RecentOrders(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestDiscountedOrdersHandler_IntegrityViolation(t *testing.T) {
	service := &fakeReportsService{
		err: fmt.Errorf("%w: order 5 references missing customer 9", reports.ErrDataIntegrity),
	}
	handler := NewReportsHandler(service)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/orders/discounted", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.DiscountedOrders(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status: got %d, want 409", rec.Code)
	}
}
