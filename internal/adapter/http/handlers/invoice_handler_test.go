package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"sales_engine/internal/adapter/http/handlers/mocks"
	"sales_engine/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_StatusShare(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	stats := mocks.NewMockIInvoiceStats(ctrl)
	h := NewInvoiceHandler(stats)

	r := gin.New()
	r.GET("/v1/invoices/status/:status", h.StatusShare)

	stats.EXPECT().InvoiceStatus(entities.InvoiceStatusPending).Return(29.55, nil)

	w := serve(r, http.MethodGet, "/v1/invoices/status/PENDING")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["status"] != "pending" || body["percentage"] != 29.55 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	if w := serve(r, http.MethodGet, "/v1/invoices/status/lost"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestInvoiceHandler_Weekdays(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	stats := mocks.NewMockIInvoiceStats(ctrl)
	h := NewInvoiceHandler(stats)

	r := gin.New()
	r.GET("/v1/invoices/weekdays", h.Weekdays)
	r.GET("/v1/invoices/top-days", h.TopDays)

	stats.EXPECT().DayCountHash().Return(map[time.Weekday]int{time.Saturday: 729, time.Friday: 701})
	stats.EXPECT().InvoiceWeekdayStandardDeviation().Return(18.07)
	stats.EXPECT().TopDaysByInvoiceCount().Return([]time.Weekday{time.Wednesday})

	w := serve(r, http.MethodGet, "/v1/invoices/weekdays")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w = serve(r, http.MethodGet, "/v1/invoices/top-days")
	if w.Code != http.StatusOK || w.Body.String() != `["Wednesday"]` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestInvoiceHandler_RevenueByDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	stats := mocks.NewMockIInvoiceStats(ctrl)
	h := NewInvoiceHandler(stats)

	r := gin.New()
	r.GET("/v1/revenue/:date", h.RevenueByDate)

	day := time.Date(2009, time.February, 7, 0, 0, 0, 0, time.UTC)
	stats.EXPECT().TotalRevenueByDate(day).Return(decimal.RequireFromString("21067.77"))

	w := serve(r, http.MethodGet, "/v1/revenue/2009-02-07")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["date"] != "2009-02-07" || body["revenue"] != "21067.77" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	if w := serve(r, http.MethodGet, "/v1/revenue/yesterday"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestInvoiceHandler_Best(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	stats := mocks.NewMockIInvoiceStats(ctrl)
	h := NewInvoiceHandler(stats)

	r := gin.New()
	r.GET("/v1/invoices/best", h.Best)

	stats.EXPECT().BestInvoiceByRevenue().Return(entities.Invoice{ID: 3394}, true)
	stats.EXPECT().BestInvoiceByQuantity().Return(entities.Invoice{}, false)

	if w := serve(r, http.MethodGet, "/v1/invoices/best"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/v1/invoices/best?by=quantity"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/v1/invoices/best?by=color"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestInvoiceHandler_Total(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	stats := mocks.NewMockIInvoiceStats(ctrl)
	h := NewInvoiceHandler(stats)

	r := gin.New()
	r.GET("/v1/invoices/:id/total", h.Total)

	stats.EXPECT().InvoiceTotal(int64(1)).Return(decimal.RequireFromString("21067.77"))
	stats.EXPECT().InvoicePaidInFull(int64(1)).Return(true)

	w := serve(r, http.MethodGet, "/v1/invoices/1/total")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["total"] != "21067.77" || body["paid_in_full"] != true {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
