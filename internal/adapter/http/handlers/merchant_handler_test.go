package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"sales_engine/internal/adapter/http/handlers/mocks"
	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestMerchantHandler_Revenue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	stats := mocks.NewMockIMerchantStats(ctrl)
	h := NewMerchantHandler(stats)

	r := gin.New()
	r.GET("/v1/merchants/:id/revenue", h.Revenue)

	stats.EXPECT().RevenueByMerchant(int64(12334194)).Return(decimal.RequireFromString("81572.4"))

	w := serve(r, http.MethodGet, "/v1/merchants/12334194/revenue")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["revenue"] != "81572.40" {
		t.Fatalf("unexpected revenue: %v", body["revenue"])
	}
}

func TestMerchantHandler_Outliers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stats := mocks.NewMockIMerchantStats(ctrl)
		h := NewMerchantHandler(stats)

		r := gin.New()
		r.GET("/v1/merchants/top-by-invoice-count", h.TopByInvoiceCount)

		stats.EXPECT().TopMerchantsByInvoiceCount().Return([]entities.Merchant{{ID: 1}, {ID: 2}}, nil)

		if w := serve(r, http.MethodGet, "/v1/merchants/top-by-invoice-count"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("insufficient sample", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stats := mocks.NewMockIMerchantStats(ctrl)
		h := NewMerchantHandler(stats)

		r := gin.New()
		r.GET("/v1/merchants/high-item-count", h.HighItemCount)

		stats.EXPECT().MerchantsWithHighItemCount().Return(nil, fmt.Errorf("%w: standard deviation of 1 observations", usecase.ErrInsufficientSample))

		w := serve(r, http.MethodGet, "/v1/merchants/high-item-count")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["code"] != "INSUFFICIENT_SAMPLE" {
			t.Fatalf("unexpected code: %v", body["code"])
		}
	})
}

func TestMerchantHandler_BestItem(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	stats := mocks.NewMockIMerchantStats(ctrl)
	h := NewMerchantHandler(stats)

	r := gin.New()
	r.GET("/v1/merchants/:id/best-item", h.BestItem)

	stats.EXPECT().BestItemForMerchant(int64(1)).Return(entities.Item{ID: 263516130}, true)
	stats.EXPECT().BestItemForMerchant(int64(2)).Return(entities.Item{}, false)

	if w := serve(r, http.MethodGet, "/v1/merchants/1/best-item"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/v1/merchants/2/best-item"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestMerchantHandler_TopRevenueEarners(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	stats := mocks.NewMockIMerchantStats(ctrl)
	h := NewMerchantHandler(stats)

	r := gin.New()
	r.GET("/v1/merchants/top-revenue-earners", h.TopRevenueEarners)

	stats.EXPECT().TopRevenueEarners(10).Return([]entities.Merchant{{ID: 12334634}})

	if w := serve(r, http.MethodGet, "/v1/merchants/top-revenue-earners?n=10"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/v1/merchants/top-revenue-earners?n=ten"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestMerchantHandler_Stats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	stats := mocks.NewMockIMerchantStats(ctrl)
	h := NewMerchantHandler(stats)

	r := gin.New()
	r.GET("/v1/merchants/stats", h.Stats)

	stats.EXPECT().AverageItemsPerMerchant().Return(2.88, nil)
	stats.EXPECT().AverageItemsPerMerchantStandardDeviation().Return(3.26, nil)
	stats.EXPECT().AverageInvoicesPerMerchant().Return(10.49, nil)
	stats.EXPECT().AverageInvoicesPerMerchantStandardDeviation().Return(3.29, nil)

	w := serve(r, http.MethodGet, "/v1/merchants/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]float64
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["average_items"] != 2.88 || body["invoices_standard_deviation"] != 3.29 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestMerchantHandler_RankedByRevenue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	stats := mocks.NewMockIMerchantStats(ctrl)
	h := NewMerchantHandler(stats)

	r := gin.New()
	r.GET("/v1/merchants/ranked-by-revenue", h.RankedByRevenue)

	stats.EXPECT().RankedRevenue().Return([]usecase.MerchantRevenue{
		{Merchant: entities.Merchant{ID: 12334634, Name: "Shopin1901"}, Revenue: decimal.RequireFromString("410")},
		{Merchant: entities.Merchant{ID: 12334105}, Revenue: decimal.Zero},
	})

	w := serve(r, http.MethodGet, "/v1/merchants/ranked-by-revenue")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []struct {
		Merchant struct {
			ID int64 `json:"id"`
		} `json:"merchant"`
		Revenue string `json:"revenue"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body) != 2 || body[0].Merchant.ID != 12334634 || body[0].Revenue != "410.00" || body[1].Revenue != "0.00" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
