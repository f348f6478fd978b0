package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"sales_engine/internal/adapter/http/handlers/mocks"
	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestItemHandler_Golden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	stats := mocks.NewMockIItemStats(ctrl)
	h := NewItemHandler(stats)

	r := gin.New()
	r.GET("/v1/items/golden", h.Golden)

	stats.EXPECT().GoldenItems().Return([]entities.Item{{ID: 263410685, UnitPrice: decimal.RequireFromString("8000")}}, nil)

	w := serve(r, http.MethodGet, "/v1/items/golden")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body) != 1 || body[0]["unit_price"] != "8000.00" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestItemHandler_PriceStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stats := mocks.NewMockIItemStats(ctrl)
		h := NewItemHandler(stats)

		r := gin.New()
		r.GET("/v1/items/price-stats", h.PriceStats)

		stats.EXPECT().AverageItemPrice().Return(decimal.RequireFromString("251.06"), nil)
		stats.EXPECT().ItemPriceStandardDeviation().Return(2900.99, nil)
		stats.EXPECT().AverageAveragePricePerMerchant().Return(decimal.RequireFromString("350.29"), nil)
		stats.EXPECT().MaxItemPrice().Return(decimal.RequireFromString("99999"), true)

		w := serve(r, http.MethodGet, "/v1/items/price-stats")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["average_price"] != "251.06" || body["max_price"] != "99999.00" || body["standard_deviation"] != 2900.99 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stats := mocks.NewMockIItemStats(ctrl)
		h := NewItemHandler(stats)

		r := gin.New()
		r.GET("/v1/items/price-stats", h.PriceStats)

		stats.EXPECT().AverageItemPrice().Return(decimal.Zero, usecase.ErrInsufficientSample)

		if w := serve(r, http.MethodGet, "/v1/items/price-stats"); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestItemHandler_MerchantAveragePrice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	stats := mocks.NewMockIItemStats(ctrl)
	h := NewItemHandler(stats)

	r := gin.New()
	r.GET("/v1/merchants/:id/average-item-price", h.MerchantAveragePrice)

	stats.EXPECT().AverageItemPriceForMerchant(int64(12334105)).Return(decimal.RequireFromString("16.66"), nil)

	w := serve(r, http.MethodGet, "/v1/merchants/12334105/average-item-price")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["average_item_price"] != "16.66" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
