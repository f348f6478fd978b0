package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sales_engine/internal/adapter/persistence/repository"
	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos, err := repository.NewRepositories(entities.Dataset{
		entities.KindMerchants: {
			{"id": "1", "name": "Shopin1901"},
			{"id": "2", "name": "Candisart"},
		},
		entities.KindItems: {
			{"id": "10", "name": "Pen", "unit_price": "1200", "merchant_id": "1"},
		},
		entities.KindCustomers: {
			{"id": "1", "first_name": "Joey", "last_name": "Ondricka"},
		},
		entities.KindInvoices: {
			{"id": "1", "customer_id": "1", "merchant_id": "1", "status": "shipped", "created_at": "2012-03-25 09:54:09 UTC"},
		},
		entities.KindInvoiceItems: {
			{"id": "1", "item_id": "10", "invoice_id": "1", "quantity": "3", "unit_price": "1200"},
		},
		entities.KindTransactions: {
			{"id": "1", "invoice_id": "1", "credit_card_number": "4068631943231473", "result": "success", "created_at": "2012-03-27 14:54:09 UTC"},
		},
	}, nil)
	require.NoError(t, err)

	return NewRouter(Dependencies{
		Analyst: usecase.NewSalesAnalyst(repos),
		Catalog: usecase.NewCatalogUseCase(repos.Merchants, repos.Items),
	})
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)

	w := get(r, "/v1/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestMetricsRouteRequiresMetrics(t *testing.T) {
	r := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, get(r, "/metrics").Code)
}

func TestRouter_AnalyticsEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := get(r, "/v1/merchants/1/revenue")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"merchant_id":1,"revenue":"36.00"}`, w.Body.String())

	w = get(r, "/v1/revenue/2012-03-27")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"date":"2012-03-27","revenue":"36.00"}`, w.Body.String())

	w = get(r, "/v1/merchants/top-revenue-earners?n=1")
	require.Equal(t, http.StatusOK, w.Code)
	var earners []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &earners))
	require.Len(t, earners, 1)
	assert.Equal(t, "Shopin1901", earners[0]["name"])

	// two merchants is the smallest sample with a deviation
	assert.Equal(t, http.StatusOK, get(r, "/v1/merchants/high-item-count").Code)
	// one item is not enough for a price deviation
	assert.Equal(t, http.StatusUnprocessableEntity, get(r, "/v1/items/golden").Code)
}

func TestRouter_CatalogChangesAreVisibleToAnalytics(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/items",
		bytes.NewBufferString(`{"name":"Pencil","unit_price":"4.50","merchant_id":2}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, float64(11), created["id"])

	w = get(r, "/v1/merchants/2/average-item-price")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"merchant_id":2,"average_item_price":"4.50"}`, w.Body.String())

	w = get(r, "/v1/merchants?name=candis")
	require.Equal(t, http.StatusOK, w.Code)
	var found []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	assert.Len(t, found, 1)
}
