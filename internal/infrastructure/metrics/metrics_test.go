package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sales_engine/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_GinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(prometheus.NewRegistry())

	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/v1/merchants/:id/revenue", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/merchants/1/revenue", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	if got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/v1/merchants/:id/revenue", "200")); got != 3 {
		t.Fatalf("expected 3 requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "unknown", "404")); got != 1 {
		t.Fatalf("expected 1 unmatched request, got %v", got)
	}
	if got := testutil.CollectAndCount(m.duration); got != 2 {
		t.Fatalf("expected 2 latency series, got %d", got)
	}
}

func TestMetrics_ObserveRowsLoaded(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveRowsLoaded(entities.KindMerchants, 475)
	m.ObserveRowsLoaded(entities.KindMerchants, 1)

	if got := testutil.ToFloat64(m.rowsLoaded.WithLabelValues("merchants")); got != 476 {
		t.Fatalf("expected 476 rows, got %v", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveRowsLoaded(entities.KindItems, 10)

	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
