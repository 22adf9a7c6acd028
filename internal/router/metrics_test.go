package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMetricsMiddlewareRecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	metrics := NewMetrics("shop")
	r := gin.New()
	r.Use(metrics.Middleware())
	r.GET("/metrics", metrics.Handler())
	r.GET("/api/v1/products/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, path := range []string{"/api/v1/products/1", "/api/v1/products/2"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status want 200 got %d", w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	want := `shop_http_requests_total{method="GET",route="/api/v1/products/:id",status="200"} 2`
	if !strings.Contains(body, want) {
		t.Fatalf("metrics output missing %q:\n%s", want, body)
	}
	if strings.Contains(body, `route="/api/v1/products/1"`) {
		t.Fatalf("raw path should not be used as label")
	}
}

func TestNewMetricsUsesIsolatedRegistry(t *testing.T) {
	// 多次创建不应因重复注册 panic
	_ = NewMetrics("")
	_ = NewMetrics("")
}
