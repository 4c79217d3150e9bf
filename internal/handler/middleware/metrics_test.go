//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/pkg/metrics"
	"facility-booking/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New()
	router := gin.New()
	router.Use(middleware.MetricsMiddleware(m))
	router.GET("/api/bookings/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	httptest.PerformRequest(t, router, http.MethodGet, "/api/bookings/1", nil, "")
	httptest.PerformRequest(t, router, http.MethodGet, "/api/bookings/2", nil, "")
	httptest.PerformRequest(t, router, http.MethodGet, "/nowhere", nil, "")

	assert.InDelta(t, 2, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/api/bookings/:id", "GET", "204")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("unmatched", "GET", "404")), 0)
}
