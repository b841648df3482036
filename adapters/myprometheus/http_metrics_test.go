package myprometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mypresence/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestCounts(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "mypresence_http_requests_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			counts[labels["method"]+" "+labels["route"]+" "+labels["status"]] = m.GetCounter().GetValue()
		}
	}
	return counts
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := echo.New()
	service.RegisterErrorHandler(e, log.NewNopLogger())
	e.Use(NewHTTPMetricsMiddleware(reg, ""))
	e.GET("/ok/:id", func(c echo.Context) error { return c.String(http.StatusOK, "OK") })
	e.GET("/down", func(c echo.Context) error {
		return service.NewStorageUnavailableError("Redis error", assert.AnError)
	})

	for _, path := range []string{"/ok/1", "/ok/2", "/down"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if path == "/down" {
			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		} else {
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	}

	counts := requestCounts(t, reg)
	assert.Equal(t, 2.0, counts["GET /ok/:id 200"])
	assert.Equal(t, 1.0, counts["GET /down 503"])
}
