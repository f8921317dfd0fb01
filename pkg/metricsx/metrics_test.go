package metricsx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/scribe/pkg/metricsx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrumentCountsByRouteAndStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metricsx.NewCollector("scribe", reg)

	h := c.Instrument("GET /api/blogs/{id}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("missing") != "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))

	for range 3 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/blogs/x", nil))
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/blogs/x?missing=1", nil))

	count, err := testutil.GatherAndCount(reg, "scribe_http_requests_total")
	require.NoError(t, err)
	require.Equal(t, 2, count, "one series per status code")

	mfs, err := reg.Gather()
	require.NoError(t, err)
	var ok, notFound float64
	for _, mf := range mfs {
		if mf.GetName() != "scribe_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "status" && l.GetValue() == "200" {
					ok = m.GetCounter().GetValue()
				}
				if l.GetName() == "status" && l.GetValue() == "404" {
					notFound = m.GetCounter().GetValue()
				}
			}
		}
	}
	require.Equal(t, 3.0, ok)
	require.Equal(t, 1.0, notFound)
}

func TestNilCollectorIsPassthrough(t *testing.T) {
	var c *metricsx.Collector
	inner := http.NotFoundHandler()
	require.NotNil(t, c.Instrument("x", inner))

	rec := httptest.NewRecorder()
	c.Instrument("x", inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerServesExposition(t *testing.T) {
	reg := metricsx.NewRegistry()
	metricsx.NewCollector("scribe", reg)

	rec := httptest.NewRecorder()
	metricsx.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}
