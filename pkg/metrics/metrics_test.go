package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics("raikiri").(*Metrics)
	m.RegisterCounter("login_requests_total", "Total number of login requests received")
	m.RegisterCounterVec("dashboard_queries_total", "Dashboard queries by section", []string{"section"})

	m.IncCounter("login_requests_total")
	m.IncCounter("login_requests_total")
	m.IncCounter("unknown_total")
	m.IncCounterVec("dashboard_queries_total", "minerals")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.counters["login_requests_total"]))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.counterVecs["dashboard_queries_total"].WithLabelValues("minerals")))

	families, err := m.GetRegistry().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "raikiri_login_requests_total")
	assert.Contains(t, names, "raikiri_dashboard_queries_total")
}

func TestMetrics_HistogramsAndGauges(t *testing.T) {
	m := NewMetrics("raikiri").(*Metrics)
	m.RegisterHistogram("login_duration_seconds", "Duration of login requests", []float64{0.1, 1})
	m.RegisterHistogramVec("dashboard_query_duration_seconds", "Query duration", []float64{0.1, 1}, []string{"section"})
	m.RegisterGauge("dashboard_last_render_sections", "Sections rendered")

	m.ObserveHistogram("login_duration_seconds", 0.05)
	m.ObserveHistogramVec("dashboard_query_duration_seconds", 0.5, "projects")
	m.SetGauge("dashboard_last_render_sections", 8)

	assert.Equal(t, 1, testutil.CollectAndCount(m.histograms["login_duration_seconds"]))
	assert.Equal(t, 1, testutil.CollectAndCount(m.histogramVecs["dashboard_query_duration_seconds"]))
	assert.Equal(t, 8.0, testutil.ToFloat64(m.gauges["dashboard_last_render_sections"]))
}

func TestMetrics_DuplicateRegistrationPanics(t *testing.T) {
	m := NewMetrics("raikiri")
	m.RegisterCounter("signup_requests_total", "help")
	assert.Panics(t, func() {
		m.RegisterCounter("signup_requests_total", "help")
	})
}
