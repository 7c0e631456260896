package metrics

import (
	"testing"

	pkgmetrics "github.com/haguru/raikiri/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	m := pkgmetrics.NewMetrics("test_service")
	require.NotPanics(t, func() { Register(m) })

	m.IncCounter(LoginRequestsTotal)
	m.IncCounter(SignupRequestsTotal)
	m.IncCounterVec(DashboardSectionsTotal, "projects", OutcomeOK)
	m.ObserveHistogram(DashboardRenderSeconds, 0.2)
	m.SetGauge(DashboardInvestmentTotal, 1000)

	families, err := m.GetRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"test_service_" + LoginRequestsTotal,
		"test_service_" + SignupRequestsTotal,
		"test_service_" + DashboardSectionsTotal,
		"test_service_" + DashboardRenderSeconds,
		"test_service_" + DashboardInvestmentTotal,
	} {
		assert.True(t, names[want], "missing metric family %s", want)
	}

	count, err := testutil.GatherAndCount(m.GetRegistry(), "test_service_"+DashboardSectionsTotal)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegister_Twice(t *testing.T) {
	m := pkgmetrics.NewMetrics("test_service")
	Register(m)
	assert.Panics(t, func() { Register(m) })
}
