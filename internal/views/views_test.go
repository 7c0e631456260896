package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/haguru/raikiri/internal/dashboard"
	"github.com/haguru/raikiri/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViews_Login(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = v.Login(&buf, LoginPage{
		Notices:       []string{"invalid username or password"},
		Username:      `<script>alert("x")</script>`,
		SignupMessage: "username already exists",
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, TitleLogin)
	assert.Contains(t, html, `action="/login"`)
	assert.Contains(t, html, `action="/signup"`)
	assert.Contains(t, html, `name="confirm_password"`)
	assert.Contains(t, html, "invalid username or password")
	assert.Contains(t, html, "username already exists")
	assert.NotContains(t, html, `<script>alert`)
}

func TestViews_Dashboard(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	view := &dashboard.View{
		Username: "operadora",
		InvestmentByType: dashboard.ChartSection{Chart: models.Chart{
			Kind: models.ChartPie, Title: dashboard.TitleInvestmentByType,
			Labels: []string{"Solar"}, Values: []float64{1000},
		}},
		Projects: dashboard.ProjectsSection{
			Rows:     []models.ProjectRow{{Name: "Parque Sol", Location: "Sonora", StartDate: "2023-04-01"}},
			Options:  []string{"Parque Sol"},
			Selected: "Parque Sol",
		},
		Project: &dashboard.ProjectView{
			Name:   "Parque Sol",
			Detail: []models.ProjectDetail{{Name: "Parque Sol", Location: "Sonora", EnergyType: "Solar", Investment: 1000}},
		},
		Metrics: []models.Metric{{Label: dashboard.LabelTotalInvestment, Value: "$1,000"}},
		Generation: dashboard.ChartSection{
			Chart:   models.Chart{Kind: models.ChartBar, Title: dashboard.TitleGeneration},
			Notices: dashboard.Notices{"Error connecting to the database. Please try again later."},
		},
		InvestmentByLocation: dashboard.ChartSection{
			Chart: models.Chart{Kind: models.ChartHorizontalBar, Title: dashboard.TitleInvestmentByLocation},
		},
		Projection: dashboard.ProjectionSection{
			Projection: models.Projection{Base: 1000, Percent: 10, Additional: 100, Projected: 1100},
			Display:    "$1,100",
			Additional: "+$100",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, v.Dashboard(&buf, DashboardPage{View: view}))

	html := buf.String()
	assert.Contains(t, html, "Signed in as operadora")
	assert.Contains(t, html, "$1,100")
	assert.Contains(t, html, "+$100")
	assert.Contains(t, html, dashboard.MsgNoPersonnel)
	assert.Contains(t, html, "Error connecting to the database. Please try again later.")
	assert.Contains(t, html, dashboard.MsgNoData)
	assert.Contains(t, html, `<option value="Parque Sol" selected>`)
	assert.Contains(t, html, `"kind":"pie"`)
	assert.Contains(t, html, "<tr><td>Solar</td><td>1,000</td></tr>")
	assert.Equal(t, 1, strings.Count(html, `<table class="chart-data">`))
	assert.Contains(t, html, `action="/logout"`)
}

func TestViews_Dashboard_RequiresView(t *testing.T) {
	v, err := New()
	require.NoError(t, err)
	assert.Error(t, v.Dashboard(&bytes.Buffer{}, DashboardPage{}))
}
