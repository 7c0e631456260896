package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/haguru/raikiri/internal/interfaces"
	"github.com/haguru/raikiri/internal/interfaces/mocks"
	"github.com/haguru/raikiri/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func failWith(message string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		args.Get(1).(interfaces.Notifier).Notify(message)
	}
}

func TestReports_InvestmentByType(t *testing.T) {
	executor := mocks.NewMockQueryExecutor(t)
	executor.On("Execute", mock.Anything, mock.Anything, QueryInvestmentByType).Return(models.Table{
		Columns: []string{"tipo", "total"},
		Rows: [][]any{
			{"Solar", "600.50"},
			{"Eólica", int64(400)},
		},
	})

	var notices Notices
	chart := NewReports(executor).InvestmentByType(context.Background(), &notices)

	assert.Equal(t, models.ChartPie, chart.Kind)
	assert.Equal(t, []string{"Solar", "Eólica"}, chart.Labels)
	assert.Equal(t, []float64{600.5, 400}, chart.Values)
	assert.InDelta(t, 1000.5, chart.Total(), 0.0001)
	assert.Empty(t, notices)
}

func TestReports_Projects(t *testing.T) {
	executor := mocks.NewMockQueryExecutor(t)
	executor.On("Execute", mock.Anything, mock.Anything, QueryProjects).Return(models.Table{
		Columns: []string{"nombre", "ubicacion", "fecha_inicio"},
		Rows: [][]any{
			{"Parque Sol", "Sonora", time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)},
			{"Viento Norte", "Oaxaca", "2022-11-15"},
		},
	})

	projects := NewReports(executor).Projects(context.Background(), &Notices{})

	assert.Equal(t, []models.ProjectRow{
		{Name: "Parque Sol", Location: "Sonora", StartDate: "2023-04-01"},
		{Name: "Viento Norte", Location: "Oaxaca", StartDate: "2022-11-15"},
	}, projects)
}

func TestReports_ProjectDetail_BindsProjectName(t *testing.T) {
	executor := mocks.NewMockQueryExecutor(t)
	name := "Parque Sol'; DROP TABLE usuarios; --"
	executor.On("Execute", mock.Anything, mock.Anything, QueryProjectDetail, name).Return(models.Table{
		Columns: []string{"nombre", "ubicacion", "energia", "inversion"},
		Rows:    [][]any{{name, "Sonora", "Solar", "1500.00"}},
	})

	details := NewReports(executor).ProjectDetail(context.Background(), &Notices{}, name)

	assert.Len(t, details, 1)
	assert.Equal(t, "Solar", details[0].EnergyType)
	assert.Equal(t, 1500.0, details[0].Investment)
	assert.NotContains(t, QueryProjectDetail, name)
}

func TestReports_ProjectTeam(t *testing.T) {
	columns := []string{"investigador", "apellido", "especialidad", "empresa", "industria"}

	tests := []struct {
		name     string
		table    models.Table
		want     models.Team
		assigned bool
	}{
		{
			name: "researcher and company",
			table: models.Table{Columns: columns, Rows: [][]any{
				{"Ana", "Pérez", "Fotovoltaica", "SolarTech", "Energía"},
			}},
			want: models.Team{
				Researcher: &models.Researcher{FirstName: "Ana", LastName: "Pérez", Specialty: "Fotovoltaica"},
				Company:    &models.Company{Name: "SolarTech", Industry: "Energía"},
			},
			assigned: true,
		},
		{
			name: "left joins produced nulls",
			table: models.Table{Columns: columns, Rows: [][]any{
				{nil, nil, nil, nil, nil},
			}},
			want: models.Team{},
		},
		{
			name: "company without researcher",
			table: models.Table{Columns: columns, Rows: [][]any{
				{nil, nil, nil, "SolarTech", "Energía"},
			}},
			want: models.Team{Company: &models.Company{Name: "SolarTech", Industry: "Energía"}},
		},
		{
			name:  "no rows",
			table: models.Table{},
			want:  models.Team{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := mocks.NewMockQueryExecutor(t)
			executor.On("Execute", mock.Anything, mock.Anything, QueryProjectTeam, "Parque Sol").Return(tt.table)

			team := NewReports(executor).ProjectTeam(context.Background(), &Notices{}, "Parque Sol")

			assert.Equal(t, tt.want, team)
			assert.Equal(t, tt.assigned, team.Assigned())
		})
	}
}

func TestReports_FailedQueryDegradesToEmpty(t *testing.T) {
	executor := mocks.NewMockQueryExecutor(t)
	executor.On("Execute", mock.Anything, mock.Anything, QueryInvestmentByLocation).
		Run(failWith("boom")).
		Return(models.Table{})

	var notices Notices
	chart := NewReports(executor).InvestmentByLocation(context.Background(), &notices)

	assert.True(t, chart.Empty())
	assert.Equal(t, models.ChartHorizontalBar, chart.Kind)
	assert.Equal(t, Notices{"boom"}, notices)
}
