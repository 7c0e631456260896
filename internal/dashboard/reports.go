package dashboard

import (
	"context"
	"time"

	"github.com/haguru/raikiri/internal/interfaces"
	"github.com/haguru/raikiri/internal/models"
)

// Reports shapes the reporting queries into dashboard models. Failures are
// already reported by the executor, so every method simply degrades to an
// empty result.
type Reports struct {
	Executor interfaces.QueryExecutor
}

// NewReports creates a new Reports instance.
func NewReports(executor interfaces.QueryExecutor) interfaces.ReportRepository {
	return &Reports{Executor: executor}
}

// InvestmentByType returns the invested amount per energy type as a pie chart.
func (r *Reports) InvestmentByType(ctx context.Context, notifier interfaces.Notifier) models.Chart {
	table := r.Executor.Execute(ctx, notifier, QueryInvestmentByType)
	return chartFromTable(table, models.ChartPie, TitleInvestmentByType, colType, colTotal)
}

// Projects lists every project.
func (r *Reports) Projects(ctx context.Context, notifier interfaces.Notifier) []models.ProjectRow {
	table := r.Executor.Execute(ctx, notifier, QueryProjects)

	projects := make([]models.ProjectRow, 0, table.Len())
	for i := range table.Rows {
		projects = append(projects, models.ProjectRow{
			Name:      table.String(i, colName),
			Location:  table.String(i, colLocation),
			StartDate: dateString(table.Value(i, colStartDate)),
		})
	}
	return projects
}

// ProjectDetail returns the investment lines of the named project.
func (r *Reports) ProjectDetail(ctx context.Context, notifier interfaces.Notifier, project string) []models.ProjectDetail {
	table := r.Executor.Execute(ctx, notifier, QueryProjectDetail, project)

	details := make([]models.ProjectDetail, 0, table.Len())
	for i := range table.Rows {
		investment, _ := table.Float(i, colInvestment)
		details = append(details, models.ProjectDetail{
			Name:       table.String(i, colName),
			Location:   table.String(i, colLocation),
			EnergyType: table.String(i, colEnergy),
			Investment: investment,
		})
	}
	return details
}

// ProjectTeam returns the researcher and company of the named project. Only
// the first row is used; a NULL researcher or company leaves that member nil.
func (r *Reports) ProjectTeam(ctx context.Context, notifier interfaces.Notifier, project string) models.Team {
	table := r.Executor.Execute(ctx, notifier, QueryProjectTeam, project)
	if table.Empty() {
		return models.Team{}
	}

	var team models.Team
	if table.Value(0, colResearcher) != nil {
		team.Researcher = &models.Researcher{
			FirstName: table.String(0, colResearcher),
			LastName:  table.String(0, colLastName),
			Specialty: table.String(0, colSpecialty),
		}
	}
	if table.Value(0, colCompany) != nil {
		team.Company = &models.Company{
			Name:     table.String(0, colCompany),
			Industry: table.String(0, colIndustry),
		}
	}
	return team
}

// GenerationByProject returns the kWh generated per project as a bar chart.
func (r *Reports) GenerationByProject(ctx context.Context, notifier interfaces.Notifier) models.Chart {
	table := r.Executor.Execute(ctx, notifier, QueryGenerationByProject)
	return chartFromTable(table, models.ChartBar, TitleGeneration, colName, colGenerated)
}

// InvestmentByLocation returns the invested amount per location, largest
// first, as a horizontal bar chart.
func (r *Reports) InvestmentByLocation(ctx context.Context, notifier interfaces.Notifier) models.Chart {
	table := r.Executor.Execute(ctx, notifier, QueryInvestmentByLocation)
	return chartFromTable(table, models.ChartHorizontalBar, TitleInvestmentByLocation, colLocation, colTotalAmount)
}

// Minerals lists every mineral with its associated project.
func (r *Reports) Minerals(ctx context.Context, notifier interfaces.Notifier) []models.Mineral {
	table := r.Executor.Execute(ctx, notifier, QueryMinerals)

	minerals := make([]models.Mineral, 0, table.Len())
	for i := range table.Rows {
		minerals = append(minerals, models.Mineral{
			Name:        table.String(i, colName),
			Location:    table.String(i, colLocation),
			Project:     table.String(i, colProject),
			Description: table.String(i, colDescription),
		})
	}
	return minerals
}

func chartFromTable(table models.Table, kind, title, labelColumn, valueColumn string) models.Chart {
	chart := models.Chart{
		Kind:   kind,
		Title:  title,
		Labels: make([]string, 0, table.Len()),
		Values: make([]float64, 0, table.Len()),
	}
	for i := range table.Rows {
		value, _ := table.Float(i, valueColumn)
		chart.Labels = append(chart.Labels, table.String(i, labelColumn))
		chart.Values = append(chart.Values, value)
	}
	return chart
}

func dateString(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format(dateLayout)
	}
	return models.AsString(v)
}
