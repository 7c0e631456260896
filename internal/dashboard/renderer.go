package dashboard

import (
	"context"
	"time"

	"github.com/haguru/raikiri/internal/interfaces"
	"github.com/haguru/raikiri/internal/metrics"
	"github.com/haguru/raikiri/internal/models"
	"github.com/haguru/raikiri/internal/session"
	"github.com/haguru/raikiri/pkg/helper"
)

// Renderer builds the dashboard view. Each section is fetched on its own so a
// failing query only affects the section it feeds.
type Renderer struct {
	Reports interfaces.ReportRepository
	Logger  interfaces.Logger
	Metrics interfaces.Metrics
}

// NewRenderer creates a new Renderer instance.
func NewRenderer(reports interfaces.ReportRepository, logger interfaces.Logger, metrics interfaces.Metrics) *Renderer {
	return &Renderer{
		Reports: reports,
		Logger:  logger,
		Metrics: metrics,
	}
}

// Render builds the full dashboard for sess. It returns nil unless the session
// is authenticated.
func (r *Renderer) Render(ctx context.Context, sess *session.Session, sel Selection) *View {
	funcName := helper.GetFuncName()
	if !sess.Authenticated() {
		r.Logger.Debug("Refusing to render dashboard for unauthenticated session", "func", funcName)
		return nil
	}
	r.Logger.Debug("Entering function", "func", funcName, "session", sess.ID)
	defer r.Logger.Debug("Exiting function", "func", funcName, "session", sess.ID)

	start := time.Now()
	view := &View{Username: sess.Username}

	view.InvestmentByType.Chart = r.Reports.InvestmentByType(ctx, &view.InvestmentByType.Notices)
	r.observeSection(SectionInvestmentByType, view.InvestmentByType.Chart.Empty(), view.InvestmentByType.Notices)

	view.Projects = r.projects(ctx, sel.Project)
	if view.Projects.Selected != "" {
		view.Project = r.RenderProject(ctx, view.Projects.Selected)
	}

	view.Generation.Chart = r.Reports.GenerationByProject(ctx, &view.Generation.Notices)
	r.observeSection(SectionGeneration, view.Generation.Chart.Empty(), view.Generation.Notices)

	totalInvestment := view.InvestmentByType.Chart.Total()
	view.Metrics = headlineMetrics(totalInvestment, len(view.Projects.Rows), view.Generation.Chart)

	view.InvestmentByLocation.Chart = r.Reports.InvestmentByLocation(ctx, &view.InvestmentByLocation.Notices)
	r.observeSection(SectionInvestmentByLocation, view.InvestmentByLocation.Chart.Empty(), view.InvestmentByLocation.Notices)

	view.Minerals = r.minerals(ctx, sel.Mineral)

	view.Projection = projectionSection(totalInvestment, ClampPercent(sel.Growth))

	if r.Metrics != nil {
		r.Metrics.IncCounter(metrics.DashboardRendersTotal)
		r.Metrics.ObserveHistogram(metrics.DashboardRenderSeconds, time.Since(start).Seconds())
		r.Metrics.SetGauge(metrics.DashboardInvestmentTotal, totalInvestment)
	}
	return view
}

// RenderProject fetches only the detail and team of the named project.
func (r *Renderer) RenderProject(ctx context.Context, name string) *ProjectView {
	project := &ProjectView{Name: name}

	project.Detail = r.Reports.ProjectDetail(ctx, &project.DetailNotices, name)
	r.observeSection(SectionProjectDetail, len(project.Detail) == 0, project.DetailNotices)

	project.Team = r.Reports.ProjectTeam(ctx, &project.TeamNotices, name)
	r.observeSection(SectionProjectTeam, !project.Team.Assigned(), project.TeamNotices)

	return project
}

// Minerals fetches the mineral table filtered by substr.
func (r *Renderer) Minerals(ctx context.Context, substr string) MineralsSection {
	return r.minerals(ctx, substr)
}

func (r *Renderer) projects(ctx context.Context, selected string) ProjectsSection {
	section := ProjectsSection{}
	section.Rows = r.Reports.Projects(ctx, &section.Notices)
	r.observeSection(SectionProjects, len(section.Rows) == 0, section.Notices)

	section.Options = make([]string, 0, len(section.Rows))
	for _, p := range section.Rows {
		section.Options = append(section.Options, p.Name)
		if p.Name == selected {
			section.Selected = selected
		}
	}
	if section.Selected == "" && len(section.Options) > 0 {
		section.Selected = section.Options[0]
	}
	return section
}

func (r *Renderer) minerals(ctx context.Context, substr string) MineralsSection {
	section := MineralsSection{Filter: substr}
	all := r.Reports.Minerals(ctx, &section.Notices)
	r.observeSection(SectionMinerals, len(all) == 0, section.Notices)
	section.Minerals = FilterMinerals(all, substr)
	return section
}

func (r *Renderer) observeSection(section string, empty bool, notices Notices) {
	outcome := metrics.OutcomeOK
	switch {
	case notices.Failed():
		outcome = metrics.OutcomeFailed
		r.Logger.Warn("Dashboard section failed", "section", section, "notices", len(notices))
	case empty:
		outcome = metrics.OutcomeEmpty
	}
	if r.Metrics != nil {
		r.Metrics.IncCounterVec(metrics.DashboardSectionsTotal, section, outcome)
	}
}

func headlineMetrics(totalInvestment float64, projectCount int, generation models.Chart) []models.Metric {
	average := MsgNotAvailable
	if !generation.Empty() {
		average = FormatEnergy(generation.Total() / float64(len(generation.Values)))
	}
	return []models.Metric{
		{Label: LabelTotalInvestment, Value: FormatCurrency(totalInvestment)},
		{Label: LabelProjectCount, Value: FormatCount(projectCount)},
		{Label: LabelAverageGeneration, Value: average},
	}
}

func projectionSection(total, percent float64) ProjectionSection {
	p := Project(total, percent)
	return ProjectionSection{
		Projection: p,
		Display:    FormatCurrency(p.Projected),
		Additional: "+" + FormatCurrency(p.Additional),
	}
}
