package dashboard

import (
	"github.com/haguru/raikiri/internal/models"
)

// Notices collects the user-facing messages raised while one section is
// built. It satisfies interfaces.Notifier.
type Notices []string

// Notify appends message.
func (n *Notices) Notify(message string) {
	*n = append(*n, message)
}

// Failed reports whether any message was raised.
func (n Notices) Failed() bool {
	return len(n) > 0
}

// Selection is the user's choice of project, mineral filter and growth
// percentage.
type Selection struct {
	Project string  `json:"project"`
	Mineral string  `json:"mineral"`
	Growth  float64 `json:"growth"`
}

// ChartSection is a chart with the notices raised while it was fetched.
type ChartSection struct {
	Chart   models.Chart `json:"chart"`
	Notices Notices      `json:"notices,omitempty"`
}

// Placeholder returns the neutral message for an empty section that did not
// fail, or "".
func (s ChartSection) Placeholder() string {
	if s.Chart.Empty() && !s.Notices.Failed() {
		return MsgNoData
	}
	return ""
}

// ProjectsSection is the project listing and the selector built from it.
type ProjectsSection struct {
	Rows     []models.ProjectRow `json:"rows"`
	Options  []string            `json:"options"`
	Selected string              `json:"selected"`
	Notices  Notices             `json:"notices,omitempty"`
}

// Placeholder returns the neutral message shown when no project exists.
func (s ProjectsSection) Placeholder() string {
	if len(s.Rows) == 0 && !s.Notices.Failed() {
		return MsgNoProjects
	}
	return ""
}

// ProjectView holds the detail and team of one project.
type ProjectView struct {
	Name          string                 `json:"name"`
	Detail        []models.ProjectDetail `json:"detail"`
	DetailNotices Notices                `json:"detail_notices,omitempty"`
	Team          models.Team            `json:"team"`
	TeamNotices   Notices                `json:"team_notices,omitempty"`
}

// TeamPlaceholder returns the message shown when no researcher is assigned.
func (p ProjectView) TeamPlaceholder() string {
	if !p.Team.Assigned() && !p.TeamNotices.Failed() {
		return MsgNoPersonnel
	}
	return ""
}

// DetailPlaceholder returns the message shown when the project has no
// investment lines.
func (p ProjectView) DetailPlaceholder() string {
	if len(p.Detail) == 0 && !p.DetailNotices.Failed() {
		return MsgNoData
	}
	return ""
}

// MineralsSection is the filtered mineral table.
type MineralsSection struct {
	Filter   string           `json:"filter"`
	Minerals []models.Mineral `json:"minerals"`
	Notices  Notices          `json:"notices,omitempty"`
}

// Placeholder returns the neutral message for an empty mineral table.
func (s MineralsSection) Placeholder() string {
	if len(s.Minerals) > 0 || s.Notices.Failed() {
		return ""
	}
	if s.Filter != "" {
		return MsgNoMatchingMineral
	}
	return MsgNoData
}

// ProjectionSection is the what-if growth of the total investment.
type ProjectionSection struct {
	Projection models.Projection `json:"projection"`
	Display    string            `json:"display"`
	Additional string            `json:"additional"`
}

// View is the full dashboard for an authenticated session.
type View struct {
	Username             string            `json:"username"`
	InvestmentByType     ChartSection      `json:"investment_by_type"`
	Projects             ProjectsSection   `json:"projects"`
	Project              *ProjectView      `json:"project,omitempty"`
	Metrics              []models.Metric   `json:"metrics"`
	Generation           ChartSection      `json:"generation"`
	InvestmentByLocation ChartSection      `json:"investment_by_location"`
	Minerals             MineralsSection   `json:"minerals"`
	Projection           ProjectionSection `json:"projection"`
}

// Charts returns every chart section in display order.
func (v *View) Charts() []ChartSection {
	return []ChartSection{v.InvestmentByType, v.Generation, v.InvestmentByLocation}
}
