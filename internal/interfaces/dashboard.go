package interfaces

import (
	"context"

	"github.com/haguru/raikiri/internal/models"
)

// ReportRepository issues the fixed reporting queries behind the dashboard.
// Every method degrades to an empty result and reports through notifier.
type ReportRepository interface {
	InvestmentByType(ctx context.Context, notifier Notifier) models.Chart
	Projects(ctx context.Context, notifier Notifier) []models.ProjectRow
	ProjectDetail(ctx context.Context, notifier Notifier, project string) []models.ProjectDetail
	ProjectTeam(ctx context.Context, notifier Notifier, project string) models.Team
	GenerationByProject(ctx context.Context, notifier Notifier) models.Chart
	InvestmentByLocation(ctx context.Context, notifier Notifier) models.Chart
	Minerals(ctx context.Context, notifier Notifier) []models.Mineral
}
