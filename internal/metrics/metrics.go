// Package metrics declares every metric the dashboard service exports and
// registers them on a collector.
package metrics

import (
	"github.com/haguru/raikiri/internal/interfaces"
)

var (
	SignupDurationSecondsBuckets = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	LoginDurationSecondsBuckets  = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	RenderDurationSecondsBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}
)

const (
	SignupRequestsTotal       = "signup_requests_total"
	SignupRequestsTotalHelp   = "Total number of signup requests received"
	SignupSuccessTotal        = "signup_success_total"
	SignupSuccessTotalHelp    = "Total number of successful signup requests"
	SignupErrorsTotal         = "signup_errors_total"
	SignupErrorsTotalHelp     = "Total number of errors during signup requests"
	SignupDurationSeconds     = "signup_duration_seconds"
	SignupDurationSecondsHelp = "Duration of signup requests in seconds"

	LoginRequestsTotal       = "login_requests_total"
	LoginRequestsTotalHelp   = "Total number of login requests received"
	LoginSuccessTotal        = "login_success_total"
	LoginSuccessTotalHelp    = "Total number of successful login requests"
	LoginFailedTotal         = "login_failed_total"
	LoginFailedTotalHelp     = "Total number of failed login requests"
	LoginDurationSeconds     = "login_duration_seconds"
	LoginDurationSecondsHelp = "Duration of login requests in seconds"

	LogoutTotal     = "logout_total"
	LogoutTotalHelp = "Total number of sessions signed out"

	RateLimitedTotal     = "rate_limited_total"
	RateLimitedTotalHelp = "Total number of requests rejected by the rate limiter"

	DashboardRendersTotal        = "dashboard_renders_total"
	DashboardRendersTotalHelp    = "Total number of dashboard views rendered"
	DashboardRenderSeconds       = "dashboard_render_duration_seconds"
	DashboardRenderSecondsHelp   = "Duration of a full dashboard render in seconds"
	DashboardSectionsTotal       = "dashboard_sections_total"
	DashboardSectionsTotalHelp   = "Dashboard sections built, by section and outcome"
	DashboardInvestmentTotal     = "dashboard_investment_total"
	DashboardInvestmentTotalHelp = "Total invested capital seen by the last dashboard render"

	// labels
	LabelSection = "section"
	LabelOutcome = "outcome"
)

// Section outcomes.
const (
	OutcomeOK     = "ok"
	OutcomeEmpty  = "empty"
	OutcomeFailed = "failed"
)

// Register registers every service metric on m.
func Register(m interfaces.Metrics) {
	m.RegisterCounter(SignupRequestsTotal, SignupRequestsTotalHelp)
	m.RegisterCounter(SignupSuccessTotal, SignupSuccessTotalHelp)
	m.RegisterCounter(SignupErrorsTotal, SignupErrorsTotalHelp)
	m.RegisterHistogram(SignupDurationSeconds, SignupDurationSecondsHelp, SignupDurationSecondsBuckets)

	m.RegisterCounter(LoginRequestsTotal, LoginRequestsTotalHelp)
	m.RegisterCounter(LoginSuccessTotal, LoginSuccessTotalHelp)
	m.RegisterCounter(LoginFailedTotal, LoginFailedTotalHelp)
	m.RegisterHistogram(LoginDurationSeconds, LoginDurationSecondsHelp, LoginDurationSecondsBuckets)

	m.RegisterCounter(LogoutTotal, LogoutTotalHelp)
	m.RegisterCounter(RateLimitedTotal, RateLimitedTotalHelp)

	m.RegisterCounter(DashboardRendersTotal, DashboardRendersTotalHelp)
	m.RegisterHistogram(DashboardRenderSeconds, DashboardRenderSecondsHelp, RenderDurationSecondsBuckets)
	m.RegisterCounterVec(DashboardSectionsTotal, DashboardSectionsTotalHelp, []string{LabelSection, LabelOutcome})
	m.RegisterGauge(DashboardInvestmentTotal, DashboardInvestmentTotalHelp)
}
