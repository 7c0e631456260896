package views

const (
	TitleLogin     = "Energy investment dashboard: sign in"
	TitleDashboard = "Energy investment dashboard"

	templateLogin     = "login"
	templateDashboard = "dashboard"
	templatePattern   = "templates/*.html"
)
