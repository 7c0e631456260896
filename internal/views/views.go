// Package views renders the HTML pages of the dashboard.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/haguru/raikiri/internal/dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

// LoginPage is the view shown to unauthenticated sessions.
type LoginPage struct {
	Title         string
	Notices       []string
	Username      string
	SignupMessage string
}

// DashboardPage is the view shown to authenticated sessions.
type DashboardPage struct {
	Title   string
	Notices []string
	View    *dashboard.View
}

// Views holds the parsed page templates.
type Views struct {
	templates *template.Template
}

// New parses the embedded templates.
func New() (*Views, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"currency": dashboard.FormatCurrency,
		"number":   dashboard.FormatNumber,
	}).ParseFS(templateFS, templatePattern)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Views{templates: tmpl}, nil
}

// Login writes the login and registration page.
func (v *Views) Login(w io.Writer, page LoginPage) error {
	if page.Title == "" {
		page.Title = TitleLogin
	}
	return v.templates.ExecuteTemplate(w, templateLogin, page)
}

// Dashboard writes the dashboard page.
func (v *Views) Dashboard(w io.Writer, page DashboardPage) error {
	if page.View == nil {
		return fmt.Errorf("dashboard page requires a view")
	}
	if page.Title == "" {
		page.Title = TitleDashboard
	}
	return v.templates.ExecuteTemplate(w, templateDashboard, page)
}
