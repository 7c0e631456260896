package models

// Chart kinds understood by the dashboard front end.
const (
	ChartPie           = "pie"
	ChartBar           = "bar"
	ChartHorizontalBar = "barh"
)

// Chart is a chart-ready data series.
type Chart struct {
	Kind   string    `json:"kind"`
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Empty reports whether the chart has no points to draw.
func (c Chart) Empty() bool {
	return len(c.Values) == 0
}

// Total returns the sum of every value in the series.
func (c Chart) Total() float64 {
	var total float64
	for _, v := range c.Values {
		total += v
	}
	return total
}

// ProjectRow is one line of the project listing.
type ProjectRow struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
}

// ProjectDetail is one line of the selected project's detail lookup.
type ProjectDetail struct {
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	EnergyType string  `json:"energy_type"`
	Investment float64 `json:"investment"`
}

// Researcher is the scientist in charge of a project.
type Researcher struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Specialty string `json:"specialty"`
}

// FullName joins first and last name.
func (r Researcher) FullName() string {
	if r.LastName == "" {
		return r.FirstName
	}
	return r.FirstName + " " + r.LastName
}

// Company is the industry ally of a project.
type Company struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

// Team groups the personnel attached to a project. Either member may be
// absent because both come from left joins.
type Team struct {
	Researcher *Researcher `json:"researcher,omitempty"`
	Company    *Company    `json:"company,omitempty"`
}

// Assigned reports whether a researcher is attached to the project.
func (t Team) Assigned() bool {
	return t.Researcher != nil
}

// Mineral is a mineral deposit associated with a project.
type Mineral struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Project     string `json:"project"`
	Description string `json:"description"`
}

// Metric is a single headline figure.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
}

// Projection is the what-if result of growing the invested capital by a
// percentage.
type Projection struct {
	Base       float64 `json:"base"`
	Percent    float64 `json:"percent"`
	Additional float64 `json:"additional"`
	Projected  float64 `json:"projected"`
}
