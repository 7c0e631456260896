package dashboard

import (
	"math"

	"github.com/haguru/raikiri/internal/models"
)

// Bounds of the growth slider.
const (
	MinGrowthPercent = 0
	MaxGrowthPercent = 100
)

// ClampPercent keeps percent inside the slider range. NaN becomes 0.
func ClampPercent(percent float64) float64 {
	if math.IsNaN(percent) {
		return MinGrowthPercent
	}
	return math.Max(MinGrowthPercent, math.Min(MaxGrowthPercent, percent))
}

// Project computes the what-if growth of total by percent.
func Project(total, percent float64) models.Projection {
	additional := total * percent / 100
	return models.Projection{
		Base:       total,
		Percent:    percent,
		Additional: additional,
		Projected:  total + additional,
	}
}
