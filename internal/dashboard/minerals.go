package dashboard

import (
	"strings"

	"github.com/haguru/raikiri/internal/models"
)

// FilterMinerals keeps the minerals whose name contains substr, ignoring case.
// Only the empty string keeps everything; whitespace is matched literally.
func FilterMinerals(minerals []models.Mineral, substr string) []models.Mineral {
	if substr == "" {
		return minerals
	}
	needle := strings.ToLower(substr)

	filtered := make([]models.Mineral, 0, len(minerals))
	for _, m := range minerals {
		if strings.Contains(strings.ToLower(m.Name), needle) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
