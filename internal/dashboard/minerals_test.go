package dashboard

import (
	"testing"

	"github.com/haguru/raikiri/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFilterMinerals(t *testing.T) {
	minerals := []models.Mineral{
		{Name: "Litio", Location: "Salar de Uyuni"},
		{Name: "Cobre", Location: "Atacama"},
		{Name: "Cobalto", Location: "Katanga"},
		{Name: "Tierras raras", Location: "Bayan Obo"},
	}

	tests := []struct {
		name   string
		substr string
		want   []string
	}{
		{name: "empty filter keeps all", substr: "", want: []string{"Litio", "Cobre", "Cobalto", "Tierras raras"}},
		{name: "space matches literally", substr: " ", want: []string{"Tierras raras"}},
		{name: "surrounding whitespace is kept", substr: " lit", want: []string{}},
		{name: "multi-word filter", substr: "S RA", want: []string{"Tierras raras"}},
		{name: "case insensitive", substr: "LIT", want: []string{"Litio"}},
		{name: "shared prefix", substr: "cob", want: []string{"Cobre", "Cobalto"}},
		{name: "exact middle substring", substr: "alt", want: []string{"Cobalto"}},
		{name: "location is not searched", substr: "atacama", want: []string{}},
		{name: "no match", substr: "oro", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterMinerals(minerals, tt.substr)
			names := make([]string, 0, len(got))
			for _, m := range got {
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
