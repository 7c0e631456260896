package dto

// ProjectionRequestDTO bounds the total so projections stay exactly
// representable as whole currency units.
type ProjectionRequestDTO struct {
	Total   float64 `validate:"gte=0,lte=1e15"`
	Percent float64 `validate:"gte=0,lte=100"`
}

type ProjectionResponseDTO struct {
	Base       float64 `json:"base"`
	Percent    float64 `json:"percent"`
	Additional float64 `json:"additional"`
	Projected  float64 `json:"projected"`
	Display    string  `json:"display"`
}
