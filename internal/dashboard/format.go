package dashboard

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatCurrency renders v rounded to whole units with thousands separators,
// e.g. 1100 as "$1,100". Values that round to zero render as "$0".
func FormatCurrency(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return MsgNotAvailable
	}
	rounded := math.Round(v)
	if rounded == 0 {
		return "$0"
	}
	s := "$" + humanize.Commaf(math.Abs(rounded))
	if rounded < 0 {
		return "-" + s
	}
	return s
}

// FormatEnergy renders a kWh figure with thousands separators.
func FormatEnergy(v float64) string {
	return FormatNumber(v) + " kWh"
}

// FormatNumber renders a chart value with thousands separators and at most
// two decimals.
func FormatNumber(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return MsgNotAvailable
	}
	rounded := math.Round(v*100) / 100
	if rounded == 0 {
		return "0"
	}
	return humanize.CommafWithDigits(rounded, 2)
}

// FormatCount renders an integer count with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}
