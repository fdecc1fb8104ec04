package views

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatIndianCurrency renders rupees as crore, lakh or a grouped figure.
func FormatIndianCurrency(v float64) string {
	switch {
	case v >= 1e7:
		return fmt.Sprintf("₹%.2f Cr", v/1e7)
	case v >= 1e5:
		return fmt.Sprintf("₹%.2f L", v/1e5)
	default:
		return "₹" + GroupThousands(v)
	}
}

// FormatLargeNumber renders a count with an M, L or K suffix.
func FormatLargeNumber(v float64) string {
	a := math.Abs(v)
	switch {
	case a >= 1e7:
		return fmt.Sprintf("%.2fM", v/1e6)
	case a >= 1e5:
		return fmt.Sprintf("%.2fL", v/1e5)
	case a >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	default:
		return GroupThousands(v)
	}
}

// GroupThousands formats v with no decimals and comma-separated thousands.
func GroupThousands(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}
