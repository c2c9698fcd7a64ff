package viz

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// siUnits are printed with an SI prefix instead of an exponent.
var siUnits = map[string]bool{"Hz": true, "m": true, "J": true}

// FormatValue prints v with its unit. Frequencies and lengths in base SI
// units get a prefix, so 7.25e14 Hz reads "725 THz".
func FormatValue(v float64, unit string) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return strconv.FormatFloat(v, 'g', -1, 64)
	case siUnits[unit] && v != 0:
		return humanize.SIWithDigits(v, 4, unit)
	}
	s := humanize.FtoaWithDigits(v, 6)
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e9) {
		s = strconv.FormatFloat(v, 'e', 4, 64)
	}
	if unit == "" {
		return s
	}
	return s + " " + unit
}

// FormatName turns a snake_case field name into a label.
func FormatName(name string) string {
	b := []byte(name)
	upper := true
	for i, c := range b {
		switch {
		case c == '_':
			b[i] = ' '
			upper = true
		case upper && c >= 'a' && c <= 'z':
			b[i] = c - 'a' + 'A'
			upper = false
		default:
			upper = false
		}
	}
	return string(b)
}
