package folio

import (
	"errors"
	"math"
	"strconv"
)

// ErrZeroBase is returned by PercentageChange when the starting value is zero.
var ErrZeroBase = errors.New("percentage change from zero is undefined")

// PercentageChange returns the change from one value to another relative to
// the absolute starting value, in percent.
func PercentageChange(from, to float64) (float64, error) {
	if from == 0 {
		return 0, ErrZeroBase
	}
	return (to - from) / math.Abs(from) * 100, nil
}

// formatPercent renders a signed percentage with two decimals, e.g. "+12.50%".
func formatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	switch {
	case s == "0.00" || s == "-0.00":
		s = "0.00"
	case s[0] != '-':
		s = "+" + s
	}
	return s + "%"
}
