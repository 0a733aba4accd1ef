package godu

import (
	"fmt"
	"math"
)

// Output formats: size left-justified in an 8-character minimum field,
// followed by the label.
const (
	rawFormat   = "%-8d%s\n"
	humanFormat = "%-8s%s\n"
)

// tiers above the kilobyte base unit, largest first.
var tiers = []struct {
	kilobytes float64
	suffix    string
}{
	{1 << 30, "T"},
	{1 << 20, "G"},
	{1 << 10, "M"},
}

// print renders one output line for size (in kilobyte units) and returns
// size unchanged, so callers can use it inline as an accumulator step.
func (w *walker) print(size int64, label string) int64 {
	if w.opts.HumanReadable {
		fmt.Fprintf(w.stdout, humanFormat, human(size), label)
	} else {
		fmt.Fprintf(w.stdout, rawFormat, size, label)
	}

	return size
}

// human scales kb into the largest unit for which the value is at least 1.
// Zero is the literal "0"; everything else carries a K/M/G/T suffix.
func human(kb int64) string {
	if kb == 0 {
		return "0"
	}

	for _, tier := range tiers {
		if value := float64(kb) / tier.kilobytes; value >= 1 {
			return scaled(value, tier.suffix)
		}
	}

	return scaled(float64(kb), "K")
}

// scaled formats a tier value, always rounding up: whole numbers at 10
// and above, one decimal place below that.
func scaled(value float64, suffix string) string {
	if value >= 10 {
		return fmt.Sprintf("%d%s", int64(math.Ceil(value)), suffix)
	}

	return fmt.Sprintf("%.1f%s", math.Ceil(value*10)/10, suffix)
}
