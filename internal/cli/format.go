// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatTokens formats a token count with human-readable suffixes.
// e.g., 1234 -> "1.2K", 1234567 -> "1.2M", 1234567890 -> "1.2B"
func FormatTokens(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatWhole rounds f to an integer and adds comma separators.
// e.g., 4185.4 -> "4,185"
func FormatWhole(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return FormatNumber(int64(math.Round(f)))
}

// FormatKg formats a carbon mass in kilograms, switching to tonnes
// from 10,000 kg. e.g., 279 -> "279 kg", 19200000 -> "19,200 t"
func FormatKg(kg float64) string {
	if math.Abs(kg) >= 10_000 {
		return FormatWhole(kg/1000) + " t"
	}
	return FormatWhole(kg) + " kg"
}

// FormatLiters formats a water volume. e.g., 108000 -> "108,000 L"
func FormatLiters(l float64) string {
	return FormatWhole(l) + " L"
}

// FormatKm formats a distance. e.g., 2325 -> "2,325 km"
func FormatKm(km float64) string {
	return FormatWhole(km) + " km"
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDeltaKg formats the carbon difference between two estimates with a sign.
func FormatDeltaKg(current, baseline float64) string {
	delta := current - baseline
	if delta >= 0 {
		return "+" + FormatKg(delta)
	}
	return "-" + FormatKg(-delta)
}
