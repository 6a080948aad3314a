// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatMoney formats a monetary amount with the given currency symbol.
// e.g., 1234.5 -> "$1,234.50"
func FormatMoney(symbol string, v float64) string {
	if v < 0 {
		return "-" + FormatMoney(symbol, -v)
	}

	whole := int64(v)
	cents := int64(v*100+0.5) - whole*100
	if cents >= 100 {
		whole++
		cents -= 100
	}
	return fmt.Sprintf("%s%s.%02d", symbol, groupThousands(whole), cents)
}

// FormatSignedMoney formats a delta with an explicit sign.
// e.g., -5.0 -> "-$5.00", 3.0 -> "+$3.00"
func FormatSignedMoney(symbol string, v float64) string {
	if v < 0 {
		return "-" + FormatMoney(symbol, -v)
	}
	return "+" + FormatMoney(symbol, v)
}

// FormatPercent formats a raw percentage value (already on the 0-100
// scale, possibly beyond it).
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDate formats a timestamp as a calendar date.
func FormatDate(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// FormatTime formats a timestamp as date plus time of day.
func FormatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
