package cli

import (
	"strings"
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		symbol string
		v      float64
		want   string
	}{
		{"$", 0, "$0.00"},
		{"$", 0.01, "$0.01"},
		{"$", 55, "$55.00"},
		{"$", 1234.5, "$1,234.50"},
		{"€", 1000000, "€1,000,000.00"},
		{"$", -5, "-$5.00"},
		{"$", 9.999, "$10.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.symbol, tt.v); got != tt.want {
			t.Errorf("FormatMoney(%q, %v) = %q, want %q", tt.symbol, tt.v, got, tt.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney("$", -5); got != "-$5.00" {
		t.Errorf("got %q", got)
	}
	if got := FormatSignedMoney("$", 20); got != "+$20.00" {
		t.Errorf("got %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(110); got != "110.0%" {
		t.Errorf("got %q", got)
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Errorf("got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	got := Truncate("a very long description", 10)
	if len([]rune(got)) != 10 || !strings.HasSuffix(got, "…") {
		t.Errorf("got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 6, 1, 14, 30, 0, 0, time.Local)
	if got := FormatDate(d); got != "2025-06-01" {
		t.Errorf("got %q", got)
	}
}
