package analytics_test

import (
	"testing"

	"github.com/Priyank118/fdanalytics/internal/analytics"
)

func TestParseSurvivalMinutes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"minutes and seconds", "22:30", 22.5},
		{"single digit minutes", "3:00", 3},
		{"zero", "0:00", 0},
		{"seconds only matter fractionally", "0:30", 0.5},
		{"empty string", "", 0},
		{"garbage", "abc", 0},
		{"missing seconds", "5:", 5},
		{"non-numeric seconds", "5:xx", 5},
		{"non-numeric minutes", "xx:30", 0.5},
		{"whitespace tolerated", " 12 : 45 ", 12.75},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := analytics.ParseSurvivalMinutes(tc.in); got != tc.want {
				t.Fatalf("ParseSurvivalMinutes(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseSurvivalMinutes_Monotonic(t *testing.T) {
	// More seconds or more minutes never yields fewer minutes.
	if analytics.ParseSurvivalMinutes("10:30") <= analytics.ParseSurvivalMinutes("10:15") {
		t.Fatalf("expected 10:30 > 10:15")
	}
	if analytics.ParseSurvivalMinutes("11:00") <= analytics.ParseSurvivalMinutes("10:59") {
		t.Fatalf("expected 11:00 > 10:59")
	}
}

func TestFormatSurvivalMinutes(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0:00"},
		{22.5, "22:30"},
		{3, "3:00"},
		{0.5, "0:30"},
		{-1, "0:00"},
	}
	for _, tc := range cases {
		if got := analytics.FormatSurvivalMinutes(tc.in); got != tc.want {
			t.Fatalf("FormatSurvivalMinutes(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
