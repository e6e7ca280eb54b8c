package testutil

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"color", "\x1b[31mred\x1b[0m", "red"},
		{"truecolor background", "\x1b[48;2;239;68;68m toast \x1b[0m", " toast "},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.in); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMeasureWidth(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("abc")
	if got := MeasureWidth(styled); got != 3 {
		t.Errorf("MeasureWidth = %d, want 3", got)
	}
	if got := MeasureWidth("a\nlonger"); got != 6 {
		t.Errorf("MeasureWidth multi-line = %d, want 6", got)
	}
}

func TestLineHelpers(t *testing.T) {
	out := "first\n\n  second line\n\n"

	if !ContainsLine(out, "second") {
		t.Error("ContainsLine(second) = false")
	}
	if ContainsLine(out, "third") {
		t.Error("ContainsLine(third) = true")
	}
	if got := FindLine(out, "second"); got != "  second line" {
		t.Errorf("FindLine = %q", got)
	}
	if got := CountLines(out); got != 2 {
		t.Errorf("CountLines = %d, want 2", got)
	}
	if got := SplitLines(out); len(got) != 3 {
		t.Errorf("SplitLines returned %d lines, want 3", len(got))
	}
}
