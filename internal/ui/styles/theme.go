package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sona/internal/toast"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // title gradient start, focused borders
	Secondary lipgloss.Color // title gradient end

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color
	FgInvert lipgloss.Color // text on bright toast backgrounds

	Border lipgloss.Color

	// Toast backgrounds, one per kind
	Error   lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color
	Success lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style
	Title  lipgloss.Style
	Key    lipgloss.Style // key hint inside a trigger button
	Card   lipgloss.Style // rounded box around the demo page
	Toast  lipgloss.Style // shared toast box, colored per kind by Toast()
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),
	FgInvert: lipgloss.Color("#ffffff"),

	Border: lipgloss.Color("#585858"),

	Error:   lipgloss.Color("#ef4444"),
	Warning: lipgloss.Color("#f97316"),
	Info:    lipgloss.Color("#3b82f6"),
	Success: lipgloss.Color("#22c55e"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Key:    lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2),
		Toast: lipgloss.NewStyle().
			Padding(0, 2),
	}
}

// KindColors returns the background and foreground of a toast kind.
// ok is false for kinds that have no visual treatment.
func (t *Theme) KindColors(k toast.Kind) (bg, fg lipgloss.Color, ok bool) {
	switch k {
	case toast.KindError:
		return t.Error, t.FgInvert, true
	case toast.KindWarning:
		return t.Warning, lipgloss.Color("#000000"), true
	case toast.KindInfo:
		return t.Info, t.FgInvert, true
	case toast.KindSuccess:
		return t.Success, t.FgInvert, true
	}
	return "", "", false
}

// Toast returns the box style for a toast kind.
func (t *Theme) Toast(k toast.Kind) (lipgloss.Style, bool) {
	bg, fg, ok := t.KindColors(k)
	if !ok {
		return lipgloss.Style{}, false
	}
	return t.S().Toast.Background(bg).Foreground(fg), true
}
