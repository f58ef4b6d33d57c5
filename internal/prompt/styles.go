package prompt

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the prompt color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#101F38"),
		Accent:     lipgloss.Color("#2196F3"),
		Muted:      lipgloss.Color("#6b7280"),
		Error:      lipgloss.Color("#e53935"),
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f2f2f2"),
		Accent:     lipgloss.Color("#8BC34A"),
		Muted:      lipgloss.Color("#9ca3af"),
		Error:      lipgloss.Color("#ff6f60"),
		IsDark:     true,
	}
}

// ThemeByName returns the named theme. "auto" and unknown names detect.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme guesses the terminal background from COLORFGBG and falls back
// to light mode.
func DetectTheme() Theme {
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if bgIdx, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			// 0-6 and 8 are the dark ANSI backgrounds
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
		}
	}
	if os.Getenv("NAUTILUS_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds the styled prompt components.
type Styles struct {
	Label   lipgloss.Style
	Default lipgloss.Style
	Error   lipgloss.Style
	Hint    lipgloss.Style
}

// NewStyles builds styles for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Label: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),
		Default: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),
		Hint: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),
	}
}

// PlainStyles renders everything unstyled, for NO_COLOR and redirected output.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Label: plain, Default: plain, Error: plain, Hint: plain}
}
