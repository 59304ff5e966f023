package render

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles and marks used to print check results.
type Theme struct {
	Name  string
	Rule  lipgloss.Style // banner rules and file names
	Pass  lipgloss.Style
	Warn  lipgloss.Style
	Fail  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style
	Marks Marks
}

// Marks are the one-glyph prefixes printed before a result or metric.
type Marks struct {
	Pass string
	Warn string
	Fail string
	Note string // counts that are neither good nor bad
}

// Mark returns the glyph and style for a result status ("pass", "warn",
// "fail") or a summary metric kind ("success", "warning", "error", "info").
func (th Theme) Mark(status string) (string, lipgloss.Style) {
	switch status {
	case "pass", "success":
		return th.Marks.Pass, th.Pass
	case "warn", "warning":
		return th.Marks.Warn, th.Warn
	case "fail", "error":
		return th.Marks.Fail, th.Fail
	default:
		return th.Marks.Note, th.Muted
	}
}

func colored(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }

// DefaultTheme uses bright ANSI-256 colors and Unicode marks.
func DefaultTheme() Theme {
	return Theme{
		Name:  "default",
		Rule:  colored("39"),
		Pass:  colored("34"),
		Warn:  colored("214"),
		Fail:  colored("196"),
		Muted: colored("242"),
		Bold:  lipgloss.NewStyle().Bold(true),
		Marks: Marks{Pass: "✓", Warn: "⚠", Fail: "✗", Note: "●"},
	}
}

// SubduedTheme keeps the Unicode marks but uses low-saturation colors.
func SubduedTheme() Theme {
	return Theme{
		Name:  "subdued",
		Rule:  colored("75"),
		Pass:  colored("108"),
		Warn:  colored("179"),
		Fail:  colored("167"),
		Muted: colored("245"),
		Bold:  lipgloss.NewStyle().Bold(true),
		Marks: Marks{Pass: "✓", Warn: "!", Fail: "✗", Note: "·"},
	}
}

// MonoTheme prints ASCII marks with no color, for logs and CI transcripts.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:  "mono",
		Rule:  plain,
		Pass:  plain,
		Warn:  plain,
		Fail:  plain,
		Muted: plain,
		Bold:  lipgloss.NewStyle().Bold(true),
		Marks: Marks{Pass: "+", Warn: "!", Fail: "x", Note: "*"},
	}
}

// ThemeByName returns the named theme, or DefaultTheme for unknown names.
func ThemeByName(name string) Theme {
	switch name {
	case "subdued":
		return SubduedTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
