package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/pco/pkg/pattern"
)

// Terminal renders patterns as styled terminal output via lipgloss.
type Terminal struct {
	theme      Theme
	width      int
	hidePassed bool
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// HidePassed omits passing files from result tables.
func (t *Terminal) HidePassed(hide bool) *Terminal {
	t.hidePassed = hide
	return t
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		s := t.renderOne(p)
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderOne(p pattern.Pattern) string {
	switch v := p.(type) {
	case *pattern.Summary:
		return t.renderSummary(v)
	case *pattern.Leaderboard:
		return t.renderLeaderboard(v)
	case *pattern.TestTable:
		return t.renderTestTable(v)
	default:
		return ""
	}
}

func (t *Terminal) renderSummary(s *pattern.Summary) string {
	var sb strings.Builder
	if s.Label != "" {
		sb.WriteString(t.banner(s.Label))
		sb.WriteString("\n")
	}
	labelWidth := 0
	for _, m := range s.Metrics {
		labelWidth = max(labelWidth, runewidth.StringWidth(m.Label))
	}
	for _, m := range s.Metrics {
		sb.WriteString("  ")
		icon, style := t.theme.Mark(m.Kind)
		sb.WriteString(style.Render(icon + " " + padRight(m.Label+":", labelWidth+1) + " " + m.Value))
		sb.WriteString("\n")
	}
	return sb.String()
}

// banner centers label in a rule line as wide as the terminal, capped at 80.
func (t *Terminal) banner(label string) string {
	width := min(t.width, 80)
	text := " " + label + " "
	pad := width - runewidth.StringWidth(text)
	if pad < 2 {
		return t.theme.Bold.Render(label)
	}
	left := pad / 2
	return t.theme.Rule.Render(strings.Repeat("=", left)) +
		t.theme.Bold.Render(text) +
		t.theme.Rule.Render(strings.Repeat("=", pad-left))
}

func (t *Terminal) renderLeaderboard(l *pattern.Leaderboard) string {
	if len(l.Items) == 0 {
		return ""
	}
	var sb strings.Builder
	if l.Label != "" {
		header := l.Label
		if l.TotalCount > len(l.Items) {
			header += fmt.Sprintf(" (top %d of %d)", len(l.Items), l.TotalCount)
		}
		sb.WriteString(t.theme.Bold.Render(header))
		sb.WriteString("\n")
	}

	maxName, maxMetric := 0, 0
	for _, item := range l.Items {
		maxName = max(maxName, runewidth.StringWidth(item.Name))
		maxMetric = max(maxMetric, runewidth.StringWidth(item.Metric))
	}
	maxName = min(maxName, 50)

	for _, item := range l.Items {
		sb.WriteString("  ")
		if l.ShowRank {
			sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("%2d. ", item.Rank)))
		}
		sb.WriteString(t.theme.Rule.Render(padRight(truncate(item.Name, maxName), maxName)))
		sb.WriteString("  ")
		sb.WriteString(t.theme.Warn.Render(padLeft(item.Metric, maxMetric)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderTestTable(tt *pattern.TestTable) string {
	var sb strings.Builder
	shown := 0
	for _, r := range tt.Results {
		if t.hidePassed && r.Status == "pass" {
			continue
		}
		shown++
		sb.WriteString("  ")
		icon, style := t.theme.Mark(r.Status)
		sb.WriteString(style.Render(icon + " " + strings.ToUpper(r.Status)))
		sb.WriteString(" ")
		sb.WriteString(truncate(r.Name, max(t.width-10, 20)))

		if r.Details != "" {
			for _, detail := range strings.Split(r.Details, "\n") {
				for _, line := range wrap(detail, max(t.width-6, 20)) {
					sb.WriteString("\n      ")
					sb.WriteString(style.Render(line))
				}
			}
		}
		sb.WriteString("\n")
	}
	if shown == 0 {
		return ""
	}
	if tt.Label != "" {
		return t.theme.Bold.Render(tt.Label) + "\n" + sb.String()
	}
	return sb.String()
}

func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}

// wrap breaks s at spaces into lines no wider than width. Single words
// wider than width are kept whole.
func wrap(s string, width int) []string {
	if runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	var cur strings.Builder
	col := 0
	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		if col > 0 && col+1+w > width {
			lines = append(lines, cur.String())
			cur.Reset()
			col = 0
		}
		if col > 0 {
			cur.WriteString(" ")
			col++
		}
		cur.WriteString(word)
		col += w
	}
	return append(lines, cur.String())
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func padLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}
