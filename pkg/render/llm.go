package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dkoosis/pco/pkg/pattern"
)

const (
	statusFail = "fail"
	statusWarn = "warn"

	maxDetailLines = 3
)

// LLM renders patterns as terse plain text optimized for AI consumption.
// Zero ANSI codes, deterministic order, one SCOPE line per check, passing
// files omitted.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all patterns for LLM consumption.
func (l *LLM) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			l.renderSummary(&sb, v)
		case *pattern.TestTable:
			l.renderTable(&sb, v)
		}
	}
	return sb.String()
}

func (l *LLM) renderSummary(sb *strings.Builder, s *pattern.Summary) {
	switch s.Kind {
	case pattern.SummaryKindRun:
		sb.WriteString("RUN: " + s.Label + "\n")
		for _, m := range s.Metrics {
			sb.WriteString(fmt.Sprintf("  %s %s: %s\n", llmLevel(m.Kind), m.Label, m.Value))
		}
	default:
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		parts := make([]string, 0, len(s.Metrics))
		for _, m := range s.Metrics {
			parts = append(parts, strings.ToLower(m.Label)+"="+plainCount(m.Value))
		}
		sb.WriteString("SCOPE: " + s.Label + " (" + strings.Join(parts, ", ") + ")\n")
	}
}

func (l *LLM) renderTable(sb *strings.Builder, t *pattern.TestTable) {
	items := make([]pattern.TestTableItem, 0, len(t.Results))
	for _, item := range t.Results {
		if item.Status == statusFail || item.Status == statusWarn {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		sb.WriteString("  all files pass\n")
		return
	}

	// Sort: failures before warnings, then by path.
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Status != items[j].Status {
			return items[i].Status == statusFail
		}
		return items[i].Name < items[j].Name
	})

	for _, item := range items {
		sb.WriteString(fmt.Sprintf("  %s %s\n", strings.ToUpper(item.Status), item.Name))
		if item.Details == "" {
			continue
		}
		lines := strings.Split(item.Details, "\n")
		n := min(len(lines), maxDetailLines)
		for _, line := range lines[:n] {
			sb.WriteString("    " + line + "\n")
		}
		if len(lines) > maxDetailLines {
			sb.WriteString(fmt.Sprintf("    ... (%d more lines)\n", len(lines)-maxDetailLines))
		}
	}
}

func llmLevel(kind string) string {
	switch kind {
	case "error":
		return "FAIL"
	case "warning":
		return "WARN"
	default:
		return "PASS"
	}
}

// plainCount drops the zero padding of numeric values.
func plainCount(v string) string {
	if n, err := strconv.Atoi(v); err == nil {
		return strconv.Itoa(n)
	}
	return v
}
