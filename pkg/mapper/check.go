// Package mapper converts check outcomes to visualization patterns and SARIF.
package mapper

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/pco/internal/driver"
	"github.com/dkoosis/pco/pkg/pattern"
)

// CheckRun is the complete result of running one check over its files.
type CheckRun struct {
	Check    string // checker name, e.g. "header"
	Outcomes []driver.Outcome
	Totals   driver.Totals
}

var descriptions = map[string]string{
	"header":  "File Header Conformance Validation",
	"version": "Embedded Version String Conformance Validation",
}

// cases.Caser is not safe for concurrent use.
var (
	titleMu sync.Mutex
	titler  = cases.Title(language.English)
)

func title(s string) string {
	titleMu.Lock()
	defer titleMu.Unlock()
	return titler.String(s)
}

// Title is the display name of a check.
func Title(check string) string {
	if d, ok := descriptions[check]; ok {
		return d
	}
	return title(strings.ReplaceAll(check, "-", " ")) + " Check"
}

// FromRun converts one check run into patterns: a summary, the per-file
// table, and a leaderboard of rules when anything was reported.
func FromRun(r CheckRun) []pattern.Pattern {
	patterns := []pattern.Pattern{runSummary(r), fileTable(r)}
	if lb := ruleLeaderboard(r, 5); lb != nil {
		patterns = append(patterns, lb)
	}
	return patterns
}

// FromRuns converts several check runs, preceded by an overall summary with
// one metric per check.
func FromRuns(runs []CheckRun) []pattern.Pattern {
	overall := &pattern.Summary{Label: "Pre-commit Operations", Kind: pattern.SummaryKindRun}
	var rest []pattern.Pattern
	for _, r := range runs {
		item := pattern.SummaryItem{Label: Title(r.Check)}
		switch {
		case r.Totals.Failed > 0:
			item.Value, item.Kind = fmt.Sprintf("%d of %d files failed", r.Totals.Failed, r.Totals.Files), "error"
		case r.Totals.Warned > 0:
			item.Value, item.Kind = fmt.Sprintf("%d warnings", r.Totals.Warned), "warning"
		default:
			item.Value, item.Kind = fmt.Sprintf("%d files pass", r.Totals.Files), "success"
		}
		overall.Metrics = append(overall.Metrics, item)
		rest = append(rest, FromRun(r)...)
	}
	return append([]pattern.Pattern{overall}, rest...)
}

func runSummary(r CheckRun) *pattern.Summary {
	t := r.Totals
	failKind, warnKind := "success", "info"
	if t.Failed > 0 {
		failKind = "error"
	}
	if t.Warned > 0 {
		warnKind = "warning"
	}
	return &pattern.Summary{
		Label: Title(r.Check),
		Kind:  pattern.SummaryKindCheck,
		Metrics: []pattern.SummaryItem{
			{Label: "Files processed", Value: count(t.Files), Kind: "info"},
			{Label: "Passed", Value: count(t.Passed), Kind: "success"},
			{Label: "Failed", Value: count(t.Failed), Kind: failKind},
			{Label: "Warnings", Value: count(t.Warned), Kind: warnKind},
		},
	}
}

// count matches the two-digit counters of the summary block.
func count(n int) string { return fmt.Sprintf("%02d", n) }

func fileTable(r CheckRun) *pattern.TestTable {
	items := make([]pattern.TestTableItem, len(r.Outcomes))
	for i, o := range r.Outcomes {
		msgs := make([]string, len(o.Findings))
		for j, f := range o.Findings {
			msgs[j] = f.Message
		}
		items[i] = pattern.TestTableItem{
			Name:    o.Path,
			Status:  mapStatus(o.Status),
			Details: strings.Join(msgs, "\n"),
		}
	}
	return &pattern.TestTable{
		Label:   title(r.Check) + " results",
		Source:  r.Check,
		Results: items,
	}
}

func ruleLeaderboard(r CheckRun, top int) *pattern.Leaderboard {
	files := make(map[string]int)
	for _, o := range r.Outcomes {
		seen := make(map[string]bool)
		for _, f := range o.Findings {
			if !seen[f.Rule] {
				seen[f.Rule] = true
				files[f.Rule]++
			}
		}
	}
	if len(files) == 0 {
		return nil
	}

	rules := make([]string, 0, len(files))
	for rule := range files {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool {
		if files[rules[i]] != files[rules[j]] {
			return files[rules[i]] > files[rules[j]]
		}
		return rules[i] < rules[j]
	})

	total := len(rules)
	if len(rules) > top {
		rules = rules[:top]
	}
	items := make([]pattern.LeaderboardItem, len(rules))
	for i, rule := range rules {
		n := files[rule]
		unit := "files"
		if n == 1 {
			unit = "file"
		}
		items[i] = pattern.LeaderboardItem{
			Name:   rule,
			Metric: fmt.Sprintf("%d %s", n, unit),
			Value:  float64(n),
			Rank:   i + 1,
		}
	}
	return &pattern.Leaderboard{
		Label:      "Most Frequent Findings",
		MetricName: "Files",
		Items:      items,
		TotalCount: total,
		ShowRank:   true,
	}
}

func mapStatus(s driver.Status) string {
	switch s {
	case driver.Pass:
		return "pass"
	case driver.Warn:
		return "warn"
	default:
		return "fail"
	}
}
