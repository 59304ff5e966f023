package mapper

import (
	"github.com/dkoosis/pco/internal/driver"
	"github.com/dkoosis/pco/pkg/sarif"
)

// AddSARIF appends a SARIF run for r to b. Passing files produce no results.
func AddSARIF(b *sarif.Builder, toolVersion string, r CheckRun) {
	b.StartRun("pco-"+r.Check, toolVersion)
	for _, o := range r.Outcomes {
		for _, f := range o.Findings {
			b.AddResult(f.Rule, sarifLevel(f.Level), f.Message, o.Path, f.Line, 0)
		}
	}
}

func sarifLevel(s driver.Status) string {
	switch s {
	case driver.Pass:
		return "note"
	case driver.Warn:
		return "warning"
	default:
		return "error"
	}
}
