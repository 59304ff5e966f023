// Package driver runs a Checker over an ordered list of files and tallies
// the per-file outcomes.
//
// Files are processed one at a time in the order given. A failure, fatal
// error, or panic while checking one file is converted into that file's
// Outcome and never stops the remaining files.
package driver

import (
	"context"
	"fmt"
)

// Status is the verdict for a single file.
type Status int

const (
	Pass Status = iota
	Warn
	Fail
	// Fatal marks a file that could not be checked at all (unreadable,
	// unexpected internal error). It counts as a failure.
	Fatal
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Warn:
		return "warn"
	case Fail:
		return "fail"
	case Fatal:
		return "fatal"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Finding is one diagnostic attached to an outcome.
type Finding struct {
	Line    int    // 1-based; 0 when the finding is not tied to a line
	Rule    string // stable rule identifier, e.g. "missing-blank-separator"
	Level   Status // Warn or Fail
	Message string
}

// Outcome is the single result produced for one file.
type Outcome struct {
	Path     string
	Status   Status
	Findings []Finding
}

// Checker validates one file.
type Checker interface {
	Name() string
	Check(ctx context.Context, path string) Outcome
}

// Reporter receives outcomes as they are produced.
type Reporter interface {
	Report(o Outcome)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Outcome)

// Report calls f(o).
func (f ReporterFunc) Report(o Outcome) { f(o) }

// Totals aggregates outcomes over a run.
type Totals struct {
	Files  int
	Passed int
	Failed int
	Warned int
}

// OK reports whether the run should exit successfully. Warnings alone never
// fail a run.
func (t Totals) OK() bool { return t.Failed == 0 }

// Add folds o into the totals.
func (t *Totals) Add(o Outcome) {
	t.Files++
	switch o.Status {
	case Pass:
		t.Passed++
	case Warn:
		t.Warned++
	default:
		t.Failed++
	}
}

// Merge returns the element-wise sum of t and u.
func (t Totals) Merge(u Totals) Totals {
	return Totals{
		Files:  t.Files + u.Files,
		Passed: t.Passed + u.Passed,
		Failed: t.Failed + u.Failed,
		Warned: t.Warned + u.Warned,
	}
}

// Run checks every file in order and reports each outcome to r.
// Cancellation is observed between files only; the returned error is the
// context error when the run was cut short.
func Run(ctx context.Context, c Checker, files []string, r Reporter) (Totals, error) {
	var totals Totals
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return totals, fmt.Errorf("%s: interrupted after %d of %d files: %w", c.Name(), totals.Files, len(files), err)
		}
		o := checkIsolated(ctx, c, path)
		totals.Add(o)
		if r != nil {
			r.Report(o)
		}
	}
	return totals, nil
}

// checkIsolated runs one check, turning a panic into a fatal outcome.
func checkIsolated(ctx context.Context, c Checker, path string) (o Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			o = FatalOutcome(path, fmt.Errorf("%s: unexpected failure: %v", c.Name(), rec))
		}
	}()
	o = c.Check(ctx, path)
	if o.Path == "" {
		o.Path = path
	}
	return o
}

// FatalOutcome builds the outcome for a file that could not be checked.
func FatalOutcome(path string, err error) Outcome {
	return Outcome{
		Path:   path,
		Status: Fatal,
		Findings: []Finding{{
			Rule:    "fatal",
			Level:   Fail,
			Message: "[FATAL] " + err.Error(),
		}},
	}
}
