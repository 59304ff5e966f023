package header

import (
	"context"
	"fmt"
	"os"

	"github.com/dkoosis/pco/internal/driver"
)

// Checker validates file headers one file at a time.
type Checker struct {
	Rules *Rules
}

// NewChecker returns a Checker that applies rules.
func NewChecker(rules *Rules) *Checker {
	return &Checker{Rules: rules}
}

// Name identifies the check in reports.
func (c *Checker) Name() string { return "header" }

// Check reads the leading lines of path and validates its header.
func (c *Checker) Check(_ context.Context, path string) driver.Outcome {
	f, err := os.Open(path)
	if err != nil {
		return driver.FatalOutcome(path, fmt.Errorf("open: %w", err))
	}
	defer f.Close()

	lines, err := ReadLines(f, MaxFileReadLines)
	if err != nil {
		return driver.FatalOutcome(path, err)
	}
	return Outcome(path, Validate(lines, path, c.Rules))
}

// Outcome converts a validation result into the driver's per-file outcome.
func Outcome(path string, verr *Error) driver.Outcome {
	if verr == nil {
		return driver.Outcome{Path: path, Status: driver.Pass}
	}
	return driver.Outcome{
		Path:   path,
		Status: driver.Fail,
		Findings: []driver.Finding{{
			Line:    verr.Line,
			Rule:    verr.Kind.Rule(),
			Level:   driver.Fail,
			Message: verr.Error(),
		}},
	}
}
