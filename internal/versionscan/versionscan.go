// Package versionscan finds version strings embedded in project files that
// disagree with the project version.
//
// A stale version on a line marked as a static version identifier (on the
// line itself or the one above), or on a line dated before today, is
// historical and only warned about. Any other stale version is a mismatch.
package versionscan

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/dkoosis/pco/internal/driver"
)

// StaticIdentifier marks a line whose version is intentionally fixed.
const StaticIdentifier = "static version identifier"

// Rule identifiers used in findings.
const (
	RuleHistorical = "version-historical"
	RuleMismatch   = "version-mismatch"
	RuleUnreadable = "unreadable"
)

var (
	versionRe = regexp.MustCompile(`[0-9]{1,2}\.[0-9]{1,2}\.[0-9]{1,2}[a-z]?`)
	dateRe    = regexp.MustCompile(`([0-9]{4})-([0-9]{2})-([0-9]{2})`)
)

// Checker scans whole files for embedded version strings.
type Checker struct {
	Version string
	Now     func() time.Time // nil means time.Now
}

// NewChecker returns a Checker comparing against version.
func NewChecker(version string) *Checker {
	return &Checker{Version: version}
}

// Name identifies the check in reports.
func (c *Checker) Name() string { return "version" }

// Check scans path. An unreadable file is a warning, not a failure.
func (c *Checker) Check(_ context.Context, path string) driver.Outcome {
	lines, err := readAll(path)
	if err != nil {
		return driver.Outcome{
			Path:   path,
			Status: driver.Warn,
			Findings: []driver.Finding{{
				Rule:    RuleUnreadable,
				Level:   driver.Warn,
				Message: fmt.Sprintf("%s: Could not read file (%v)", path, err),
			}},
		}
	}
	findings := Scan(lines, c.Version, c.today())
	for i := range findings {
		findings[i].Message = fmt.Sprintf("%s @ %s, line: %d", findings[i].Message, path, findings[i].Line)
	}
	return driver.Outcome{Path: path, Status: status(findings), Findings: findings}
}

func (c *Checker) today() string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return now().Format(time.DateOnly)
}

// Scan reports every version string in lines that differs from version.
// today is a YYYY-MM-DD date. Finding messages carry the tag and version only.
func Scan(lines []string, version, today string) []driver.Finding {
	var out []driver.Finding
	for i, line := range lines {
		prev := ""
		if i > 0 {
			prev = lines[i-1]
		}
		for _, v := range versionRe.FindAllString(line, -1) {
			if v == version {
				continue
			}
			if isHistorical(line, prev, today) {
				out = append(out, driver.Finding{Line: i + 1, Rule: RuleHistorical, Level: driver.Warn, Message: "[HISTORICAL] " + v})
			} else {
				out = append(out, driver.Finding{Line: i + 1, Rule: RuleMismatch, Level: driver.Fail, Message: "[MISMATCHED] " + v})
			}
		}
	}
	return out
}

func isHistorical(line, prev, today string) bool {
	if strings.Contains(line, StaticIdentifier) || strings.Contains(prev, StaticIdentifier) {
		return true
	}
	if m := dateRe.FindString(line); m != "" {
		return m < today
	}
	return false
}

func status(findings []driver.Finding) driver.Status {
	st := driver.Pass
	for _, f := range findings {
		if f.Level > st {
			st = f.Level
		}
	}
	return st
}

func readAll(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
