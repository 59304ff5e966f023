package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dkoosis/pco/internal/config"
	"github.com/dkoosis/pco/internal/discover"
	"github.com/dkoosis/pco/internal/driver"
	"github.com/dkoosis/pco/internal/header"
	"github.com/dkoosis/pco/internal/versionscan"
	"github.com/dkoosis/pco/pkg/mapper"
)

// session is a prepared run: resolved configuration and project version.
type session struct {
	*app
	cfg     *config.Resolved
	version string
	logger  *log.Logger
}

// check pairs a checker with the discovered files it applies to.
type check struct {
	checker driver.Checker
	targets func(*discover.Set) []string
}

func (a *app) headerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "header [files...]",
		Short: "Validate the structured header of each file",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.prepare(cmd)
			if err != nil {
				return err
			}
			return s.runChecks(cmd.Context(), args, s.headerCheck())
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version [files...]",
		Short: "Find embedded version strings that disagree with the VERSION file",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.prepare(cmd)
			if err != nil {
				return err
			}
			return s.runChecks(cmd.Context(), args, s.versionCheck())
		},
	}
}

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all [files...]",
		Short: "Run every pre-commit check in sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.prepare(cmd)
			if err != nil {
				return err
			}
			return s.runChecks(cmd.Context(), args, s.headerCheck(), s.versionCheck())
		},
	}
}

func (s *session) headerCheck() check {
	rules := header.DefaultRules(s.version)
	if s.cfg.License != nil {
		rules.License = s.cfg.License
	}
	if s.cfg.Copyright != nil {
		rules.Copyright = s.cfg.Copyright
	}
	if s.cfg.AllowedTypes != nil {
		rules.AllowedTypes = s.cfg.AllowedTypes
	}
	return check{checker: header.NewChecker(rules), targets: (*discover.Set).HeaderTargets}
}

func (s *session) versionCheck() check {
	return check{checker: versionscan.NewChecker(s.version), targets: (*discover.Set).All}
}

// runChecks runs each check over its targets in order and writes the report.
// An interrupted check ends the run after reporting what was checked.
func (s *session) runChecks(ctx context.Context, args []string, checks ...check) error {
	set, err := s.files(ctx, args)
	if err != nil {
		return usageError(err)
	}

	var runs []mapper.CheckRun
	var runErr error
	for _, c := range checks {
		r, err := s.runCheck(ctx, c.checker, c.targets(set))
		runs = append(runs, r)
		if err != nil {
			runErr = err
			break
		}
	}

	if err := s.emit(runs); err != nil {
		return err
	}
	if runErr != nil {
		return &exitError{Code: exitFailures, Err: runErr}
	}
	for _, r := range runs {
		if !r.Totals.OK() {
			return &exitError{Code: exitFailures}
		}
	}
	return nil
}

// files classifies the explicit file arguments, or discovers the project
// when there are none.
func (s *session) files(ctx context.Context, args []string) (*discover.Set, error) {
	if len(args) == 0 {
		set, err := discover.Discover(ctx, discover.Options{
			Root:    s.cfg.Root,
			Exclude: s.cfg.Exclude,
			Logger:  s.logger,
		})
		if err != nil {
			return nil, fmt.Errorf("discover files: %w", err)
		}
		return set, nil
	}

	set := &discover.Set{}
	for _, path := range args {
		if !set.Add(path) {
			s.logger.Debug("skipping unclassified file", "path", path)
		}
	}
	return set, nil
}

func (s *session) runCheck(ctx context.Context, c driver.Checker, files []string) (mapper.CheckRun, error) {
	r := mapper.CheckRun{Check: c.Name()}
	s.logger.Debug("running check", "check", c.Name(), "files", len(files))
	totals, err := driver.Run(ctx, c, files, driver.ReporterFunc(func(o driver.Outcome) {
		r.Outcomes = append(r.Outcomes, o)
	}))
	r.Totals = totals
	s.logger.Debug("check finished", "check", c.Name(),
		"passed", totals.Passed, "failed", totals.Failed, "warned", totals.Warned)
	return r, err
}
