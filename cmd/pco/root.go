package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dkoosis/pco/internal/config"
)

// app holds the state of one invocation. Every run builds its own.
type app struct {
	stdout, stderr io.Writer
	getenv         func(string) string

	rootDir    string
	cfgPath    string
	flags      config.Flags
	hidePassed bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, getenv: os.Getenv}

	cmd := &cobra.Command{
		Use:   "pco",
		Short: "Pre-commit conformance checks for file headers and version strings",
		Long: `pco validates the structured comment header at the top of project files
and looks for version strings that disagree with the project VERSION file.

Examples:
  pco header              Check headers of every discovered file
  pco version src/a.py    Scan one file for stale version strings
  pco all --format llm    Run every check, plain output`,
		SilenceUsage: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.rootDir, "root", ".", "project root to discover files under")
	pf.StringVar(&a.cfgPath, "config", "", "config file (default is <root>/"+config.DefaultFileName+")")
	pf.StringVar(&a.flags.Format, "format", "", "output format: auto, terminal, llm, json, sarif")
	pf.StringVar(&a.flags.Theme, "theme", "", "terminal theme: default, subdued, mono")
	pf.BoolVar(&a.flags.NoColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "log configuration and discovery details")
	pf.BoolVar(&a.hidePassed, "hide-passed", false, "omit passing files from terminal output")

	cmd.AddCommand(a.headerCmd(), a.versionCmd(), a.allCmd())
	return cmd
}

// prepare loads configuration and the project version for a check command.
func (a *app) prepare(cmd *cobra.Command) (*session, error) {
	a.flags.NoColorSet = cmd.Flags().Changed("no-color")

	logger := log.NewWithOptions(a.stderr, log.Options{Prefix: "pco", Level: log.WarnLevel})
	if a.flags.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	file, path, err := config.Load(a.rootDir, a.cfgPath, logger)
	if err != nil {
		return nil, usageError(err)
	}
	cfg, err := config.Resolve(a.rootDir, a.flags, file, a.getenv)
	if err != nil {
		return nil, usageError(err)
	}
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	logger.Debug("configuration",
		"file", path,
		"format", cfg.Format, "format_source", cfg.FormatSource,
		"theme", cfg.Theme, "theme_source", cfg.ThemeSource,
		"no_color", cfg.NoColor, "no_color_source", cfg.NoColorSource,
		"debug_source", cfg.DebugSource,
	)

	v, err := config.LoadProjectVersion(cfg.VersionFile)
	if err != nil {
		return nil, usageError(err)
	}
	logger.Debug("project version", "version", v, "file", cfg.VersionFile)

	return &session{app: a, cfg: cfg, version: v, logger: logger}, nil
}
