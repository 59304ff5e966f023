package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// Sources recorded in Resolved, highest priority first.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

var (
	// Formats are the accepted output formats.
	Formats = []string{"auto", "terminal", "llm", "json", "sarif"}
	// Themes are the accepted terminal themes.
	Themes = []string{"default", "subdued", "mono"}
)

// Flags holds command-line values. The *Set fields record whether the user
// passed the flag explicitly.
type Flags struct {
	Format     string
	Theme      string
	NoColor    bool
	NoColorSet bool
	Verbose    bool
}

// Resolved is the effective configuration of one run.
type Resolved struct {
	Root         string
	VersionFile  string // absolute or relative to the working directory
	Exclude      []string
	Format       string
	Theme        string
	NoColor      bool
	Debug        bool
	License      []string // nil means the built-in text
	Copyright    []string
	AllowedTypes []string

	// Resolution metadata, for --verbose output.
	FormatSource  string
	ThemeSource   string
	NoColorSource string
	DebugSource   string
}

// Resolve merges flags, environment and file settings for the project at
// root with priority CLI > env > file > default. getenv is usually os.Getenv.
func Resolve(root string, flags Flags, file *File, getenv func(string) string) (*Resolved, error) {
	if file == nil {
		file = &File{}
	}
	r := &Resolved{
		Root:         root,
		VersionFile:  file.VersionFile,
		Exclude:      file.Exclude,
		License:      file.License,
		Copyright:    file.Copyright,
		AllowedTypes: file.AllowedTypes,
	}

	r.Format, r.FormatSource = pick(flags.Format, getenv("PCO_FORMAT"), file.Format, DefaultFormat)
	r.Theme, r.ThemeSource = pick(flags.Theme, getenv("PCO_THEME"), file.Theme, DefaultTheme)

	switch {
	case flags.NoColorSet:
		r.NoColor, r.NoColorSource = flags.NoColor, SourceCLI
	default:
		if b, ok := envBool(getenv, "PCO_NO_COLOR", "NO_COLOR"); ok {
			r.NoColor, r.NoColorSource = b, SourceEnv
		} else if file.NoColor != nil {
			r.NoColor, r.NoColorSource = *file.NoColor, SourceFile
		} else {
			r.NoColorSource = SourceDefault
		}
	}

	switch {
	case flags.Verbose:
		r.Debug, r.DebugSource = true, SourceCLI
	case getenv("PCO_DEBUG") != "":
		r.Debug, r.DebugSource = true, SourceEnv
	default:
		r.DebugSource = SourceDefault
	}

	if r.VersionFile == "" {
		r.VersionFile = DefaultVersionFile
	}
	if !filepath.IsAbs(r.VersionFile) {
		r.VersionFile = filepath.Join(root, r.VersionFile)
	}

	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return r, nil
}

// pick returns the first non-empty value and the source it came from.
func pick(cli, env, file, def string) (string, string) {
	switch {
	case cli != "":
		return cli, SourceCLI
	case env != "":
		return env, SourceEnv
	case file != "":
		return file, SourceFile
	default:
		return def, SourceDefault
	}
}

// envBool reads the first key that is set. NO_COLOR follows the no-color.org
// convention: any non-empty value that is not a boolean counts as true.
func envBool(getenv func(string) string, keys ...string) (bool, bool) {
	for _, key := range keys {
		val := getenv(key)
		if val == "" {
			continue
		}
		if b, err := strconv.ParseBool(val); err == nil {
			return b, true
		}
		if key == "NO_COLOR" {
			return true, true
		}
	}
	return false, false
}

func (r *Resolved) validate() error {
	var errs []error
	if !slices.Contains(Formats, r.Format) {
		errs = append(errs, fmt.Errorf("invalid format %q (%s): must be one of %s",
			r.Format, r.FormatSource, strings.Join(Formats, ", ")))
	}
	if !slices.Contains(Themes, r.Theme) {
		errs = append(errs, fmt.Errorf("invalid theme %q (%s): must be one of %s",
			r.Theme, r.ThemeSource, strings.Join(Themes, ", ")))
	}
	for _, t := range r.AllowedTypes {
		if strings.TrimSpace(t) == "" {
			errs = append(errs, errors.New("allowed_types must not contain empty entries"))
			break
		}
	}
	return errors.Join(errs...)
}
