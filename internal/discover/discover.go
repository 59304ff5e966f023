// Package discover lists the project files that pco checks, grouped by kind.
//
// Files come from git when the root is a work tree (tracked plus untracked,
// honoring .gitignore) and from a directory walk otherwise.
package discover

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gobwas/glob"
)

// Category is the kind of project file.
type Category int

const (
	Makefiles Category = iota
	YAML
	CFamily
	Markdown
	Python
	Shell

	numCategories
)

var categoryNames = [numCategories]string{"makefiles", "yaml", "c-family", "markdown", "python", "shell"}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// Classify reports the category of a file from its name.
func Classify(path string) (Category, bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	lower := strings.ToLower(ext)
	switch {
	case strings.HasPrefix(strings.ToLower(base), "makefile") || ext == ".mk":
		return Makefiles, true
	case ext == ".yaml" || ext == ".yml":
		return YAML, true
	case isCFamily(ext):
		return CFamily, true
	case lower == ".md":
		return Markdown, true
	case lower == ".py":
		return Python, true
	case ext == ".sh" || ext == ".bash":
		return Shell, true
	}
	return 0, false
}

func isCFamily(ext string) bool {
	switch ext {
	case ".c", ".h", ".cpp", ".hpp", ".cc", ".hh", ".cxx", ".hxx":
		return true
	}
	return false
}

// Set is the result of a discovery: files per category, in discovery order.
type Set struct {
	files [numCategories][]string
}

// Add classifies path and records it; unclassified paths are ignored.
func (s *Set) Add(path string) bool {
	c, ok := Classify(path)
	if ok {
		s.files[c] = append(s.files[c], path)
	}
	return ok
}

// Files returns the files of one category.
func (s *Set) Files(c Category) []string { return s.files[c] }

// HeaderTargets are the files expected to carry a structured header: every
// category except Markdown.
func (s *Set) HeaderTargets() []string {
	var out []string
	for c := range numCategories {
		if c != Markdown {
			out = append(out, s.files[c]...)
		}
	}
	return out
}

// All returns every discovered file once, grouped by category.
func (s *Set) All() []string {
	seen := make(map[string]bool)
	var out []string
	for c := range numCategories {
		for _, f := range s.files[c] {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	return out
}

// Len is the number of classified files.
func (s *Set) Len() int {
	n := 0
	for c := range numCategories {
		n += len(s.files[c])
	}
	return n
}

// Options control a discovery.
type Options struct {
	Root    string
	Exclude []string // glob patterns over slash-separated paths relative to Root
	Git     string   // git binary; "git" if empty
	Logger  *log.Logger
}

// Discover lists and classifies the files under opts.Root.
func Discover(ctx context.Context, opts Options) (*Set, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	excl, err := compileExcludes(opts.Exclude)
	if err != nil {
		return nil, err
	}

	rel, err := gitFiles(ctx, opts.Git, root)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Debug("git listing unavailable, walking tree", "root", root, "err", err)
		rel, err = walkFiles(ctx, root, excl)
		if err != nil {
			return nil, err
		}
	}

	set := &Set{}
	for _, r := range rel {
		if excl.match(r) {
			continue
		}
		set.Add(filepath.Join(root, filepath.FromSlash(r)))
	}
	logger.Debug("discovered files", "root", root, "classified", set.Len(), "listed", len(rel))
	return set, nil
}

func gitFiles(ctx context.Context, bin, root string) ([]string, error) {
	if bin == "" {
		bin = "git"
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "ls-files", "--cached", "--others", "--exclude-standard")
	cmd.Dir = root
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("git ls-files: exit %d: %s", exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("git ls-files: %w", err)
	}

	var out []string
	sc := bufio.NewScanner(&stdout)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}

func walkFiles(ctx context.Context, root string, excl excludes) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if d.Name() == ".git" || (rel != "." && excl.match(rel)) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			out = append(out, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return out, nil
}

type excludes []glob.Glob

func compileExcludes(patterns []string) (excludes, error) {
	out := make(excludes, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", p, err)
		}
		out = append(out, g)
	}
	return out, nil
}

func (e excludes) match(rel string) bool {
	for _, g := range e {
		if g.Match(rel) {
			return true
		}
	}
	return false
}
