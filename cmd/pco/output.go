package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/pco/internal/config"
	"github.com/dkoosis/pco/internal/version"
	"github.com/dkoosis/pco/pkg/mapper"
	"github.com/dkoosis/pco/pkg/pattern"
	"github.com/dkoosis/pco/pkg/render"
	"github.com/dkoosis/pco/pkg/sarif"
)

// emit writes the report for runs in the resolved output format.
func (s *session) emit(runs []mapper.CheckRun) error {
	format := resolveFormat(s.cfg.Format, s.stdout)
	if format == "sarif" {
		b := sarif.NewBuilder()
		for _, r := range runs {
			mapper.AddSARIF(b, version.Version, r)
		}
		if _, err := b.WriteTo(s.stdout); err != nil {
			return usageError(fmt.Errorf("writing output: %w", err))
		}
		return nil
	}

	var patterns []pattern.Pattern
	if len(runs) == 1 {
		patterns = mapper.FromRun(runs[0])
	} else {
		patterns = mapper.FromRuns(runs)
	}
	fmt.Fprint(s.stdout, selectRenderer(format, s.cfg, s.hidePassed, s.stdout).Render(patterns))
	return nil
}

func selectRenderer(mode string, cfg *config.Resolved, hidePassed bool, w io.Writer) render.Renderer {
	switch mode {
	case "json":
		return render.NewJSON()
	case "llm":
		return render.NewLLM()
	default:
		theme := render.ThemeByName(cfg.Theme)
		if cfg.NoColor {
			theme = render.MonoTheme()
		}
		return render.NewTerminal(theme, termWidth(w)).HidePassed(hidePassed)
	}
}

func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	// Auto-detect: TTY = terminal, piped = llm
	if isTTYWriter(w) {
		return "terminal"
	}
	return "llm"
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}
