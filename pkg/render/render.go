// Package render provides output renderers for pco's report patterns.
package render

import "github.com/dkoosis/pco/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}
