package header

import (
	"path/filepath"
	"strings"
)

// Style selects the comment syntax a file's header is written in.
type Style int

const (
	// HashStyle is used by scripts, makefiles, YAML and other text files.
	HashStyle Style = iota
	// SlashStyle is used by C-family sources and headers.
	SlashStyle
)

const (
	// MaxLineWidth is the widest a header line may be, in display columns.
	MaxLineWidth = 80
	// ValueColumn is the 0-based offset at which every field value begins,
	// in both styles. License and Copyright use blockColumn instead.
	ValueColumn = 18
	// continuationColumn is the earliest offset of continuation text.
	continuationColumn = 17
)

var (
	hashDelimiter  = "# " + strings.Repeat("=", 78)
	slashDelimiter = "// " + strings.Repeat("=", 77)
)

var cFamilyExt = map[string]bool{
	".c": true, ".h": true,
	".cpp": true, ".hpp": true,
	".cc": true, ".hh": true,
	".cxx": true, ".hxx": true,
}

// StyleFor resolves the delimiter style for a file from its name.
func StyleFor(path string) Style {
	if cFamilyExt[strings.ToLower(filepath.Ext(path))] {
		return SlashStyle
	}
	return HashStyle
}

// Marker is the bare comment marker, which is also the blank separator token.
func (s Style) Marker() string {
	if s == SlashStyle {
		return "//"
	}
	return "#"
}

// Delimiter is the literal start and end line of a header block.
func (s Style) Delimiter() string {
	if s == SlashStyle {
		return slashDelimiter
	}
	return hashDelimiter
}

// Blank is the exact blank separator line.
func (s Style) Blank() string { return s.Marker() }

// Continuation is the prefix every continuation line of a multiline field
// must start with.
func (s Style) Continuation() string {
	return s.Marker() + strings.Repeat(" ", continuationColumn-len(s.Marker()))
}

// FieldPrefix is what precedes a field label.
func (s Style) FieldPrefix() string { return s.Marker() + "  " }

// blockColumn is where License/Copyright values sit for this style.
func (s Style) blockColumn() int { return len(s.Marker()) + 16 }

// valueColumn is the exact offset of e's value on its opening line.
func (s Style) valueColumn(e SchemaEntry) int {
	switch e.Validator {
	case LicenseValidator, CopyrightValidator:
		return s.blockColumn()
	default:
		return ValueColumn
	}
}

func (s Style) String() string {
	if s == SlashStyle {
		return "slash"
	}
	return "hash"
}
