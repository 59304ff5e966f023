package header

import "strings"

// Validator names the field-specific check attached to a schema entry.
// Dispatch happens in Rules.checkField.
type Validator int

const (
	// NoValidator accepts any non-empty value.
	NoValidator Validator = iota
	// FileNameValidator requires the value to equal the file's base name.
	FileNameValidator
	// FileTypeValidator requires the label registered for the extension.
	FileTypeValidator
	// VersionValidator requires the expected project version.
	VersionValidator
	// LicenseValidator requires the fixed license block.
	LicenseValidator
	// CopyrightValidator requires the copyright line and GPL notice.
	CopyrightValidator
)

// SchemaEntry describes one header field and where it may appear.
type SchemaEntry struct {
	Name       string
	Required   bool
	Multiline  bool // value may continue on indented lines
	BlankAfter bool // exactly one blank separator must follow the field
	Validator  Validator
}

// Detect reports whether line opens this field, in either comment style.
func (e SchemaEntry) Detect(line string) bool {
	for _, s := range [...]Style{HashStyle, SlashStyle} {
		if rest, ok := strings.CutPrefix(line, s.FieldPrefix()); ok && strings.HasPrefix(rest, e.Name+":") {
			return true
		}
	}
	return false
}

// label is the text a field line starts with for style s.
func (e SchemaEntry) label(s Style) string {
	return s.FieldPrefix() + e.Name + ":"
}

// Schema is the only legal field order. New fields may be added; existing
// entries must never be reordered.
var Schema = []SchemaEntry{
	{Name: "File", Required: true, Validator: FileNameValidator},
	{Name: "File Type", Required: true, Validator: FileTypeValidator},
	{Name: "Purpose", Required: true, Multiline: true},
	{Name: "Version", Required: true, Validator: VersionValidator},
	{Name: "Date", Required: true, Multiline: true},
	{Name: "Author", Required: true, Multiline: true, BlankAfter: true},
	{Name: "Description", Multiline: true, BlankAfter: true},
	{Name: "Features", Multiline: true, BlankAfter: true},
	{Name: "Usage", Multiline: true, BlankAfter: true},
	{Name: "Note", Multiline: true, BlankAfter: true},
	{Name: "WARNING", Multiline: true, BlankAfter: true},
	{Name: "License", Required: true, Multiline: true, Validator: LicenseValidator},
	{Name: "Copyright", Required: true, Multiline: true, Validator: CopyrightValidator},
}

// Lookup returns the index of the schema field that line opens, or -1.
func Lookup(schema []SchemaEntry, line string) int {
	for i, e := range schema {
		if e.Detect(line) {
			return i
		}
	}
	return -1
}
