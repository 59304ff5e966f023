package header

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// checkLine applies the lexical rules shared by every header line.
func checkLine(file string, hl HeaderLine) *Error {
	if strings.ContainsRune(hl.Text, '\t') {
		return errorf(LineFormatViolation, file, hl.Num, "Tabs are forbidden; use spaces only.")
	}
	if strings.TrimRightFunc(hl.Text, unicode.IsSpace) != hl.Text {
		return errorf(LineFormatViolation, file, hl.Num, "Trailing whitespace is forbidden.")
	}
	if w := runewidth.StringWidth(hl.Text); w > MaxLineWidth {
		return errorf(LineFormatViolation, file, hl.Num, "Line exceeds %d characters (%d).", MaxLineWidth, w)
	}
	return nil
}

// checkFieldLine validates the layout of a line that opens entry e: generic
// rules first, then the style's marker and the exact value column.
func checkFieldLine(file string, s Style, e SchemaEntry, hl HeaderLine) *Error {
	if err := checkLine(file, hl); err != nil {
		return err
	}
	label := e.label(s)
	rest, ok := strings.CutPrefix(hl.Text, label)
	if !ok {
		return errorf(LineFormatViolation, file, hl.Num,
			"Field %q must use the %q comment marker.", e.Name, s.Marker())
	}
	if strings.TrimSpace(rest) == "" {
		return errorf(LineFormatViolation, file, hl.Num,
			"Field %q has no value.", e.Name)
	}
	col := max(s.valueColumn(e), len(label)+1)
	if len(hl.Text) <= col || strings.Trim(hl.Text[len(label):col], " ") != "" || hl.Text[col] == ' ' {
		return errorf(LineFormatViolation, file, hl.Num,
			"Field %q value must start at column %d.", e.Name, col+1)
	}
	return nil
}

// fieldValue returns the trimmed text after the field label.
func fieldValue(e SchemaEntry, line string) string {
	_, v, _ := strings.Cut(line, e.Name+":")
	return strings.TrimSpace(v)
}
