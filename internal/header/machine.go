package header

import "strings"

// state is a position in the header state machine.
type state int

const (
	stateAwaitStart state = iota
	stateField
	stateMultiline
	stateSeparator
	stateAwaitEnd
	stateDone
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateAwaitStart:
		return "AwaitStart"
	case stateField:
		return "Field"
	case stateMultiline:
		return "Multiline"
	case stateSeparator:
		return "Separator"
	case stateAwaitEnd:
		return "AwaitEnd"
	case stateDone:
		return "Done"
	case stateFailed:
		return "Failed"
	default:
		return "state(?)"
	}
}

// parser is the context of one header validation. It is owned by a single
// call to Parse and discarded afterwards.
type parser struct {
	rules  *Rules
	schema []SchemaEntry
	file   string
	style  Style
	lines  []HeaderLine

	pos   int // line cursor
	field int // schema cursor; never decreases
	cont  int // continuation lines consumed for the current field
	err   *Error
}

// Validate extracts the header from the leading lines of file and checks it
// against the schema. It returns nil when the header conforms.
func Validate(lines []string, file string, rules *Rules) *Error {
	hdr, err := Extract(lines, file)
	if err != nil {
		return err
	}
	return Parse(hdr, file, rules)
}

// Parse runs the state machine over an extracted header, which must begin
// with the start delimiter.
func Parse(hdr []HeaderLine, file string, rules *Rules) *Error {
	p := &parser{
		rules:  rules,
		schema: rules.schema(),
		file:   file,
		style:  StyleFor(file),
		lines:  hdr,
	}
	st := stateAwaitStart
	for st != stateDone && st != stateFailed {
		st = p.step(st)
	}
	return p.err
}

func (p *parser) step(st state) state {
	switch st {
	case stateAwaitStart:
		return p.awaitStart()
	case stateField:
		return p.lexed(p.onField)
	case stateMultiline:
		return p.lexed(p.onMultiline)
	case stateSeparator:
		return p.lexed(p.onSeparator)
	case stateAwaitEnd:
		return p.awaitEnd()
	case stateDone, stateFailed:
		return st
	}
	return p.fail(errorf(EndDelimiterMissing, p.file, p.lastNum(), "internal error: unknown parser state %s", st))
}

// lexed applies the line-format rules to the current line, whatever it turns
// out to be, before handing it to next.
func (p *parser) lexed(next func() state) state {
	if hl, ok := p.current(); ok {
		if err := checkLine(p.file, hl); err != nil {
			if p.field < len(p.schema) {
				err.Field = p.schema[p.field].Name
			}
			return p.fail(err)
		}
	}
	return next()
}

func (p *parser) fail(err *Error) state {
	p.err = err
	return stateFailed
}

func (p *parser) current() (HeaderLine, bool) {
	if p.pos >= len(p.lines) {
		return HeaderLine{}, false
	}
	return p.lines[p.pos], true
}

// lastNum is the number of the last line consumed, or of the last line seen.
func (p *parser) lastNum() int {
	switch {
	case p.pos > 0 && p.pos <= len(p.lines):
		return p.lines[p.pos-1].Num
	case len(p.lines) > 0:
		return p.lines[len(p.lines)-1].Num
	default:
		return 0
	}
}

func (p *parser) isDelimiter(hl HeaderLine) bool { return hl.Text == p.style.Delimiter() }

func (p *parser) endMissing() state {
	return p.fail(errorf(EndDelimiterMissing, p.file, p.lastNum(), "Could not find matching end delimiter"))
}

func (p *parser) awaitStart() state {
	hl, ok := p.current()
	if !ok || !p.isDelimiter(hl) {
		return p.fail(errorf(StartDelimiterMissing, p.file, hl.Num, "Missing or malformed header start delimiter."))
	}
	p.pos++
	return stateField
}

func (p *parser) onField() state {
	hl, ok := p.current()
	if !ok {
		return p.endMissing()
	}
	if p.isDelimiter(hl) {
		return p.finish(p.field, hl)
	}
	if p.field >= len(p.schema) {
		return p.fail(errorf(UnexpectedTrailingLines, p.file, hl.Num, "Extra lines found after expected header fields: %s", hl.Text))
	}

	// Optional fields are skipped forward through, never revisited.
	for !p.schema[p.field].Detect(hl.Text) {
		e := p.schema[p.field]
		if e.Required {
			return p.fail(p.misplaced(e, hl))
		}
		p.field++
		if p.field >= len(p.schema) {
			if Lookup(p.schema, hl.Text) >= 0 {
				return p.fail(p.outOfOrder(hl, "end of header"))
			}
			return p.fail(errorf(UnexpectedTrailingLines, p.file, hl.Num, "Extra lines found after expected header fields: %s", hl.Text))
		}
	}

	e := p.schema[p.field]
	if err := checkFieldLine(p.file, p.style, e, hl); err != nil {
		err.Field = e.Name
		return p.fail(err)
	}
	if err := p.rules.checkField(p.file, p.style, e, hl); err != nil {
		return p.fail(err)
	}
	p.pos++
	switch {
	case e.Multiline:
		p.cont = 0
		return stateMultiline
	case e.BlankAfter:
		return stateSeparator
	default:
		p.field++
		return stateField
	}
}

func (p *parser) onMultiline() state {
	e := p.schema[p.field]
	hl, ok := p.current()
	if !ok {
		return p.endMissing()
	}
	switch {
	case p.isDelimiter(hl):
		if err := p.blockEnd(e); err != nil {
			return p.fail(err)
		}
		return p.finish(p.field+1, hl)
	case e.BlankAfter && hl.Text == p.style.Blank():
		if err := p.blockEnd(e); err != nil {
			return p.fail(err)
		}
		return stateSeparator
	case Lookup(p.schema, hl.Text) >= 0:
		if e.BlankAfter {
			return p.fail(p.blankMissing(e, hl))
		}
		if err := p.blockEnd(e); err != nil {
			return p.fail(err)
		}
		p.field++
		return stateField
	case p.blockComplete(e) && !strings.HasPrefix(hl.Text, p.style.Continuation()):
		p.field++
		return stateField
	case strings.HasPrefix(hl.Text, p.style.Continuation()):
		if err := p.rules.checkContinuation(p.file, p.style, e, hl, p.cont+1); err != nil {
			return p.fail(err)
		}
		p.cont++
		p.pos++
		return stateMultiline
	case p.cont > 0:
		err := errorf(MalformedMultiline, p.file, hl.Num, "Malformed multiline continuation for field '%s': %s", e.Name, hl.Text)
		err.Field = e.Name
		return p.fail(err)
	default:
		err := errorf(ExpectedContinuation, p.file, hl.Num, "Expected indented multiline continuation for field '%s', got: %s", e.Name, hl.Text)
		err.Field = e.Name
		return p.fail(err)
	}
}

func (p *parser) onSeparator() state {
	e := p.schema[p.field]
	hl, ok := p.current()
	switch {
	case !ok:
		return p.endMissing()
	case hl.Text == p.style.Blank():
		p.pos++
		p.field++
		return stateField
	default:
		return p.fail(p.blankMissing(e, hl))
	}
}

func (p *parser) awaitEnd() state {
	hl, ok := p.current()
	if !ok || !p.isDelimiter(hl) {
		return p.endMissing()
	}
	p.pos++
	return stateDone
}

// finish is reached at the end delimiter. Every required field from index
// from onwards was never seen.
func (p *parser) finish(from int, hl HeaderLine) state {
	for _, e := range p.schema[min(from, len(p.schema)):] {
		if e.Required {
			err := errorf(MissingRequiredField, p.file, hl.Num, "Missing required field '%s' before end delimiter.", e.Name)
			err.Field = e.Name
			return p.fail(err)
		}
	}
	return stateAwaitEnd
}

func (p *parser) blockEnd(e SchemaEntry) *Error {
	return p.rules.checkBlockEnd(p.file, p.style, e, p.lastNum(), p.cont+1)
}

// blockComplete reports whether e is a literal block with all of its lines
// already consumed.
func (p *parser) blockComplete(e SchemaEntry) bool {
	want := p.rules.block(p.style, e)
	return want != nil && p.cont+1 >= len(want)
}

func (p *parser) blankMissing(e SchemaEntry, hl HeaderLine) *Error {
	err := errorf(MissingBlankSeparator, p.file, hl.Num, "Missing required blank comment line after field '%s'", e.Name)
	err.Field = e.Name
	return err
}

// misplaced classifies a line that does not open the required field e.
func (p *parser) misplaced(e SchemaEntry, hl HeaderLine) *Error {
	idx := Lookup(p.schema, hl.Text)
	if idx < 0 {
		err := errorf(MissingRequiredField, p.file, hl.Num, "Expected field '%s' but found unknown or misspelled header line: %s", e.Name, hl.Text)
		err.Field = e.Name
		return err
	}
	if idx < p.field || p.appearsLater(e) {
		return p.outOfOrder(hl, e.Name)
	}
	err := errorf(MissingRequiredField, p.file, hl.Num, "Missing required field '%s'; found '%s' instead.", e.Name, p.schema[idx].Name)
	err.Field = e.Name
	return err
}

func (p *parser) outOfOrder(hl HeaderLine, expected string) *Error {
	name := p.schema[Lookup(p.schema, hl.Text)].Name
	err := errorf(FieldOutOfOrder, p.file, hl.Num, "Field '%s' is out of order; expected '%s'.", name, expected)
	err.Field = name
	return err
}

// appearsLater reports whether e opens any line after the current one.
func (p *parser) appearsLater(e SchemaEntry) bool {
	for _, hl := range p.lines[p.pos+1:] {
		if e.Detect(hl.Text) {
			return true
		}
	}
	return false
}
