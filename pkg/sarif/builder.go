package sarif

import (
	"encoding/json"
	"io"
)

const (
	Version   = "2.1.0"
	SchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/main/sarif-2.1/schema/sarif-schema-2.1.0.json"
)

// Builder constructs valid SARIF 2.1.0 documents, one run per check.
type Builder struct {
	doc *Document
}

// NewBuilder creates an empty SARIF document builder.
func NewBuilder() *Builder {
	return &Builder{doc: &Document{Version: Version, Schema: SchemaURI, Runs: []Run{}}}
}

// StartRun begins a new run; subsequent results are added to it.
func (b *Builder) StartRun(toolName, toolVersion string) *Builder {
	b.doc.Runs = append(b.doc.Runs, Run{
		Tool: Tool{
			Driver: Driver{
				Name:    toolName,
				Version: toolVersion,
			},
		},
		Results: []Result{},
	})
	return b
}

// AddResult adds a diagnostic result to the current run, starting an
// anonymous run if none was started.
func (b *Builder) AddResult(ruleID, level, message, file string, line, col int) *Builder {
	if len(b.doc.Runs) == 0 {
		b.StartRun("pco", "")
	}
	r := Result{
		RuleID:  ruleID,
		Level:   level,
		Message: Message{Text: message},
	}
	if file != "" {
		r.Locations = []Location{{
			PhysicalLocation: PhysicalLocation{
				ArtifactLocation: ArtifactLocation{URI: file},
				Region: Region{
					StartLine:   line,
					StartColumn: col,
				},
			},
		}}
	}
	run := &b.doc.Runs[len(b.doc.Runs)-1]
	run.Results = append(run.Results, r)
	return b
}

// Document returns the constructed SARIF document.
func (b *Builder) Document() *Document {
	return b.doc
}

// WriteTo writes the SARIF document as JSON to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(b.doc, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}
