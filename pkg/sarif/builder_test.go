package sarif

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BasicOutput(t *testing.T) {
	t.Parallel()

	b := NewBuilder().StartRun("pco-header", "0.9.0d")
	b.AddResult("missing-blank-separator", "error", "missing blank line", "tool.py", 8, 0)

	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc), "output is not valid JSON")
	assert.Equal(t, "2.1.0", doc.Version)
	assert.Equal(t, SchemaURI, doc.Schema)
	require.Len(t, doc.Runs, 1)
	assert.Equal(t, "pco-header", doc.Runs[0].Tool.Driver.Name)
	require.Len(t, doc.Runs[0].Results, 1)

	r := doc.Runs[0].Results[0]
	assert.Equal(t, "missing-blank-separator", r.RuleID)
	assert.Equal(t, "error", r.Level)
	assert.Equal(t, "tool.py", r.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 8, r.Locations[0].PhysicalLocation.Region.StartLine)
}

func TestBuilder_MultipleRuns(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		StartRun("pco-header", "1.0").
		AddResult("r1", "error", "m1", "a.py", 1, 0).
		StartRun("pco-version", "1.0").
		AddResult("r2", "warning", "m2", "b.py", 2, 0).
		AddResult("r3", "error", "m3", "c.py", 3, 0)

	doc := b.Document()
	require.Len(t, doc.Runs, 2)
	assert.Len(t, doc.Runs[0].Results, 1)
	assert.Len(t, doc.Runs[1].Results, 2)
}

func TestBuilder_EmptyRunHasResultsArray(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := NewBuilder().StartRun("pco-header", "").WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"results": []`)
}

func TestBuilder_ImplicitRun(t *testing.T) {
	t.Parallel()

	doc := NewBuilder().AddResult("r", "note", "m", "", 0, 0).Document()
	require.Len(t, doc.Runs, 1)
	assert.Equal(t, "pco", doc.Runs[0].Tool.Driver.Name)
	assert.Empty(t, doc.Runs[0].Results[0].Locations)
}
