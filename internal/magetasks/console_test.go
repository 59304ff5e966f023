package magetasks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	old := Out
	t.Cleanup(func() { Out = old })
	Out = &buf
	fn()
	return buf.String()
}

func TestPrintH1Header(t *testing.T) {
	out := capture(t, func() { PrintH1Header("Test Title") })

	assert.Contains(t, out, strings.Repeat("=", 80))
	assert.Contains(t, out, strings.Repeat(" ", 35)+"Test Title\n")
}

func TestPrintH2Header(t *testing.T) {
	out := capture(t, func() { PrintH2Header("Test Section") })
	assert.Contains(t, out, "=== Test Section ===")
}

func TestPrintMessages(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string)
		want string
	}{
		{"success", PrintSuccess, "✅ done\n"},
		{"warning", PrintWarning, "⚠️  done\n"},
		{"error", PrintError, "❌ done\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, capture(t, func() { tt.fn("done") }))
		})
	}
}
