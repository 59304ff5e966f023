package magetasks

import (
	"bytes"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCommandNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "exec.ErrNotFound", err: exec.ErrNotFound, expected: true},
		{name: "wrapped exec.ErrNotFound", err: errors.Join(errors.New("run"), exec.ErrNotFound), expected: true},
		{name: "executable file not found", err: errors.New("executable file not found"), expected: true},
		{name: "no such file or directory", err: errors.New("no such file or directory"), expected: true},
		{name: "other error", err: errors.New("some other error"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCommandNotFound(tt.err))
		})
	}
}

func TestRun_MissingCommand(t *testing.T) {
	var buf bytes.Buffer
	old := Out
	t.Cleanup(func() { Out = old })
	Out = &buf

	err := Run("Missing", "pco-no-such-command-xyz")
	require.Error(t, err)
	assert.True(t, IsCommandNotFound(err))
	assert.Contains(t, buf.String(), "→ Missing")
}
