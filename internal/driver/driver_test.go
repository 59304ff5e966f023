package driver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	results map[string]Status
	seen    []string
}

func (s *stubChecker) Name() string { return "stub" }

func (s *stubChecker) Check(_ context.Context, path string) Outcome {
	s.seen = append(s.seen, path)
	st := s.results[path]
	if path == "boom" {
		panic("kaboom")
	}
	return Outcome{Path: path, Status: st}
}

func TestRun_TalliesAndPreservesOrder(t *testing.T) {
	t.Parallel()

	c := &stubChecker{results: map[string]Status{
		"a": Pass, "b": Fail, "c": Warn, "d": Pass,
	}}
	var reported []string
	totals, err := Run(context.Background(), c, []string{"a", "b", "c", "d"},
		ReporterFunc(func(o Outcome) { reported = append(reported, o.Path) }))

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, c.seen)
	assert.Equal(t, []string{"a", "b", "c", "d"}, reported)
	assert.Equal(t, Totals{Files: 4, Passed: 2, Failed: 1, Warned: 1}, totals)
	assert.False(t, totals.OK())
}

func TestRun_PanicBecomesFatalAndRunContinues(t *testing.T) {
	t.Parallel()

	c := &stubChecker{results: map[string]Status{"a": Pass, "z": Pass}}
	var outcomes []Outcome
	totals, err := Run(context.Background(), c, []string{"a", "boom", "z"},
		ReporterFunc(func(o Outcome) { outcomes = append(outcomes, o) }))

	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	assert.Equal(t, Fatal, outcomes[1].Status)
	require.Len(t, outcomes[1].Findings, 1)
	assert.Contains(t, outcomes[1].Findings[0].Message, "kaboom")
	assert.Equal(t, Pass, outcomes[2].Status)
	assert.Equal(t, 1, totals.Failed)
}

func TestRun_WarningsAloneAreOK(t *testing.T) {
	t.Parallel()

	c := &stubChecker{results: map[string]Status{"a": Warn, "b": Pass}}
	totals, err := Run(context.Background(), c, []string{"a", "b"}, nil)

	require.NoError(t, err)
	assert.True(t, totals.OK())
	assert.Equal(t, 1, totals.Warned)
}

func TestRun_StopsBetweenFilesOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	c := &stubChecker{results: map[string]Status{}}
	var n int
	_, err := Run(ctx, c, []string{"a", "b", "c"}, ReporterFunc(func(Outcome) {
		n++
		cancel()
	}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, n)
}

func TestTotals_Merge(t *testing.T) {
	t.Parallel()

	a := Totals{Files: 2, Passed: 1, Failed: 1}
	b := Totals{Files: 3, Passed: 1, Warned: 2}
	assert.Equal(t, Totals{Files: 5, Passed: 2, Failed: 1, Warned: 2}, a.Merge(b))
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pass", Pass.String())
	assert.Equal(t, "warn", Warn.String())
	assert.Equal(t, "fail", Fail.String())
	assert.Equal(t, "fatal", Fatal.String())
}
