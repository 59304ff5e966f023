package header

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	t.Parallel()

	lines, err := ReadLines(strings.NewReader("one\r\ntwo\nthree\nfour\n"), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, lines)

	lines, err = ReadLines(strings.NewReader(""), 10)
	require.NoError(t, err)
	assert.Empty(t, lines)

	lines, err = ReadLines(strings.NewReader("last"), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"last"}, lines)
}

func TestReadLines_LongLineIsTruncated(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 3*1024*1024)
	lines, err := ReadLines(strings.NewReader("first\n"+long+"\nafter\n"), 10)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "first", lines[0])
	assert.Len(t, lines[1], maxLineBytes)
	assert.Equal(t, "after", lines[2])
}

func TestExtract(t *testing.T) {
	t.Parallel()

	delim := HashStyle.Delimiter()
	tests := []struct {
		name      string
		lines     []string
		wantKind  Kind
		wantLine  int
		wantFirst int
		wantLen   int
	}{
		{
			name:      "at top",
			lines:     []string{delim, "#  File:          a.py", delim, "", "import os"},
			wantFirst: 1, wantLen: 3,
		},
		{
			name:      "after shebang",
			lines:     []string{"#!/usr/bin/env python3", delim, "x", delim},
			wantFirst: 2, wantLen: 3,
		},
		{
			name:      "after yaml document marker",
			lines:     []string{"---", delim, delim},
			wantFirst: 2, wantLen: 2,
		},
		{
			name:     "code before header",
			lines:    []string{"import os", delim, delim},
			wantKind: StartDelimiterMissing, wantLine: 1,
		},
		{
			name:     "empty file",
			lines:    nil,
			wantKind: StartDelimiterMissing, wantLine: 0,
		},
		{
			name:     "only a shebang",
			lines:    []string{"#!/bin/sh"},
			wantKind: StartDelimiterMissing, wantLine: 1,
		},
		{
			name:     "short delimiter",
			lines:    []string{"# =====", delim},
			wantKind: StartDelimiterMissing, wantLine: 1,
		},
		{
			name:     "never closed",
			lines:    []string{delim, "#  File:          a.py", "", "code"},
			wantKind: UnexpectedEOF, wantLine: 4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hdr, err := Extract(tt.lines, "a.py")
			if tt.wantKind != 0 {
				require.NotNil(t, err)
				assert.Equal(t, tt.wantKind, err.Kind)
				assert.Equal(t, tt.wantLine, err.Line)
				assert.Nil(t, hdr)
				return
			}
			require.Nil(t, err)
			require.Len(t, hdr, tt.wantLen)
			assert.Equal(t, tt.wantFirst, hdr[0].Num)
			assert.Equal(t, delim, hdr[len(hdr)-1].Text)
		})
	}
}

func TestExtract_BoundedHeader(t *testing.T) {
	t.Parallel()

	delim := HashStyle.Delimiter()
	body := make([]string, MaxHeaderLines)
	for i := range body {
		body[i] = "#"
	}

	lines := append(append([]string{delim}, body[:MaxHeaderLines-1]...), delim)
	hdr, err := Extract(lines, "a.py")
	require.Nil(t, err)
	assert.Len(t, hdr, MaxHeaderLines+1)

	lines = append(append([]string{delim}, body...), delim)
	_, err = Extract(lines, "a.py")
	require.NotNil(t, err)
	assert.Equal(t, UnexpectedEOF, err.Kind)
	assert.Equal(t, MaxHeaderLines+1, err.Line)
}

func TestExtract_SlashStyle(t *testing.T) {
	t.Parallel()

	delim := SlashStyle.Delimiter()
	hdr, err := Extract([]string{delim, "//", delim, "#include <stdio.h>"}, "src/main.c")
	require.Nil(t, err)
	assert.Len(t, hdr, 3)
}
