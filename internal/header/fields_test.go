package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferFileType(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Makefile":              "Makefile",
		"sub/Makefile.inc":      "Makefile",
		"makefile":              "Makefile",
		"rules.mk":              "Makefile",
		"tools/gen.py":          "Python Script",
		"run.sh":                "Shell Script",
		"setup.bash":            "Shell Script",
		"ci.yaml":               "YAML File",
		"ci.yml":                "YAML File",
		"main.c":                "C Source File",
		"codec.cpp":             "C++ Source File",
		"codec.cc":              "C++ Source File",
		"codec.hpp":             "C++ Header File",
		"board.h":               "",
		"README.md":             "",
		"components/LICENSE":    "",
		"scripts/deploy.PY":     "Python Script",
		"config/secrets.yaml.j": "",
	}
	for path, want := range tests {
		assert.Equal(t, want, InferFileType(path), path)
	}
}

func TestBlockLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"#  License:      GNU General Public License v3.0",
		"#                SPDX-License-Identifier: GPL-3.0-or-later",
	}, BlockLines(HashStyle, "License", DefaultLicense))

	assert.Equal(t, []string{
		"//  Copyright:    (c) 2025 Roland Tembo Hendel",
		"//                This program is free software: you can redistribute it and/or",
		"//                modify it under the terms of the GNU General Public License.",
	}, BlockLines(SlashStyle, "Copyright", DefaultCopyright))

	for _, s := range []Style{HashStyle, SlashStyle} {
		for _, l := range BlockLines(s, "Copyright", DefaultCopyright) {
			assert.Nil(t, checkLine("f", HeaderLine{Text: l, Num: 1}), l)
		}
	}
}

func TestDefaultRules(t *testing.T) {
	t.Parallel()

	r := DefaultRules("  0.9.0d\n")
	assert.Equal(t, "0.9.0d", r.Version)
	assert.Equal(t, Schema, r.schema())

	r.Schema = nil
	assert.Equal(t, Schema, r.schema())
}

func TestRules_CheckField(t *testing.T) {
	t.Parallel()

	r := DefaultRules(testVersion)
	tests := []struct {
		name    string
		file    string
		entry   int
		text    string
		wantErr string
	}{
		{name: "file ok", file: "a/b/tool.py", entry: 0, text: hashField("File", "tool.py")},
		{name: "file mismatch", file: "tool.py", entry: 0, text: hashField("File", "tool2.py"), wantErr: "does not match filename"},
		{name: "header type ok", file: "board.h", entry: 1, text: hashField("File Type", "C Header File")},
		{name: "header either language", file: "board.h", entry: 1, text: hashField("File Type", "C++ Header File")},
		{name: "unmapped extension", file: "notes.txt", entry: 1, text: hashField("File Type", "YAML File")},
		{name: "type not allowed", file: "a.py", entry: 1, text: hashField("File Type", "Markdown"), wantErr: "Allowed types: C Header File"},
		{name: "type mismatch", file: "a.yaml", entry: 1, text: hashField("File Type", "Makefile"), wantErr: "appears to be 'YAML File'"},
		{name: "version ok", file: "a.py", entry: 3, text: hashField("Version", "1.2.4")},
		{name: "version mismatch", file: "a.py", entry: 3, text: hashField("Version", "1.2.4b"), wantErr: "does not match project VERSION"},
		{name: "free text", file: "a.py", entry: 2, text: hashField("Purpose", "anything at all")},
		{name: "license first line", file: "a.py", entry: 11, text: "#  License:      GNU General Public License v3.0"},
		{name: "license wrong", file: "a.py", entry: 11, text: "#  License:      MIT", wantErr: "License field does not match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := Schema[tt.entry]
			err := r.checkField(tt.file, HashStyle, e, HeaderLine{Text: tt.text, Num: 2})
			if tt.wantErr == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, FieldValidationFailure, err.Kind)
			assert.Equal(t, e.Name, err.Field)
			assert.Equal(t, 2, err.Line)
			assert.Contains(t, err.Msg, tt.wantErr)
		})
	}
}

func TestRules_CustomBlocks(t *testing.T) {
	t.Parallel()

	r := DefaultRules(testVersion)
	r.License = []string{"MIT"}
	lic := Schema[11]

	assert.Nil(t, r.checkField("a.py", HashStyle, lic, HeaderLine{Text: "#  License:      MIT", Num: 9}))
	err := r.checkContinuation("a.py", HashStyle, lic, HeaderLine{Text: hashCont("extra"), Num: 10}, 1)
	require.NotNil(t, err)
	assert.Contains(t, err.Msg, "more lines")

	assert.Nil(t, r.checkContinuation("a.py", HashStyle, Schema[2], HeaderLine{Text: hashCont("free"), Num: 4}, 7))
	assert.Nil(t, r.checkBlockEnd("a.py", HashStyle, lic, 9, 1))
	assert.NotNil(t, r.checkBlockEnd("a.py", HashStyle, Schema[12], 12, 2))
}
