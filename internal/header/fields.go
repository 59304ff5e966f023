package header

import (
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// DefaultAllowedTypes is the set of values accepted by the File Type field.
var DefaultAllowedTypes = []string{
	"Makefile",
	"YAML File",
	"C Header File",
	"C Source File",
	"C++ Header File",
	"C++ Source File",
	"Python Script",
	"Shell Script",
}

// DefaultLicense and DefaultCopyright are the required block values, one
// entry per line, without comment marker or label.
var (
	DefaultLicense = []string{
		"GNU General Public License v3.0",
		"SPDX-License-Identifier: GPL-3.0-or-later",
	}
	DefaultCopyright = []string{
		"(c) 2025 Roland Tembo Hendel",
		"This program is free software: you can redistribute it and/or",
		"modify it under the terms of the GNU General Public License.",
	}
)

// Rules carries the run-wide inputs of the field validators. It is read-only
// once validation starts.
type Rules struct {
	Schema       []SchemaEntry // nil means Schema
	Version      string        // external project version, already trimmed
	AllowedTypes []string
	License      []string
	Copyright    []string
}

// DefaultRules returns Rules for version with the built-in literal blocks.
func DefaultRules(version string) *Rules {
	return &Rules{
		Schema:       Schema,
		Version:      strings.TrimSpace(version),
		AllowedTypes: DefaultAllowedTypes,
		License:      DefaultLicense,
		Copyright:    DefaultCopyright,
	}
}

func (r *Rules) schema() []SchemaEntry {
	if r.Schema == nil {
		return Schema
	}
	return r.Schema
}

// InferFileType maps a file name to the File Type it must declare, or ""
// when the name does not determine one (".h" may be C or C++).
func InferFileType(path string) string {
	base := filepath.Base(path)
	if base == "Makefile" || strings.HasPrefix(strings.ToLower(base), "makefile") {
		return "Makefile"
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".mk":
		return "Makefile"
	case ".py":
		return "Python Script"
	case ".sh", ".bash":
		return "Shell Script"
	case ".yaml", ".yml":
		return "YAML File"
	case ".c":
		return "C Source File"
	case ".cpp", ".cc", ".cxx":
		return "C++ Source File"
	case ".hpp", ".hh", ".hxx":
		return "C++ Header File"
	}
	return ""
}

// BlockLines renders a literal block for style s: the first line carries the
// field label, the rest are continuation lines.
func BlockLines(s Style, name string, values []string) []string {
	col := s.blockColumn()
	out := make([]string, len(values))
	for i, v := range values {
		lead := s.Marker()
		if i == 0 {
			lead = s.FieldPrefix() + name + ":"
		}
		if pad := col - len(lead); pad > 0 {
			lead += strings.Repeat(" ", pad)
		} else {
			lead += " "
		}
		out[i] = lead + v
	}
	return out
}

// block returns the literal lines required for e, or nil if e is free-form.
func (r *Rules) block(s Style, e SchemaEntry) []string {
	switch e.Validator {
	case LicenseValidator:
		return BlockLines(s, e.Name, r.License)
	case CopyrightValidator:
		return BlockLines(s, e.Name, r.Copyright)
	default:
		return nil
	}
}

// checkField runs e's validator on the opening line of the field.
func (r *Rules) checkField(file string, s Style, e SchemaEntry, hl HeaderLine) *Error {
	var err *Error
	switch e.Validator {
	case NoValidator:
	case FileNameValidator:
		err = r.checkFileName(file, e, hl)
	case FileTypeValidator:
		err = r.checkFileType(file, e, hl)
	case VersionValidator:
		err = r.checkVersion(file, e, hl)
	case LicenseValidator, CopyrightValidator:
		err = r.checkBlockLine(file, s, e, hl, 0)
	default:
		err = errorf(FieldValidationFailure, file, hl.Num, "No validator registered for field %q.", e.Name)
	}
	if err != nil {
		err.Field = e.Name
	}
	return err
}

// checkContinuation validates the part-th continuation line (1-based) of a
// field with a literal block. Free-form fields accept any continuation.
func (r *Rules) checkContinuation(file string, s Style, e SchemaEntry, hl HeaderLine, part int) *Error {
	if r.block(s, e) == nil {
		return nil
	}
	err := r.checkBlockLine(file, s, e, hl, part)
	if err != nil {
		err.Field = e.Name
	}
	return err
}

// checkBlockEnd reports a literal block cut short after lines lines.
func (r *Rules) checkBlockEnd(file string, s Style, e SchemaEntry, lastLine, lines int) *Error {
	want := r.block(s, e)
	if want == nil || lines >= len(want) {
		return nil
	}
	err := errorf(FieldValidationFailure, file, lastLine,
		"%s field is incomplete: expected %d lines, found %d.", e.Name, len(want), lines)
	err.Field = e.Name
	return err
}

func (r *Rules) checkFileName(file string, e SchemaEntry, hl HeaderLine) *Error {
	got, base := fieldValue(e, hl.Text), filepath.Base(file)
	if got != base {
		return errorf(FieldValidationFailure, file, hl.Num,
			"File: field value '%s' does not match filename '%s'", got, base)
	}
	return nil
}

func (r *Rules) checkFileType(file string, e SchemaEntry, hl HeaderLine) *Error {
	got := fieldValue(e, hl.Text)
	if !slices.Contains(r.AllowedTypes, got) {
		allowed := slices.Clone(r.AllowedTypes)
		sort.Strings(allowed)
		return errorf(FieldValidationFailure, file, hl.Num,
			"Invalid File Type: '%s'. Allowed types: %s", got, strings.Join(allowed, ", "))
	}
	if want := InferFileType(file); want != "" && got != want {
		return errorf(FieldValidationFailure, file, hl.Num,
			"File Type mismatch: header says '%s', but file appears to be '%s'", got, want)
	}
	return nil
}

func (r *Rules) checkVersion(file string, e SchemaEntry, hl HeaderLine) *Error {
	if got := fieldValue(e, hl.Text); got != r.Version {
		return errorf(FieldValidationFailure, file, hl.Num,
			"Version field '%s' does not match project VERSION '%s'", got, r.Version)
	}
	return nil
}

func (r *Rules) checkBlockLine(file string, s Style, e SchemaEntry, hl HeaderLine, part int) *Error {
	want := r.block(s, e)
	if part >= len(want) {
		return errorf(FieldValidationFailure, file, hl.Num,
			"%s field has more lines than the required text.", e.Name)
	}
	if strings.TrimSpace(hl.Text) != strings.TrimSpace(want[part]) {
		return errorf(FieldValidationFailure, file, hl.Num,
			"%s field does not match required text: want %q", e.Name, want[part])
	}
	return nil
}
