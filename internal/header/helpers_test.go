package header

import (
	"fmt"
	"slices"
	"strings"
)

const testVersion = "1.2.4"

// block is one field of a fixture header: its lines and whether a blank
// separator follows.
type block struct {
	name  string
	lines []string
	blank bool
}

func hashField(name, value string) string { return fmt.Sprintf("#  %-15s%s", name+":", value) }

func slashField(name, value string) string { return fmt.Sprintf("//  %-14s%s", name+":", value) }

func hashCont(text string) string { return "#                " + text }

// minimalBlocks returns the required fields of a valid hash-style header.
func minimalBlocks(file, fileType string) []block {
	return []block{
		{name: "File", lines: []string{hashField("File", file)}},
		{name: "File Type", lines: []string{hashField("File Type", fileType)}},
		{name: "Purpose", lines: []string{hashField("Purpose", "Demo tool")}},
		{name: "Version", lines: []string{hashField("Version", testVersion)}},
		{name: "Date", lines: []string{hashField("Date", "2025-08-06")}},
		{name: "Author", lines: []string{hashField("Author", "Jane Doe <jane@example.com>")}, blank: true},
		{name: "License", lines: []string{
			"#  License:      GNU General Public License v3.0",
			"#                SPDX-License-Identifier: GPL-3.0-or-later",
		}},
		{name: "Copyright", lines: []string{
			"#  Copyright:    (c) 2025 Roland Tembo Hendel",
			"#                This program is free software: you can redistribute it and/or",
			"#                modify it under the terms of the GNU General Public License.",
		}},
	}
}

// render lays blocks out between hash-style delimiters.
func render(blocks []block) []string {
	out := []string{HashStyle.Delimiter()}
	for _, b := range blocks {
		out = append(out, b.lines...)
		if b.blank {
			out = append(out, "#")
		}
	}
	return append(out, HashStyle.Delimiter())
}

func without(blocks []block, name string) []block {
	return slices.DeleteFunc(slices.Clone(blocks), func(b block) bool { return b.name == name })
}

// insertBefore places b ahead of the block named before.
func insertBefore(blocks []block, before string, b block) []block {
	i := slices.IndexFunc(blocks, func(x block) bool { return x.name == before })
	return slices.Insert(slices.Clone(blocks), i, b)
}

// lineOf returns the 1-based line number of the first line with prefix.
func lineOf(lines []string, prefix string) int {
	for i, l := range lines {
		if strings.HasPrefix(l, prefix) {
			return i + 1
		}
	}
	return 0
}
