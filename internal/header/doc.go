// Package header validates the structured comment block at the top of a
// project source file.
//
// A header is delimited by a fixed rule line and lists fields in the order
// given by Schema:
//
//	# ==============================================================================
//	#  File:          tool.py
//	#  File Type:     Python Script
//	#  Purpose:       One line, or more on indented continuation lines
//	#  Version:       0.9.0d
//	#  Date:          2025-08-06
//	#  Author:        Jane Doe <jane@example.com>
//	#
//	#  License:      GNU General Public License v3.0
//	#                SPDX-License-Identifier: GPL-3.0-or-later
//	#  Copyright:    (c) 2025 Roland Tembo Hendel
//	#                This program is free software: you can redistribute it and/or
//	#                modify it under the terms of the GNU General Public License.
//	# ==============================================================================
//
// C-family files use "//" in place of "#" (see StyleFor). Validation is
// fail-fast: Validate returns at most one *Error, whose Kind classifies the
// failure and whose Line is the 1-based line it was detected on.
package header
