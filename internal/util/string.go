// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the calcpad application.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// UNICODE: Rune-aware truncation preserves multi-byte characters.
// Expressions can contain multi-byte symbols, so all truncation here counts
// display cells rather than bytes.

// TruncateLeft truncates a string to a maximum display width, keeping the
// TAIL of the string. The display shows the end of a long expression, where
// the user is typing, so truncation drops the oldest characters. A leading
// "…" marks the cut.
func TruncateLeft(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}

	runes := []rune(s)
	width := 0
	// Walk backwards collecting as many cells as fit beside the ellipsis.
	for i := len(runes) - 1; i >= 0; i-- {
		w := runewidth.RuneWidth(runes[i])
		if width+w > maxWidth-1 {
			return "…" + string(runes[i+1:])
		}
		width += w
	}
	return s
}

// TruncateRight truncates a string to a maximum display width, keeping the
// head and appending "…" when cut.
func TruncateRight(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadLeft pads a string with spaces on the left to the given display width.
// Strings already at or past the width are returned unchanged.
func PadLeft(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

// StringWidth returns the display width of a string. Double-width characters
// count as 2 columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// RuneLen returns the number of runes (characters) in a string.
// This is safer than len() for UTF-8 strings.
func RuneLen(s string) int {
	return len([]rune(s))
}
