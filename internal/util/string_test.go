// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "testing"

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits unchanged", "50+2", 10, "50+2"},
		{"exact width unchanged", "50+2", 4, "50+2"},
		{"keeps tail", "123456789", 5, "…6789"},
		{"width one is bare ellipsis", "123456789", 1, "…"},
		{"zero width", "123", 0, ""},
		{"empty input", "", 5, ""},
		{"multibyte symbol kept whole", "12345√", 3, "…5√"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateLeft(tc.input, tc.maxWidth); got != tc.want {
				t.Errorf("TruncateLeft(%q, %d) = %q, want %q", tc.input, tc.maxWidth, got, tc.want)
			}
		})
	}
}

func TestTruncateRight(t *testing.T) {
	tests := []struct {
		input    string
		maxWidth int
		want     string
	}{
		{"50+2", 10, "50+2"},
		{"123456789", 5, "1234…"},
		{"123", 1, "…"},
		{"123", 0, ""},
	}

	for _, tc := range tests {
		if got := TruncateRight(tc.input, tc.maxWidth); got != tc.want {
			t.Errorf("TruncateRight(%q, %d) = %q, want %q", tc.input, tc.maxWidth, got, tc.want)
		}
	}
}

func TestPadLeft(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"52", 5, "   52"},
		{"52", 2, "52"},
		{"52", 1, "52"},
		{"", 3, "   "},
	}

	for _, tc := range tests {
		if got := PadLeft(tc.input, tc.width); got != tc.want {
			t.Errorf("PadLeft(%q, %d) = %q, want %q", tc.input, tc.width, got, tc.want)
		}
	}
}

func TestStringWidth(t *testing.T) {
	if got := StringWidth("50+2"); got != 4 {
		t.Errorf("StringWidth(\"50+2\") = %d, want 4", got)
	}
	// √ is a single-cell symbol
	if got := StringWidth("√"); got != 1 {
		t.Errorf("StringWidth(\"√\") = %d, want 1", got)
	}
}

func TestRuneLen(t *testing.T) {
	if got := RuneLen("sqrt(√)"); got != 7 {
		t.Errorf("RuneLen = %d, want 7", got)
	}
}
