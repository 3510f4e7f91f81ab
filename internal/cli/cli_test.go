// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"testing"
)

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, _ := parseFrom(nil)
	if cmd != CmdTUI {
		t.Errorf("parseFrom(nil) = %v, want CmdTUI", cmd)
	}
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"explicit tui", []string{"tui"}, CmdTUI},
		{"eval", []string{"eval", "50+2"}, CmdEval},
		{"eval alias", []string{"e", "50+2"}, CmdEval},
		{"version", []string{"version"}, CmdVersion},
		{"version flag", []string{"--version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"help flag", []string{"-h"}, CmdHelp},
		{"unknown command", []string{"frobnicate"}, CmdHelp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, _ := parseFrom(tc.argv)
			if cmd != tc.want {
				t.Errorf("parseFrom(%v) = %v, want %v", tc.argv, cmd, tc.want)
			}
		})
	}
}

func TestParseEvalExpression(t *testing.T) {
	cmd, args := parseFrom([]string{"eval", "50+2"})
	if cmd != CmdEval {
		t.Fatalf("command = %v, want CmdEval", cmd)
	}
	if args.Expression != "50+2" {
		t.Errorf("expression = %q, want \"50+2\"", args.Expression)
	}
}

func TestParseEvalJoinsArguments(t *testing.T) {
	// Unquoted expressions arrive as separate arguments.
	_, args := parseFrom([]string{"eval", "50", "+", "2"})
	if args.Expression != "50 + 2" {
		t.Errorf("expression = %q, want \"50 + 2\"", args.Expression)
	}
}

func TestParseExpressionShorthand(t *testing.T) {
	cmd, args := parseFrom([]string{"(2+3)*4"})
	if cmd != CmdEval {
		t.Fatalf("command = %v, want CmdEval", cmd)
	}
	if args.Expression != "(2+3)*4" {
		t.Errorf("expression = %q, want \"(2+3)*4\"", args.Expression)
	}
}

func TestParseGlobalFlags(t *testing.T) {
	cmd, args := parseFrom([]string{"-p", "5", "--quiet", "eval", "10/3"})
	if cmd != CmdEval {
		t.Fatalf("command = %v, want CmdEval", cmd)
	}
	if args.Precision != 5 {
		t.Errorf("precision = %d, want 5", args.Precision)
	}
	if !args.Quiet {
		t.Error("quiet flag not set")
	}
	if args.Expression != "10/3" {
		t.Errorf("expression = %q, want \"10/3\"", args.Expression)
	}
}

func TestParsePrecisionDefault(t *testing.T) {
	_, args := parseFrom([]string{"eval", "1+1"})
	if args.Precision != -1 {
		t.Errorf("precision = %d without flag, want -1 (use config)", args.Precision)
	}
}

func TestLooksLikeExpression(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"50+2", true},
		{"(2+3)*4", true},
		{".5*2", true},
		{"-3+4", true},
		{"eval", false},
		{"sqrt(16)", false}, // letters route through the eval subcommand
		{"", false},
	}

	for _, tc := range tests {
		if got := looksLikeExpression(tc.in); got != tc.want {
			t.Errorf("looksLikeExpression(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatResult(t *testing.T) {
	if got := formatResult("50+2", "52", 80); got != "50+2 = 52" {
		t.Errorf("formatResult = %q, want \"50+2 = 52\"", got)
	}
}

func TestFormatResultTruncatesToWidth(t *testing.T) {
	long := strings.Repeat("1+", 60) + "2"
	got := formatResult(long, "62", 40)

	if !strings.Contains(got, "…") {
		t.Errorf("formatResult(%q) not truncated: %q", long, got)
	}
	if !strings.HasSuffix(got, " = 62") {
		t.Errorf("formatResult lost the result: %q", got)
	}
	if w := len([]rune(got)); w > 40 {
		t.Errorf("formatResult line is %d cells, want <= 40", w)
	}
}

func TestFormatResultNarrowWidthKeepsExpression(t *testing.T) {
	// Below the usable minimum the expression passes through untouched.
	if got := formatResult("50+2", "52", 5); got != "50+2 = 52" {
		t.Errorf("formatResult = %q, want untruncated line", got)
	}
}

func TestGetTerminalWidthFallback(t *testing.T) {
	// Under `go test` stdout is a pipe, so detection fails and the
	// default width applies.
	if IsStdoutTTY() {
		t.Skip("stdout is a terminal")
	}
	if got := GetTerminalWidth(); got != DefaultTerminalWidth {
		t.Errorf("GetTerminalWidth() = %d, want %d", got, DefaultTerminalWidth)
	}
}
