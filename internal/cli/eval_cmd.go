// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// eval_cmd.go - One-shot expression evaluation for scripting.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/calcpad-tui/internal/config"
	"github.com/jeranaias/calcpad-tui/internal/eval"
	"github.com/jeranaias/calcpad-tui/internal/util"
)

// HandleEval evaluates a single expression and prints the result. The
// expression comes from the command line, or from stdin when piped in.
// Returns a process exit code.
func HandleEval(args Args) int {
	expression := strings.TrimSpace(args.Expression)

	// Read from stdin when no expression was given and input is piped.
	if expression == "" && !IsTTY() {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			expression = strings.TrimSpace(scanner.Text())
		}
	}

	if expression == "" {
		fmt.Fprintln(os.Stderr, "Usage: calcpad eval \"expression\"")
		return 2
	}

	precision := args.Precision
	if precision < 0 {
		precision = config.Global().Precision
	}

	v, err := eval.Evaluate(expression)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	result := eval.FormatRounded(v, precision)
	switch {
	case args.Quiet:
		fmt.Println(result)
	case IsStdoutTTY():
		fmt.Println(formatResult(expression, result, GetTerminalWidth()))
	default:
		// Piped output is never truncated.
		fmt.Printf("%s = %s\n", expression, result)
	}
	return 0
}

// formatResult renders the "expression = result" line, truncating the echoed
// expression so the line fits on a single terminal row.
func formatResult(expression, result string, width int) string {
	avail := width - len(result) - 3
	if avail >= 4 && util.StringWidth(expression) > avail {
		expression = util.TruncateRight(expression, avail)
	}
	return fmt.Sprintf("%s = %s", expression, result)
}
