// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for calcpad.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdEval
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Precision int  // -1 means "use config"
	Quiet     bool // result only, no decoration

	// Command-specific
	Expression string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `calcpad - terminal calculator

Calcpad is a keypad calculator for the terminal, with a live preview of
the result while you type and a selectable calculation history.

Usage:
  calcpad                    Start the TUI (default)
  calcpad eval "expression"  Evaluate one expression and exit
  calcpad version            Show version information
  calcpad help               Show this help

Eval:
  calcpad eval "50+2"            Prints 52
  calcpad eval "10/3" -p 5       Prints 3.33333
  echo "sqrt(16)" | calcpad eval Reads the expression from stdin

Flags:
  -p, --precision N    Decimal places for results (default from config)
  -q, --quiet          Print only the result

Environment:
  CALCPAD_THEME          dark, light, or auto
  CALCPAD_PRECISION      Default decimal places
  CALCPAD_HISTORY_LIMIT  Max retained history records (0 = unbounded)

Configuration: ~/.calcpad/config.toml

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("calcpad version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return parseFrom(os.Args[1:])
}

// parseFrom is the testable core of Parse.
func parseFrom(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	// No remaining args defaults to the TUI
	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	args.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, args

	case "eval", "e":
		if len(remaining) > 0 {
			args.Expression = strings.Join(remaining, " ")
		}
		return CmdEval, args

	case "version", "-v", "--version":
		return CmdVersion, args

	case "help", "-h", "--help":
		return CmdHelp, args

	default:
		// An expression-looking first argument is treated as shorthand
		// for eval, so `calcpad "50+2"` works.
		if looksLikeExpression(cmd) {
			args.Expression = strings.Join(append([]string{cmd}, remaining...), " ")
			return CmdEval, args
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, args
	}
}

// parseGlobalFlags extracts flags that apply to every command.
func parseGlobalFlags(argv []string) ([]string, Args) {
	args := Args{Precision: -1}
	var remaining []string

	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "-q", "--quiet":
			args.Quiet = true

		case "-p", "--precision":
			if i+1 < len(argv) {
				if v, err := strconv.Atoi(argv[i+1]); err == nil {
					args.Precision = v
				}
				i++
			}

		default:
			remaining = append(remaining, argv[i])
		}
	}

	return remaining, args
}

// looksLikeExpression reports whether an argument reads as a calculator
// expression rather than a subcommand.
func looksLikeExpression(s string) bool {
	if s == "" {
		return false
	}
	r := rune(s[0])
	return (r >= '0' && r <= '9') || r == '(' || r == '.' || r == '-'
}
