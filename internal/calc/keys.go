// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package calc holds the expression-state machine at the core of calcpad:
// keystroke validation, finalization, and the live partial-evaluation value.
package calc

import "strings"

// =============================================================================
// KEY CLASSIFICATION
// =============================================================================

// Well-known key labels. Labels not listed here (digits, parens) are matched
// by class in Classify.
const (
	KeyAllClear = "AC"
	KeyDelete   = "C"
	KeyEquals   = "="
	KeySqrt     = "√"
	KeyDecimal  = "."
)

// KeyKind classifies a key label by the mutation rule it triggers.
type KeyKind int

const (
	// KindLiteral keys append their label verbatim with no validation
	// (digits and parentheses).
	KindLiteral KeyKind = iota
	// KindOperator keys are binary operators subject to adjacency rules.
	KindOperator
	// KindDecimal is the decimal point, rejected when one was just typed.
	KindDecimal
	// KindFunction keys append "<name>(" (sin, cos, tan).
	KindFunction
	// KindSqrt appends "sqrt(".
	KindSqrt
	// KindAllClear empties the expression.
	KindAllClear
	// KindDelete removes the last character.
	KindDelete
	// KindEquals triggers finalization.
	KindEquals
)

// operators are the binary operator labels, also used for adjacency checks.
const operators = "%*/-+"

// functions are the labels that expand to a function call opener.
var functions = map[string]bool{
	"sin": true,
	"cos": true,
	"tan": true,
}

// Classify maps a key label to its mutation rule.
func Classify(label string) KeyKind {
	switch {
	case label == KeyAllClear:
		return KindAllClear
	case label == KeyDelete:
		return KindDelete
	case label == KeyEquals:
		return KindEquals
	case label == KeySqrt:
		return KindSqrt
	case label == KeyDecimal:
		return KindDecimal
	case functions[label]:
		return KindFunction
	case len(label) == 1 && strings.Contains(operators, label):
		return KindOperator
	default:
		return KindLiteral
	}
}

// isOperator reports whether r is a binary operator character.
func isOperator(r rune) bool {
	return strings.ContainsRune(operators, r)
}
