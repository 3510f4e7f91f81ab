// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import (
	"github.com/jeranaias/calcpad-tui/internal/eval"
	"github.com/jeranaias/calcpad-tui/internal/history"
)

// =============================================================================
// DISPLAY MODE
// =============================================================================

// DisplayMode is the two-state machine driving what the display shows.
type DisplayMode int

const (
	// ModeEditing shows the raw expression plus the live partial value.
	ModeEditing DisplayMode = iota
	// ModeResult shows only the finalized value. Any key press returns to
	// ModeEditing, continuing from the shown value.
	ModeResult
)

// String returns the display string for the mode.
func (m DisplayMode) String() string {
	switch m {
	case ModeEditing:
		return "EDITING"
	case ModeResult:
		return "RESULT"
	default:
		return "UNKNOWN"
	}
}

// =============================================================================
// EXPRESSION STATE
// =============================================================================

// ErrorValue is the literal display value shown after a failed finalization.
const ErrorValue = "Error"

// EvalFunc is the external evaluator contract: a black-box function that
// may fail on invalid or incomplete input. Failures are always recoverable.
type EvalFunc func(expression string) (float64, error)

// State is the session-scoped expression state manager. It owns the raw
// expression string, the display mode, and the derived partial value, and
// appends to the history log on successful finalization.
//
// State is not safe for concurrent use; the UI event loop delivers one
// mutation at a time, so no locking is needed.
type State struct {
	expression string
	mode       DisplayMode
	partial    string

	evaluate  EvalFunc
	log       *history.Log
	precision int
}

// NewState creates an expression state manager wired to an evaluator and a
// history log. Initial state: ModeEditing with an empty expression.
func NewState(evaluate EvalFunc, log *history.Log, precision int) *State {
	return &State{
		evaluate:  evaluate,
		log:       log,
		precision: precision,
	}
}

// Expression returns the current raw expression string.
func (s *State) Expression() string {
	return s.expression
}

// Mode returns the current display mode.
func (s *State) Mode() DisplayMode {
	return s.mode
}

// Partial returns the live preview value, or "" when the expression is
// empty, incomplete, or a result is being shown.
func (s *State) Partial() string {
	return s.partial
}

// SetPrecision updates the number of decimal places used when rounding
// results. Takes effect immediately on the preview.
func (s *State) SetPrecision(places int) {
	s.precision = places
	s.refreshPartial()
}

// Apply mutates the expression according to the key's class. Invalid
// keystrokes (leading operator, doubled operator, doubled decimal point)
// are ignored silently rather than surfaced as errors.
//
// Every call first returns the state to ModeEditing, so pressing a key
// while a result is shown continues editing from the displayed value. An
// operator pressed right after a result is validated against that
// post-reset expression, which accepts it as a continuation.
func (s *State) Apply(label string) {
	s.mode = ModeEditing

	switch Classify(label) {
	case KindAllClear:
		s.expression = ""

	case KindDelete:
		if s.expression != "" {
			r := []rune(s.expression)
			s.expression = string(r[:len(r)-1])
		}

	case KindEquals:
		if s.expression != "" {
			s.finalize()
		}

	case KindFunction:
		s.expression += label + "("

	case KindSqrt:
		s.expression += "sqrt("

	case KindOperator:
		if s.expression == "" {
			return
		}
		r := []rune(s.expression)
		if isOperator(r[len(r)-1]) {
			return
		}
		s.expression += label

	case KindDecimal:
		r := []rune(s.expression)
		if len(r) > 0 && r[len(r)-1] == '.' {
			return
		}
		s.expression += label

	default: // KindLiteral
		s.expression += label
	}

	s.refreshPartial()
}

// Restore copies a history record's expression back into the state and
// returns to editing. The record itself is untouched.
func (s *State) Restore(rec history.Record) {
	s.expression = rec.Expression
	s.mode = ModeEditing
	s.refreshPartial()
}

// finalize runs the full evaluation. On success the result is rounded,
// committed to history, and shown as the new expression in ModeResult. On
// failure the display value becomes ErrorValue, history is untouched, and
// the mode stays ModeEditing.
func (s *State) finalize() {
	v, err := s.evaluate(s.expression)
	if err != nil {
		s.expression = ErrorValue
		return
	}

	result := eval.FormatRounded(v, s.precision)
	if s.log != nil {
		s.log.Append(s.expression, result)
	}
	s.expression = result
	s.mode = ModeResult
}

// refreshPartial recomputes the derived preview value. Evaluation errors
// here are the normal case while typing and are suppressed entirely.
func (s *State) refreshPartial() {
	if s.mode == ModeResult || s.expression == "" {
		s.partial = ""
		return
	}
	v, err := s.evaluate(s.expression)
	if err != nil {
		s.partial = ""
		return
	}
	s.partial = eval.FormatRounded(v, s.precision)
}
