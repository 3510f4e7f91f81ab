// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package eval wraps the external expression evaluation library behind a
// single Evaluate function, together with the rounding and formatting rules
// used everywhere a numeric result is shown.
//
// Evaluation failures are an expected part of normal operation (the user is
// usually mid-keystroke in an incomplete expression), so every error returned
// here is recoverable and must never be propagated as a crash.
package eval

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/expr-lang/expr"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrNotFinite is returned when an expression evaluates to NaN or infinity
// (e.g. division by zero). Callers treat it like any other evaluation error.
var ErrNotFinite = errors.New("result is not a finite number")

// env binds the function names the keypad can produce. The set mirrors the
// trig/sqrt keys on the pad; anything else in an expression is a syntax error.
// The expr runtime yields int for integer literals like "16", so every
// function goes through a coercing wrapper rather than math.* directly.
var env = map[string]any{
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"tan":  unary(math.Tan),
	"sqrt": unary(math.Sqrt),
}

// unary adapts a float64 math function to accept any numeric argument type
// the expr runtime can produce.
func unary(f func(float64) float64) func(any) (float64, error) {
	return func(v any) (float64, error) {
		x, err := toFloat(v)
		if err != nil {
			return 0, err
		}
		return f(x), nil
	}
}

// toFloat converts the numeric types the expr runtime produces to float64.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("argument is not a number (got %T)", v)
	}
}

// Evaluate evaluates a raw expression string and returns its numeric value.
// The expression is exactly what the user built on the keypad; there is no
// pre-validation beyond the keystroke rules, so syntactically incomplete
// input (trailing operator, unbalanced paren) returns an error.
func Evaluate(expression string) (float64, error) {
	out, err := expr.Eval(expression, env)
	if err != nil {
		return 0, err
	}

	var v float64
	switch n := out.(type) {
	case float64:
		v = n
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case float32:
		v = float64(n)
	default:
		return 0, fmt.Errorf("expression did not evaluate to a number (got %T)", out)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

// Round rounds v to the given number of decimal places using standard
// half-away-from-zero rounding.
func Round(v float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Format converts a value to its display string, dropping trailing zeros
// (52.0 renders as "52", 3.3330 as "3.333").
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatRounded rounds and formats in one step. This is the canonical
// result-to-string conversion: finalized results, history entries, and the
// live preview all go through it.
func FormatRounded(v float64, places int) string {
	return Format(Round(v, places))
}

// groupPrinter formats with digit grouping ("1,234,567"). The pad only
// produces plain digits, so English grouping is a display affordance, not a
// locale commitment.
var groupPrinter = message.NewPrinter(language.English)

// FormatGrouped formats a rounded value with thousands separators for the
// display surfaces that opt into digit grouping. The string form of the
// expression state itself always uses Format, since grouped text is not
// valid evaluator input.
func FormatGrouped(v float64, places int) string {
	return groupPrinter.Sprint(number.Decimal(Round(v, places)))
}

// GroupString re-renders an already-formatted result string with digit
// grouping. Non-numeric strings (including the "Error" display value) pass
// through unchanged.
func GroupString(s string) string {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return groupPrinter.Sprint(number.Decimal(v))
}
