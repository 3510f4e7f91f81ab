// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/calcpad-tui/internal/calc"
	"github.com/jeranaias/calcpad-tui/internal/ui/styles"
)

func newTestKeypad() *Keypad {
	return NewKeypad(styles.NewTheme("dark"))
}

func TestDefaultLayoutCoversAllKeys(t *testing.T) {
	layout := DefaultLayout()

	want := []string{
		"AC", "C", "(", ")",
		"sin", "cos", "tan", "√",
		"7", "8", "9", "/",
		"4", "5", "6", "*",
		"1", "2", "3", "-",
		"0", ".", "%", "+",
		"=",
	}

	var got []string
	for _, row := range layout {
		for _, key := range row {
			got = append(got, key.Label)
		}
	}

	if len(got) != len(want) {
		t.Fatalf("layout has %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultLayoutKinds(t *testing.T) {
	// Every key's kind must agree with the classifier so cursor presses and
	// direct typing behave identically.
	for _, row := range DefaultLayout() {
		for _, key := range row {
			if key.Kind != calc.Classify(key.Label) {
				t.Errorf("key %q has kind %v, Classify says %v", key.Label, key.Kind, calc.Classify(key.Label))
			}
		}
	}
}

func TestKeypadCursorMovement(t *testing.T) {
	k := newTestKeypad()

	if k.Current().Label != "AC" {
		t.Fatalf("initial key = %q, want \"AC\"", k.Current().Label)
	}

	// Clamped at the top-left corner
	k.MoveUp()
	k.MoveLeft()
	if k.Current().Label != "AC" {
		t.Errorf("after clamped moves key = %q, want \"AC\"", k.Current().Label)
	}

	k.MoveDown()
	if k.Current().Label != "sin" {
		t.Errorf("after MoveDown key = %q, want \"sin\"", k.Current().Label)
	}

	k.MoveRight()
	k.MoveRight()
	k.MoveRight()
	if k.Current().Label != "√" {
		t.Errorf("key = %q, want \"√\"", k.Current().Label)
	}

	// Clamped at the right edge
	k.MoveRight()
	if k.Current().Label != "√" {
		t.Errorf("after clamped MoveRight key = %q, want \"√\"", k.Current().Label)
	}
}

func TestKeypadColumnClampOnEqualsRow(t *testing.T) {
	k := newTestKeypad()

	// Park the cursor in the last column, then drop to the single-key
	// equals row. The column must clamp rather than index out of range.
	k.MoveRight()
	k.MoveRight()
	k.MoveRight()
	for i := 0; i < 6; i++ {
		k.MoveDown()
	}

	if k.Current().Label != "=" {
		t.Errorf("bottom row key = %q, want \"=\"", k.Current().Label)
	}
}

func TestKeypadFindByRune(t *testing.T) {
	k := newTestKeypad()

	tests := []struct {
		r     rune
		label string
		found bool
	}{
		{'7', "7", true},
		{'+', "+", true},
		{'.', ".", true},
		{'(', "(", true},
		{'=', "=", true},
		{'√', "√", true},
		{'s', "", false},
		{'x', "", false},
	}

	for _, tc := range tests {
		key, ok := k.FindByRune(tc.r)
		if ok != tc.found {
			t.Errorf("FindByRune(%q) found = %v, want %v", tc.r, ok, tc.found)
			continue
		}
		if ok && key.Label != tc.label {
			t.Errorf("FindByRune(%q) = %q, want %q", tc.r, key.Label, tc.label)
		}
	}
}

func TestKeypadView(t *testing.T) {
	k := newTestKeypad()
	k.SetSize(48)

	view := k.View()
	if view == "" {
		t.Fatal("View() returned empty string")
	}

	for _, label := range []string{"AC", "sin", "7", "=", "√"} {
		if !strings.Contains(view, label) {
			t.Errorf("View() missing key label %q", label)
		}
	}
}
