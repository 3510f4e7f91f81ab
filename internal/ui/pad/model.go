// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pad provides the calculator view component for the TUI.
package pad

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/calcpad-tui/internal/calc"
	"github.com/jeranaias/calcpad-tui/internal/config"
	"github.com/jeranaias/calcpad-tui/internal/eval"
	"github.com/jeranaias/calcpad-tui/internal/history"
	"github.com/jeranaias/calcpad-tui/internal/ui/components"
	"github.com/jeranaias/calcpad-tui/internal/ui/styles"
)

// =============================================================================
// CALCULATOR MODEL
// =============================================================================

// focusedPanel identifies which panel receives navigation keys.
type focusedPanel int

const (
	focusKeypad focusedPanel = iota
	focusHistory
)

// Model is the calculator view: display, keypad, and history panel wired to
// the expression state.
type Model struct {
	state *calc.State
	log   *history.Log
	keys  KeyMap
	theme *styles.Theme

	display *components.Display
	keypad  *components.Keypad
	history *components.HistoryPanel

	focus       focusedPanel
	showHistory bool
	width       int
	height      int

	// ID of the newest record last pushed into the panel, so cursor
	// position survives keystrokes that don't append history. The length
	// alone is not enough: a full log at its retention limit keeps a
	// constant length while appending.
	syncedID string
}

// New creates a calculator model from the loaded configuration.
func New(cfg *config.Config, theme *styles.Theme) *Model {
	log := history.NewLog(cfg.UI.HistoryLimit)
	state := calc.NewState(eval.Evaluate, log, cfg.Precision)

	display := components.NewDisplay(theme)
	display.SetShowPreview(cfg.UI.ShowPreview)
	display.SetGroupDigits(cfg.UI.GroupDigits)

	m := &Model{
		state:       state,
		log:         log,
		keys:        DefaultKeyMap(),
		theme:       theme,
		display:     display,
		keypad:      components.NewKeypad(theme),
		history:     components.NewHistoryPanel(theme),
		showHistory: true,
	}
	m.sync()
	return m
}

// SetSize updates component dimensions for the available area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	layout := m.theme.GetLayoutMode()
	if layout == styles.LayoutNarrow {
		m.display.SetSize(width)
		m.keypad.SetSize(width)
	} else {
		main := width * 3 / 5
		m.display.SetSize(main)
		m.keypad.SetSize(main)
		m.history.SetSize(width-main, height-5)
	}
}

// Mode exposes the display mode for the status bar.
func (m *Model) Mode() calc.DisplayMode {
	return m.state.Mode()
}

// ApplyConfig applies a freshly loaded configuration without resetting the
// session: precision and display options change in place, and the history
// retention bound is re-applied to the existing log.
func (m *Model) ApplyConfig(cfg *config.Config) {
	m.state.SetPrecision(cfg.Precision)
	m.log.SetLimit(cfg.UI.HistoryLimit)
	m.display.SetShowPreview(cfg.UI.ShowPreview)
	m.display.SetGroupDigits(cfg.UI.GroupDigits)
	m.sync()
}

// Update handles input for the calculator area.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Panel):
		m.toggleFocus()
		return m, nil

	case key.Matches(keyMsg, m.keys.History):
		m.showHistory = !m.showHistory
		if !m.showHistory && m.focus == focusHistory {
			m.toggleFocus()
		}
		return m, nil
	}

	if m.focus == focusHistory {
		m.updateHistory(keyMsg)
	} else {
		m.updateKeypad(keyMsg)
	}
	return m, nil
}

// toggleFocus moves focus between the keypad and the history panel.
func (m *Model) toggleFocus() {
	if m.focus == focusKeypad && m.showHistory {
		m.focus = focusHistory
		m.keypad.Blur()
		m.history.Focus()
	} else {
		m.focus = focusKeypad
		m.history.Blur()
		m.keypad.Focus()
	}
	m.sync()
}

// updateKeypad handles input while the keypad is active.
func (m *Model) updateKeypad(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.keypad.MoveUp()

	case key.Matches(msg, m.keys.Down):
		m.keypad.MoveDown()

	case key.Matches(msg, m.keys.Left):
		m.keypad.MoveLeft()

	case key.Matches(msg, m.keys.Right):
		m.keypad.MoveRight()

	case key.Matches(msg, m.keys.Press):
		m.state.Apply(m.keypad.Current().Label)

	case key.Matches(msg, m.keys.Equals):
		m.state.Apply(calc.KeyEquals)

	case key.Matches(msg, m.keys.Delete):
		m.state.Apply(calc.KeyDelete)

	case key.Matches(msg, m.keys.Clear):
		m.state.Apply(calc.KeyAllClear)

	default:
		// Direct typing: single characters that exist on the keypad are
		// applied as if their key was pressed.
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			if k, ok := m.keypad.FindByRune(msg.Runes[0]); ok {
				m.state.Apply(k.Label)
			}
		}
	}

	m.sync()
}

// updateHistory handles input while the history panel is active.
func (m *Model) updateHistory(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.history.MoveUp()

	case key.Matches(msg, m.keys.Down):
		m.history.MoveDown()

	case key.Matches(msg, m.keys.Press):
		if rec, ok := m.history.Selected(); ok {
			m.state.Restore(rec)
			m.toggleFocus()
		}
	}

	m.sync()
}

// sync pushes the expression state into the view components.
func (m *Model) sync() {
	m.display.SetContent(m.state.Expression(), m.state.Partial(), m.state.Mode())

	// The newest ID catches appends at a constant length (log at its
	// retention limit); the length check catches trims that keep the
	// newest record (limit lowered at runtime).
	newest := ""
	if rec, ok := m.log.Last(); ok {
		newest = rec.ID
	}
	if newest != m.syncedID || m.log.Len() != m.history.Len() {
		m.history.SetRecords(m.log.Records())
		m.syncedID = newest
	}
}

// Expression exposes the raw expression, used by tests and the status bar.
func (m *Model) Expression() string {
	return m.state.Expression()
}
