// calcpad TUI - A keypad calculator for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/calcpad-tui/internal/cli"
	"github.com/jeranaias/calcpad-tui/internal/config"
	"github.com/jeranaias/calcpad-tui/internal/ui/components"
	"github.com/jeranaias/calcpad-tui/internal/ui/pad"
	"github.com/jeranaias/calcpad-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global program reference for async config reloads
var (
	programRef *tea.Program
	programMu  sync.Mutex
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	setupDebugLog()

	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdEval:
		os.Exit(cli.HandleEval(args))
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		runTUI(args)
	}
}

// setupDebugLog routes the standard logger to ~/.calcpad/debug.log when
// CALCPAD_DEBUG is set, and discards it otherwise. Bubble Tea owns the
// terminal in the alt screen, so stderr logging would corrupt the display.
func setupDebugLog() {
	if os.Getenv("CALCPAD_DEBUG") == "" {
		log.SetOutput(io.Discard)
		return
	}
	dir, err := config.ConfigDir()
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	if err := config.EnsureConfigDir(); err != nil {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
	log.Printf("calcpad %s starting (commit %s)", Version, GitCommit)
}

// runTUI starts the TUI interface.
func runTUI(args cli.Args) {
	cfg := config.Global()

	// CLI flags override config for this session
	if args.Precision >= 0 {
		cfg.Precision = args.Precision
	}

	// NO_COLOR and non-TTY output degrade to plain text before any style
	// is built.
	lipgloss.SetColorProfile(cli.GetColorProfile())

	theme := styles.NewTheme(cfg.UI.Theme)

	m := NewModel(theme, cfg)

	// Watch the config file so edits apply without restarting. The watcher
	// delivers reloads through the program reference, which is the only
	// safe way to inject messages from another goroutine.
	watcher, err := config.NewWatcher(500*time.Millisecond, func(newCfg *config.Config) {
		programMu.Lock()
		p := programRef
		programMu.Unlock()
		if p != nil {
			p.Send(ConfigReloadedMsg{Config: newCfg})
		}
	})
	if err == nil {
		if werr := watcher.Watch(); werr != nil {
			log.Printf("config watcher: %v", werr)
		}
		defer watcher.Close()
	} else {
		log.Printf("config watcher: %v", err)
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	programMu.Lock()
	programRef = p
	programMu.Unlock()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running calcpad: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// ConfigReloadedMsg is sent when the config file changes on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// Model is the main Bubble Tea model for the application.
type Model struct {
	// Theme and styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Calculator pad (keypad, display, history)
	pad *pad.Model

	// Help overlay
	help *components.HelpOverlay

	// Status bar
	status *components.StatusBar

	// Application configuration
	config *config.Config

	// Key bindings shared with the pad
	keys pad.KeyMap
}

// NewModel creates the application model.
func NewModel(theme *styles.Theme, cfg *config.Config) *Model {
	return &Model{
		theme:  theme,
		pad:    pad.New(cfg, theme),
		help:   components.NewHelpOverlay(theme),
		status: components.NewStatusBar(theme),
		config: cfg,
		keys:   pad.DefaultKeyMap(),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.help.SetSize(msg.Width, msg.Height)
		m.status.SetSize(msg.Width)
		// Reserve one line for the status bar
		m.pad.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case ConfigReloadedMsg:
		m.config = msg.Config
		m.pad.ApplyConfig(msg.Config)
		m.status.Precision = msg.Config.Precision
		log.Printf("config reloaded: precision=%d theme=%s", msg.Config.Precision, msg.Config.UI.Theme)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit always works, even under the help overlay
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// The help overlay swallows input while visible
	if key.Matches(msg, m.keys.Help) {
		m.help.Toggle()
		return m, nil
	}
	if m.help.Visible() {
		if msg.Type == tea.KeyEsc {
			m.help.Toggle()
		}
		return m, nil
	}

	newPad, cmd := m.pad.Update(msg)
	m.pad = newPad
	m.status.Mode = m.pad.Mode()
	return m, cmd
}

// View renders the current state.
func (m *Model) View() string {
	if m.help.Visible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.help.View())
	}

	m.status.Mode = m.pad.Mode()
	m.status.Precision = m.config.Precision

	content := m.pad.View()
	return lipgloss.JoinVertical(lipgloss.Left, content, m.status.View())
}
