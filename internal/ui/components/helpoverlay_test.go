// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/calcpad-tui/internal/ui/styles"
)

func TestHelpOverlayToggle(t *testing.T) {
	h := NewHelpOverlay(styles.NewTheme("dark"))

	if h.Visible() {
		t.Error("overlay should start hidden")
	}
	h.Toggle()
	if !h.Visible() {
		t.Error("Toggle() should show the overlay")
	}
	h.Toggle()
	if h.Visible() {
		t.Error("Toggle() should hide the overlay again")
	}
}

func TestHelpOverlayViewHasTitle(t *testing.T) {
	h := NewHelpOverlay(styles.NewTheme("dark"))
	h.SetSize(80, 24)

	if !strings.Contains(h.View(), "calcpad help") {
		t.Error("View() missing the title line")
	}
}

func TestHelpOverlayViewListsKeys(t *testing.T) {
	h := NewHelpOverlay(styles.NewTheme("dark"))
	h.SetSize(80, 24)

	view := h.View()
	for _, want := range []string{"Tab", "Esc", "History"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
