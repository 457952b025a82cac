package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/porcus/pkg/piglatin"
)

func typeRunes(m previewModel, s string) previewModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(previewModel)
}

func TestPreviewModelTyping(t *testing.T) {
	m := newPreviewModel(piglatin.NewDefault())
	m = typeRunes(m, "pig")

	view := m.View()
	if !strings.Contains(view, "pig") {
		t.Errorf("view should show the typed line, got %q", view)
	}
	if !strings.Contains(view, "igpay") {
		t.Errorf("view should show the live transform, got %q", view)
	}
}

func TestPreviewModelSpaceAndBackspace(t *testing.T) {
	m := newPreviewModel(piglatin.NewDefault())
	m = typeRunes(m, "pig")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(previewModel)
	m = typeRunes(m, "latinx")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(previewModel)

	if got := string(m.input); got != "pig latin" {
		t.Errorf("input = %q, want %q", got, "pig latin")
	}
	if view := m.View(); !strings.Contains(view, "igpay atinlay") {
		t.Errorf("view = %q, want transform of %q", view, "pig latin")
	}
}

func TestPreviewModelEnterClears(t *testing.T) {
	m := newPreviewModel(piglatin.NewDefault())
	m = typeRunes(m, "pig")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(previewModel)

	if len(m.input) != 0 {
		t.Errorf("enter should clear the input, got %q", string(m.input))
	}
	if view := m.View(); !strings.Contains(view, "…") {
		t.Errorf("empty view should show placeholders, got %q", view)
	}
}

func TestPreviewModelQuitKeys(t *testing.T) {
	m := newPreviewModel(piglatin.NewDefault())
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Errorf("key %v should quit", key)
		}
	}
}

func TestPreviewModelIgnoresOtherMessages(t *testing.T) {
	m := newPreviewModel(piglatin.NewDefault())
	m = typeRunes(m, "oink")

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd != nil {
		t.Error("window size should not produce a command")
	}
	if got := string(next.(previewModel).input); got != "oink" {
		t.Errorf("input changed to %q", got)
	}
}
