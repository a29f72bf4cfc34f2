package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func step(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(keyMsg(k))
	}
	return m
}

func TestPickerStartsAllSelected(t *testing.T) {
	m := NewPickerModel("pick", []string{"a", "b", "c"}).(*pickerModel)
	if got := m.Selected(); len(got) != 3 {
		t.Fatalf("selected: %v", got)
	}
}

func TestPickerToggleAndAccept(t *testing.T) {
	m := NewPickerModel("pick", []string{"a", "b", "c"})
	// снять отметку со второго элемента и подтвердить
	m = step(t, m, "down", " ", "enter")

	pm := m.(*pickerModel)
	if !pm.accepted {
		t.Fatalf("enter must accept")
	}
	got := pm.Selected()
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("selected: %v", got)
	}
}

func TestPickerAllNone(t *testing.T) {
	m := NewPickerModel("pick", []string{"a", "b"})
	m = step(t, m, "n")
	if got := m.(*pickerModel).Selected(); len(got) != 0 {
		t.Fatalf("none: %v", got)
	}
	m = step(t, m, "a")
	if got := m.(*pickerModel).Selected(); len(got) != 2 {
		t.Fatalf("all: %v", got)
	}
}

func TestPickerCancel(t *testing.T) {
	m := step(t, NewPickerModel("pick", []string{"a"}), "q")
	pm := m.(*pickerModel)
	if pm.accepted || !pm.done {
		t.Fatalf("q must cancel: %+v", pm)
	}
}

func TestPickerCursorBounds(t *testing.T) {
	m := NewPickerModel("pick", []string{"a", "b"})
	m = step(t, m, "up", "up", "down", "down", "down")
	if got := m.(*pickerModel).cursor; got != 1 {
		t.Fatalf("cursor = %d", got)
	}
}

func TestPickerViewMarksSelection(t *testing.T) {
	m := NewPickerModel("insert stubs into Circle", []string{"double Area() const", "void Scale(double)"})
	m = step(t, m, "down", " ")
	view := m.(*pickerModel).View()
	if !strings.Contains(view, "insert stubs into Circle") {
		t.Fatalf("title missing:\n%s", view)
	}
	if !strings.Contains(view, "[x]") || !strings.Contains(view, "[ ]") {
		t.Fatalf("selection marks missing:\n%s", view)
	}
}
