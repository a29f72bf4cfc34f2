// Package ui contains the interactive terminal front-end: a picker that
// lets the user choose which generated stubs to insert before the patch
// is applied.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PickItem — одна строка списка: подпись и отметка выбора.
type PickItem struct {
	Label    string
	Selected bool
}

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	All    key.Binding
	None   key.Binding
	Accept key.Binding
	Cancel key.Binding
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.All, k.None, k.Accept, k.Cancel}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Toggle}, {k.All, k.None, k.Accept, k.Cancel}}
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		All:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
		None:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "none")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

type pickerModel struct {
	title    string
	items    []PickItem
	cursor   int
	keys     pickerKeyMap
	help     help.Model
	width    int
	accepted bool
	done     bool
}

// NewPickerModel returns a Bubble Tea model listing stubs to insert.
// Every item starts selected: the common case is "insert everything".
func NewPickerModel(title string, labels []string) tea.Model {
	items := make([]PickItem, len(labels))
	for i, l := range labels {
		items[i] = PickItem{Label: l, Selected: true}
	}
	return &pickerModel{
		title: title,
		items: items,
		keys:  defaultPickerKeys(),
		help:  help.New(),
		width: 80,
	}
}

func (m *pickerModel) Init() tea.Cmd { return nil }

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.help.Width = msg.Width
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if len(m.items) > 0 {
				m.items[m.cursor].Selected = !m.items[m.cursor].Selected
			}
		case key.Matches(msg, m.keys.All):
			for i := range m.items {
				m.items[i].Selected = true
			}
		case key.Matches(msg, m.keys.None):
			for i := range m.items {
				m.items[i].Selected = false
			}
		case key.Matches(msg, m.keys.Accept):
			m.accepted = true
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *pickerModel) View() string {
	if m.done {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	labelWidth := m.width - 8
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := dimStyle.Render("[ ]")
		label := dimStyle.Render(truncate(item.Label, labelWidth))
		if item.Selected {
			mark = selectedStyle.Render("[x]")
			label = truncate(item.Label, labelWidth)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, mark, label)
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Selected returns indices of chosen items, in list order.
func (m *pickerModel) Selected() []int {
	var out []int
	for i, item := range m.items {
		if item.Selected {
			out = append(out, i)
		}
	}
	return out
}

// RunPicker запускает интерактивный выбор и возвращает индексы
// выбранных элементов. accepted=false, если пользователь отменил.
func RunPicker(title string, labels []string) (chosen []int, accepted bool, err error) {
	model := NewPickerModel(title, labels)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, false, err
	}
	pm, ok := final.(*pickerModel)
	if !ok {
		return nil, false, fmt.Errorf("ui: unexpected model type %T", final)
	}
	if !pm.accepted {
		return nil, false, nil
	}
	return pm.Selected(), true, nil
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
