package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/flavono123/schemabuilder/internal/schema"
	"github.com/flavono123/schemabuilder/internal/ui/event"
	"github.com/flavono123/schemabuilder/internal/ui/theme"
)

const (
	PICKER_WIDTH = 32
)

type Model struct {
	keys    keyMap
	help    help.Model
	visible bool
	style   lipgloss.Style
	items   items
	input   textinput.Model
	cursor  int

	target  string
	current schema.Kind
}

func NewModel() *Model {
	var kinds items
	for _, kind := range schema.Kinds() {
		kinds = append(kinds, item{Kind: kind})
	}

	ti := textinput.New()
	ti.Placeholder = "Search types..."
	ti.SetCursor(0)
	ti.Prompt = "🔍 "
	ti.Width = PICKER_WIDTH - 6
	return &Model{
		keys:    newKeyMap(),
		help:    help.New(),
		visible: false,
		style: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Mauve()),
		items:  kinds,
		input:  ti,
		cursor: 0,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case ShowMsg:
		m.setVisible(true)
		m.reset()
		m.target = msg.Target
		m.current = msg.Current
		m.cursor = m.items.indexOf(msg.Current)

		cmds = append(cmds, m.input.Focus())
	case HideMsg:
		m.setVisible(false)
		m.reset()
		m.input.Blur()
	case tea.KeyMsg:
		if !m.Visible() {
			break
		}
		filtered := m.items.filter(m.input.Value())

		switch {
		case key.Matches(msg, m.keys.up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.down):
			if m.cursor < len(filtered)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.pick):
			if len(filtered) == 0 {
				break
			}
			picked := event.PickKindMsg{Target: m.target, Kind: filtered[m.cursor].Kind}
			cmds = append(cmds, func() tea.Msg {
				return picked
			}, Hide)
		case key.Matches(msg, m.keys.hide):
			cmds = append(cmds, Hide)
		default:
			prevInputValue := m.input.Value()
			im, iCmd := m.input.Update(msg)
			m.input = im
			cmds = append(cmds, iCmd)
			if prevInputValue != m.input.Value() {
				m.cursor = 0
			}
		}
	default:
		if m.Visible() {
			im, iCmd := m.input.Update(msg)
			m.input = im
			cmds = append(cmds, iCmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	inputStyle := lipgloss.NewStyle().Margin(0, 0, 1, 0)
	title := lipgloss.NewStyle().Foreground(theme.Subtext0()).Render(m.title())

	return m.style.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			inputStyle.Render(m.input.View()),
			m.results(),
			"",
			m.help.View(m.keys),
		),
	)
}

func (m *Model) setVisible(visible bool) {
	m.visible = visible
}

func (m *Model) Visible() bool {
	return m.visible
}

func (m *Model) reset() {
	m.input.Reset()
	m.cursor = 0
	m.target = ""
	m.current = schema.KindUnset
}

func (m *Model) title() string {
	if m.target == "" {
		return "Type of the new field"
	}
	return "Change type"
}

func (m *Model) results() string {
	filtered := m.items.filter(m.input.Value())
	if len(filtered) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Overlay0()).Render("No results found.")
	}

	var rows []string
	for index, it := range filtered {
		rows = append(rows, it.render(PICKER_WIDTH, index == m.cursor, it.Kind == m.current))
	}

	return strings.Join(rows, "\n")
}

// subcomponents(not model)
type item struct {
	schema.Kind
}

type items []item

func (i item) render(width int, hovered bool, current bool) string {
	style := lipgloss.NewStyle().
		MaxWidth(width).
		Padding(0, 0, 0, 1)
	if hovered {
		style = style.Background(theme.Overlay0())
	}

	mark := " "
	if current {
		mark = lipgloss.NewStyle().Foreground(theme.Green()).Render("✓")
	}

	return style.Render(lipgloss.JoinHorizontal(
		lipgloss.Left,
		mark,
		" ",
		i.String(),
	))
}

func (m items) filter(inputValue string) items {
	if inputValue == "" {
		return m
	}

	var filtered items
	var itemStrings []string
	for _, it := range m {
		itemStrings = append(itemStrings, it.String())
	}
	matches := fuzzy.Find(inputValue, itemStrings)
	for _, match := range matches {
		filtered = append(filtered, m[match.Index])
	}
	return filtered
}

func (m items) indexOf(kind schema.Kind) int {
	for index, it := range m {
		if it.Kind == kind {
			return index
		}
	}
	return 0
}
