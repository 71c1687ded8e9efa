package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/schemabuilder/internal/schema"
	"github.com/flavono123/schemabuilder/internal/ui/event"
	"github.com/flavono123/schemabuilder/internal/ui/theme"
)

const (
	BUILDER_CURSOR_TOP = 0

	BUILDER_WIDTH_RATIO          = 0.5
	BUILDER_HEIGHT_BOTTOM_MARGIN = 5 // topbar 1 + border top, down 2 + help 1, status 1
	BUILDER_BORDER_WIDTH         = 2
)

type Model struct {
	focus     bool
	forest    schema.Forest
	collapsed map[string]bool // fold state by field id, never stored in the forest

	vp     viewport.Model
	style  lipgloss.Style
	cursor int
	lines  []*Line

	editing  bool
	editID   string
	original string
	sent     bool   // a rename update was sent in this edit
	seq      uint64 // last rename update sequence
	input    textinput.Model

	keys     keyMap
	editKeys editKeyMap
	help     help.Model
}

func NewModel() *Model {
	style := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(theme.Blue())

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "name"
	input.CharLimit = 64
	input.Width = 24
	input.TextStyle = lipgloss.NewStyle().Foreground(theme.Green())
	input.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Blue())

	m := &Model{
		focus:     true,
		forest:    schema.Forest{},
		collapsed: map[string]bool{},
		vp:        viewport.New(0, 0),
		style:     style,
		cursor:    BUILDER_CURSOR_TOP,
		input:     input,
		keys:      newKeyMap(),
		editKeys:  newEditKeyMap(),
		help:      help.New(),
	}
	m.lines = m.buildLines()

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var retCmd tea.Cmd

	switch msg := msg.(type) {
	case SetForestMsg:
		m.setForest(msg.Forest)
		if msg.Select != "" {
			m.Select(msg.Select)
		}
	case tea.WindowSizeMsg:
		m.setViewSize(msg)
	case tea.KeyMsg:
		if !m.focus {
			break
		}
		if m.editing {
			return m, m.updateEditing(msg)
		}

		switch {
		case key.Matches(msg, m.keys.up):
			if m.cursor > BUILDER_CURSOR_TOP {
				m.cursor--
				m.ensureVisible()
			}
		case key.Matches(msg, m.keys.down):
			if m.cursor < len(m.lines)-1 {
				m.cursor++
				m.ensureVisible()
			}
		case key.Matches(msg, m.keys.fold):
			if field, ok := m.Current(); ok && len(field.Children) > 0 {
				m.toggleFold(field.ID)
			}
		case key.Matches(msg, m.keys.draft):
			retCmd = func() tea.Msg {
				return event.OpenDraftMsg{}
			}
		case key.Matches(msg, m.keys.child):
			field, ok := m.Current()
			if !ok {
				break
			}
			if !field.IsNested() {
				retCmd = event.SetStatus(
					fmt.Sprintf("%s is not Nested", displayName(field.Name)),
					event.Warn,
				)
				break
			}
			delete(m.collapsed, field.ID)
			retCmd = func() tea.Msg {
				return event.AddChildMsg{ParentID: field.ID}
			}
		case key.Matches(msg, m.keys.rename):
			if field, ok := m.Current(); ok {
				retCmd = m.startEditing(field)
			}
		case key.Matches(msg, m.keys.kind):
			if field, ok := m.Current(); ok {
				retCmd = func() tea.Msg {
					return event.OpenPickerMsg{Target: field.ID, Current: field.Kind}
				}
			}
		case key.Matches(msg, m.keys.required):
			if field, ok := m.Current(); ok {
				changes := schema.Changes{}.WithRequired(!field.Required)
				retCmd = func() tea.Msg {
					return event.UpdateFieldMsg{ID: field.ID, Changes: changes}
				}
			}
		case key.Matches(msg, m.keys.remove):
			if field, ok := m.Current(); ok {
				delete(m.collapsed, field.ID)
				retCmd = func() tea.Msg {
					return event.DeleteFieldMsg{ID: field.ID}
				}
			}
		}
	default:
		if m.editing {
			m.input, retCmd = m.input.Update(msg)
		}
	}

	return m, retCmd
}

func (m *Model) View() string {
	m.vp.SetContent(m.render())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTopBar(),
		m.style.Render(m.vp.View()),
	)
}

func (m *Model) HelpView() string {
	if m.editing {
		return m.help.View(m.editKeys)
	}
	return m.help.View(m.keys)
}

// Current returns the field under the cursor.
func (m *Model) Current() (schema.Field, bool) {
	if m.cursor < 0 || m.cursor >= len(m.lines) {
		return schema.Field{}, false
	}
	return m.lines[m.cursor].field, true
}

// Select moves the cursor onto id, unfolding its ancestors.
func (m *Model) Select(id string) {
	for _, ancestor := range ancestors(m.forest, id) {
		delete(m.collapsed, ancestor)
	}
	m.lines = m.buildLines()
	for _, line := range m.lines {
		if line.field.ID == id {
			m.cursor = line.index
			m.ensureVisible()
			return
		}
	}
}

func (m *Model) Editing() bool {
	return m.editing
}

func (m *Model) Focus() tea.Cmd {
	m.focus = true
	m.style = m.style.Border(lipgloss.ThickBorder()).BorderForeground(theme.Blue())
	// nothing to send
	return nil
}

func (m *Model) Blur() {
	m.focus = false
	m.style = m.style.Border(lipgloss.NormalBorder()).BorderForeground(theme.Overlay0())
}

func (m *Model) setForest(forest schema.Forest) {
	curID := ""
	if field, ok := m.Current(); ok {
		curID = field.ID
	}

	m.forest = forest
	m.lines = m.buildLines()

	for _, line := range m.lines {
		if line.field.ID == curID {
			m.cursor = line.index
			m.ensureVisible()
			return
		}
	}
	// the field under the cursor is gone; stay on the same row
	m.cursor = max(BUILDER_CURSOR_TOP, min(m.cursor, len(m.lines)-1))
	m.ensureVisible()
}

func (m *Model) buildLines() []*Line {
	lines := []*Line{}
	m.forest.Walk(func(field schema.Field, depth int) bool {
		expanded := !m.collapsed[field.ID]
		lines = append(lines, newLine(field, depth, expanded, len(lines)))
		return expanded
	})

	return lines
}

func (m *Model) toggleFold(id string) {
	if m.collapsed[id] {
		delete(m.collapsed, id)
	} else {
		m.collapsed[id] = true
	}
	m.lines = m.buildLines()
}

func (m *Model) startEditing(field schema.Field) tea.Cmd {
	m.editing = true
	m.editID = field.ID
	m.original = field.Name
	m.input.SetValue(field.Name)
	m.input.CursorEnd()

	return m.input.Focus()
}

func (m *Model) stopEditing() {
	m.editing = false
	m.editID = ""
	m.original = ""
	m.sent = false
	m.input.Blur()
	m.input.Reset()
}

// updateEditing forwards keys to the name input and reports every change
// as an update of the edited field.
func (m *Model) updateEditing(msg tea.KeyMsg) tea.Cmd {
	id := m.editID

	switch {
	case key.Matches(msg, m.editKeys.commit):
		m.stopEditing()
		return nil
	case key.Matches(msg, m.editKeys.revert):
		original := m.original
		sent := m.sent
		m.stopEditing()
		if !sent {
			return nil
		}
		return m.rename(id, original)
	}

	prev := m.input.Value()
	im, iCmd := m.input.Update(msg)
	m.input = im
	if m.input.Value() == prev {
		return iCmd
	}

	m.sent = true
	return tea.Batch(iCmd, m.rename(id, m.input.Value()))
}

// rename stamps a name update with the next sequence number. Commands run
// concurrently, so the root uses it to drop updates that arrive late.
func (m *Model) rename(id, name string) tea.Cmd {
	m.seq++
	update := event.UpdateFieldMsg{ID: id, Changes: schema.Changes{}.WithName(name), Seq: m.seq}
	return func() tea.Msg {
		return update
	}
}

func (m *Model) setViewSize(msg tea.WindowSizeMsg) {
	m.vp.Width = int(float64(msg.Width)*BUILDER_WIDTH_RATIO) - BUILDER_BORDER_WIDTH
	m.vp.Height = msg.Height - BUILDER_HEIGHT_BOTTOM_MARGIN
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	if m.vp.Height <= 0 {
		return
	}
	if m.cursor < m.vp.YOffset {
		m.vp.YOffset = m.cursor
	} else if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.YOffset = m.cursor - m.vp.Height + 1
	}
}

func (m *Model) render() string {
	if len(m.lines) == 0 {
		return lipgloss.NewStyle().
			Foreground(theme.Overlay1()).
			Render("No fields yet. Press a to add one.")
	}

	var result strings.Builder
	leftPadding := len(strconv.Itoa(len(m.lines)))

	for _, line := range m.lines {
		name := line.name()
		if m.editing && line.field.ID == m.editID {
			name = m.input.View()
		}
		result.WriteString(line.render(leftPadding, m.cursor == line.index, m.vp.Width, !m.focus, name) + "\n")
	}

	return strings.TrimSuffix(result.String(), "\n")
}

func (m *Model) renderTopBar() string {
	title := lipgloss.NewStyle().Margin(0, 1).Bold(true).Render("Schema Definition")
	count := lipgloss.NewStyle().Foreground(theme.Subtext0()).Render(
		fmt.Sprintf("%d fields", m.forest.Len()),
	)
	return lipgloss.JoinHorizontal(lipgloss.Left,
		title,
		count,
	)
}

// ancestors returns the ids of the Nested fields enclosing id, outermost first.
func ancestors(forest schema.Forest, id string) []string {
	for _, field := range forest {
		if field.ID == id {
			return []string{}
		}
		if path := ancestors(field.Children, id); path != nil {
			return append([]string{field.ID}, path...)
		}
	}
	return nil
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return unnamed
	}
	return name
}
