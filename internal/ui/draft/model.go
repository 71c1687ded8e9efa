package draft

import (
	"errors"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/flavono123/schemabuilder/internal/schema"
	"github.com/flavono123/schemabuilder/internal/ui/event"
	"github.com/flavono123/schemabuilder/internal/ui/theme"
)

const (
	DRAFT_WIDTH = 40
)

type Model struct {
	keys    keyMap
	help    help.Model
	visible bool
	style   lipgloss.Style
	input   textinput.Model

	kind     schema.Kind
	required bool
}

func NewModel() *Model {
	ti := textinput.New()
	ti.Placeholder = "Field name"
	ti.Prompt = "name: "
	ti.CharLimit = 64
	ti.Width = DRAFT_WIDTH - 10
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Subtext1())
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Green())

	return &Model{
		keys: newKeyMap(),
		help: help.New(),
		style: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Teal()).
			Padding(0, 1),
		input: ti,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case ShowMsg:
		m.reset()
		m.visible = true
		cmds = append(cmds, m.input.Focus())
	case HideMsg:
		m.visible = false
		m.reset()
	case event.PickKindMsg:
		// an empty target is the draft
		if m.visible && msg.Target == "" {
			m.kind = msg.Kind
		}
	case tea.KeyMsg:
		if !m.visible {
			break
		}

		switch {
		case key.Matches(msg, m.keys.add):
			d := m.Draft()
			if err := d.Validate(); err != nil {
				cmds = append(cmds, event.SetStatus("cannot add field: "+errorText(err), event.Warn))
				break
			}
			cmds = append(cmds, func() tea.Msg {
				return event.AddFieldMsg{Name: d.Name, Kind: d.Kind, Required: d.Required}
			}, Hide)
		case key.Matches(msg, m.keys.cancel):
			cmds = append(cmds, Hide)
		case key.Matches(msg, m.keys.kind):
			current := m.kind
			cmds = append(cmds, func() tea.Msg {
				return event.OpenPickerMsg{Target: "", Current: current}
			})
		case key.Matches(msg, m.keys.required):
			m.required = !m.required
		default:
			im, iCmd := m.input.Update(msg)
			m.input = im
			cmds = append(cmds, iCmd)
		}
	default:
		if m.visible {
			im, iCmd := m.input.Update(msg)
			m.input = im
			cmds = append(cmds, iCmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("New field")
	label := lipgloss.NewStyle().Foreground(theme.Subtext1())

	kind := lipgloss.NewStyle().Foreground(theme.Overlay0()).Render("unset")
	if m.kind.IsSet() {
		kind = lipgloss.NewStyle().Foreground(theme.Peach()).Render(m.kind.String())
	}

	required := "[ ]"
	if m.required {
		required = lipgloss.NewStyle().Foreground(theme.Red()).Render("[x]")
	}

	return m.style.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			m.input.View(),
			label.Render("type: ")+kind,
			label.Render("required: ")+required,
			"",
			m.renderProblems(),
			m.help.View(m.keys),
		),
	)
}

func (m *Model) Visible() bool {
	return m.visible
}

// Draft returns the current editor contents.
func (m *Model) Draft() Draft {
	return Draft{
		Name:     m.input.Value(),
		Kind:     m.kind,
		Required: m.required,
	}
}

func (m *Model) reset() {
	m.input.Reset()
	m.input.Blur()
	m.kind = schema.KindUnset
	m.required = false
}

func (m *Model) renderProblems() string {
	err := m.Draft().Validate()
	if err == nil {
		return lipgloss.NewStyle().Foreground(theme.Green()).Render("ready to add")
	}
	return lipgloss.NewStyle().Foreground(theme.Overlay1()).Render(errorText(err))
}

// errorText renders validation errors in a stable field order.
func errorText(err error) string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+errs[k].Error())
	}
	return strings.Join(parts, ", ")
}
