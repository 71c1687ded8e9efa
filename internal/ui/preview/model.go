package preview

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/schemabuilder/internal/schema"
	"github.com/flavono123/schemabuilder/internal/ui/theme"
)

const (
	PREVIEW_SCROLL_STEP = 1

	PREVIEW_WIDTH_RATIO          = 0.5
	PREVIEW_HEIGHT_BOTTOM_MARGIN = 5 // topbar 1 + border top, down 2 + help 1, status 1
	PREVIEW_BORDER_WIDTH         = 2
)

type Model struct {
	focus  bool
	object *schema.Object
	format Format
	indent string

	vp    viewport.Model
	style lipgloss.Style

	keys keyMap
	help help.Model
}

func NewModel(format Format, indent string) *Model {
	if indent == "" {
		indent = schema.DefaultIndent
	}

	m := &Model{
		focus:  false,
		object: schema.NewObject(),
		format: format,
		indent: indent,
		vp:     viewport.New(0, 0),
		style: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Overlay0()),
		keys: newKeyMap(),
		help: help.New(),
	}
	m.vp.SetContent(m.render())

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SetObjectMsg:
		m.setObject(msg.Object)
	case tea.WindowSizeMsg:
		m.vp.Width = int(float64(msg.Width)*PREVIEW_WIDTH_RATIO) - PREVIEW_BORDER_WIDTH
		m.vp.Height = msg.Height - PREVIEW_HEIGHT_BOTTOM_MARGIN
	case tea.KeyMsg:
		if !m.focus {
			break
		}

		switch {
		case key.Matches(msg, m.keys.up):
			m.vp.LineUp(PREVIEW_SCROLL_STEP)
		case key.Matches(msg, m.keys.down):
			m.vp.LineDown(PREVIEW_SCROLL_STEP)
		case key.Matches(msg, m.keys.pageUp):
			m.vp.ViewUp()
		case key.Matches(msg, m.keys.pageDown):
			m.vp.ViewDown()
		case key.Matches(msg, m.keys.format):
			m.format = m.format.toggle()
			m.vp.SetContent(m.render())
			m.vp.GotoTop()
		}
	}

	return m, nil
}

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTopBar(),
		m.style.Render(m.vp.View()),
	)
}

func (m *Model) HelpView() string {
	return m.help.View(m.keys)
}

func (m *Model) Format() Format {
	return m.format
}

// Content is the text shown in the pane.
func (m *Model) Content() string {
	return m.render()
}

func (m *Model) Focus() tea.Cmd {
	m.focus = true
	m.style = m.style.Border(lipgloss.ThickBorder()).BorderForeground(theme.Blue())
	return nil
}

func (m *Model) Blur() {
	m.focus = false
	m.style = m.style.Border(lipgloss.NormalBorder()).BorderForeground(theme.Overlay0())
}

func (m *Model) setObject(object *schema.Object) {
	if object == nil {
		object = schema.NewObject()
	}
	m.object = object
	m.vp.SetContent(m.render())
}

func (m *Model) render() string {
	var out []byte
	var err error
	switch m.format {
	case YAML:
		out, err = schema.YAML(m.object, len(m.indent))
	default:
		out, err = schema.Pretty(m.object, m.indent)
	}
	if err != nil {
		log.Printf("failed to render %s preview: %v", m.format, err)
		return lipgloss.NewStyle().Foreground(theme.Red()).Render(err.Error())
	}

	return strings.TrimSuffix(string(out), "\n")
}

func (m *Model) renderTopBar() string {
	title := "JSON Preview"
	if m.format == YAML {
		title = "YAML Preview"
	}
	return lipgloss.NewStyle().Margin(0, 1).Bold(true).Render(title)
}
