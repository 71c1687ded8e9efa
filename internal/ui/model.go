package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/schemabuilder/internal/config"
	"github.com/flavono123/schemabuilder/internal/schema"
	"github.com/flavono123/schemabuilder/internal/ui/builder"
	"github.com/flavono123/schemabuilder/internal/ui/draft"
	"github.com/flavono123/schemabuilder/internal/ui/event"
	"github.com/flavono123/schemabuilder/internal/ui/picker"
	"github.com/flavono123/schemabuilder/internal/ui/preview"
	"github.com/flavono123/schemabuilder/internal/ui/theme"
)

type sessionState uint

const (
	builderView sessionState = iota
	previewView
)

// Model is the root of the UI. It is the only owner of the schema tree:
// sub-models send intents and the root applies them, then pushes the new
// forest and serialization back down.
type Model struct {
	state sessionState
	keys  keyMap
	help  help.Model

	tree    *schema.Tree
	builder *builder.Model
	preview *preview.Model
	draft   *draft.Model
	picker  *picker.Model

	width  int
	height int

	status     string
	statusKind event.Status
	submitted  bool
	renameSeq  uint64
}

func InitModel(cfg *config.Config, opts ...schema.TreeOption) *Model {
	format, err := preview.ParseFormat(cfg.Format)
	if err != nil {
		log.Printf("falling back to json preview: %v", err)
	}

	opts = append([]schema.TreeOption{schema.WithIndent(cfg.IndentString())}, opts...)
	m := &Model{
		state:   builderView,
		keys:    newKeyMap(),
		help:    help.New(),
		tree:    schema.NewTree(opts...),
		builder: builder.NewModel(),
		preview: preview.NewModel(format, cfg.IndentString()),
		draft:   draft.NewModel(),
		picker:  picker.NewModel(),
	}
	m.sync("")

	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.builder.Init(),
		m.preview.Init(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.builder.Update(msg)
		m.preview.Update(msg)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		return m, m.routeKey(msg)

	// intents
	case event.AddFieldMsg:
		id, err := m.tree.Add(msg.Name, msg.Kind, msg.Required)
		if err != nil {
			return m, m.reject(err)
		}
		log.Printf("added field %s %q", id, msg.Name)
		m.sync(id)
		return m, event.SetStatus(fmt.Sprintf("added %s", msg.Name), event.Info)
	case event.AddChildMsg:
		id, err := m.tree.AddChild(msg.ParentID)
		if err != nil {
			return m, m.reject(err)
		}
		log.Printf("added field %s under %s", id, msg.ParentID)
		m.sync(id)
	case event.UpdateFieldMsg:
		if msg.Seq != 0 {
			if msg.Seq <= m.renameSeq {
				log.Printf("dropped stale rename %d of %s", msg.Seq, msg.ID)
				break
			}
			m.renameSeq = msg.Seq
		}
		if err := m.tree.Update(msg.ID, msg.Changes); err != nil {
			return m, m.reject(err)
		}
		log.Printf("updated field %s", msg.ID)
		m.sync("")
	case event.DeleteFieldMsg:
		if err := m.tree.Delete(msg.ID); err != nil {
			return m, m.reject(err)
		}
		log.Printf("deleted field %s", msg.ID)
		m.sync("")

	// overlays
	case event.OpenDraftMsg:
		return m, draft.Show
	case draft.ShowMsg, draft.HideMsg:
		_, dCmd := m.draft.Update(msg)
		cmds = append(cmds, dCmd)
	case event.OpenPickerMsg:
		return m, picker.Show(msg.Target, msg.Current)
	case picker.ShowMsg, picker.HideMsg:
		_, pCmd := m.picker.Update(msg)
		cmds = append(cmds, pCmd)
	case event.PickKindMsg:
		if msg.Target == "" {
			_, dCmd := m.draft.Update(msg)
			cmds = append(cmds, dCmd)
			break
		}
		if err := m.tree.Update(msg.Target, schema.Changes{}.WithKind(msg.Kind)); err != nil {
			return m, m.reject(err)
		}
		log.Printf("changed type of %s to %s", msg.Target, msg.Kind)
		m.sync("")

	// status
	case event.SetStatusMsg:
		m.status = msg.Message
		m.statusKind = msg.Status
		return m, event.ShowStatus()
	case event.HideStatusMsg:
		m.status = ""

	default:
		// cursor blinks and other internal messages of the inputs
		_, bCmd := m.builder.Update(msg)
		_, dCmd := m.draft.Update(msg)
		_, pCmd := m.picker.Update(msg)
		cmds = append(cmds, bCmd, dCmd, pCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	if m.picker.Visible() {
		return m.overlay(m.picker.View())
	}
	if m.draft.Visible() {
		return m.overlay(m.draft.View())
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.builder.View(),
		m.preview.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		panes,
		m.helpView(),
		m.statusView(),
	)
}

// Forest is the current schema.
func (m *Model) Forest() schema.Forest {
	return m.tree.Forest()
}

// JSON is the pretty printed serialization of the current schema.
func (m *Model) JSON() ([]byte, error) {
	return m.tree.JSON()
}

// Submitted reports whether the schema was submitted at least once.
func (m *Model) Submitted() bool {
	return m.submitted
}

// routeKey hands a key to the topmost component that wants it.
func (m *Model) routeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case m.picker.Visible():
		_, cmd := m.picker.Update(msg)
		return cmd
	case m.draft.Visible():
		_, cmd := m.draft.Update(msg)
		return cmd
	case m.builder.Editing():
		_, cmd := m.builder.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.tabView):
		return m.switchView()
	case key.Matches(msg, m.keys.submit):
		return m.submit()
	}

	if m.state == previewView {
		_, cmd := m.preview.Update(msg)
		return cmd
	}
	_, cmd := m.builder.Update(msg)
	return cmd
}

func (m *Model) switchView() tea.Cmd {
	if m.state == builderView {
		m.state = previewView
		m.builder.Blur()
		return m.preview.Focus()
	}
	m.state = builderView
	m.preview.Blur()
	return m.builder.Focus()
}

func (m *Model) submit() tea.Cmd {
	out, err := m.tree.JSON()
	if err != nil {
		return m.reject(err)
	}
	m.submitted = true
	log.Printf("submitted schema:\n%s", out)

	return event.SetStatus(fmt.Sprintf("submitted %d fields", m.tree.Forest().Len()), event.Info)
}

func (m *Model) reject(err error) tea.Cmd {
	log.Printf("rejected: %v", err)
	return event.SetStatus(err.Error(), event.Error)
}

// sync pushes the tree to the builder and the preview.
func (m *Model) sync(selectID string) {
	m.builder.Update(builder.SetForestMsg{Forest: m.tree.Forest(), Select: selectID})
	m.preview.Update(preview.SetObjectMsg{Object: m.tree.Serialize()})
}

func (m *Model) overlay(content string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		UPPER_20,
		content,
		lipgloss.WithWhitespaceBackground(theme.Mantle()),
	)
}

func (m *Model) helpView() string {
	pane := m.builder.HelpView()
	if m.state == previewView {
		pane = m.preview.HelpView()
	}

	return lipgloss.JoinHorizontal(lipgloss.Left,
		pane,
		m.help.Styles.ShortSeparator.Render(m.help.ShortSeparator),
		m.help.View(m.keys),
	)
}

func (m *Model) statusView() string {
	if m.status == "" {
		return ""
	}

	style := lipgloss.NewStyle().Foreground(theme.Text())
	switch m.statusKind {
	case event.Warn:
		style = style.Foreground(theme.Yellow())
	case event.Error:
		style = style.Foreground(theme.Red())
	}

	return style.Render(strings.TrimSpace(m.status))
}
