package event

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flavono123/schemabuilder/internal/schema"
)

// intents: builder/draft -> root

type AddFieldMsg struct {
	Name     string
	Kind     schema.Kind
	Required bool
}

type AddChildMsg struct {
	ParentID string
}

// UpdateFieldMsg changes a field. Live rename updates carry an increasing
// Seq and one older than the last applied rename is stale; zero means
// unordered.
type UpdateFieldMsg struct {
	ID      string
	Changes schema.Changes
	Seq     uint64
}

type DeleteFieldMsg struct {
	ID string
}

// picker

// OpenPickerMsg asks the root to show the kind picker. An empty Target means
// the kind of the draft field is being picked.
type OpenPickerMsg struct {
	Target  string
	Current schema.Kind
}

type PickKindMsg struct {
	Target string
	Kind   schema.Kind
}

// builder -> root
type OpenDraftMsg struct{}

// -> root

type Status uint

const (
	Info Status = iota
	Warn
	Error
)

type SetStatusMsg struct {
	Message string
	Status  Status
}

func SetStatus(message string, status Status) tea.Cmd {
	return func() tea.Msg {
		return SetStatusMsg{Message: message, Status: status}
	}
}

const statusDuration = time.Millisecond * 1060

func ShowStatus() tea.Cmd {
	return tea.Tick(statusDuration, func(t time.Time) tea.Msg {
		return HideStatusMsg{}
	})
}

type HideStatusMsg struct{}
