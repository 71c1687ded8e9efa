package picker

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flavono123/schemabuilder/internal/schema"
)

// ShowMsg opens the picker for the field with id Target, or for the draft
// when Target is empty.
type ShowMsg struct {
	Target  string
	Current schema.Kind
}

type HideMsg struct{}

func Show(target string, current schema.Kind) tea.Cmd {
	return func() tea.Msg {
		return ShowMsg{Target: target, Current: current}
	}
}

func Hide() tea.Msg {
	return HideMsg{}
}
