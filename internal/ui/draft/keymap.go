package draft

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	add      key.Binding
	cancel   key.Binding
	kind     key.Binding
	required key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		add: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		kind: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "type"),
		),
		required: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "required"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.add,
		k.kind,
		k.required,
		k.cancel,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{}, // only render short help
	}
}
