package builder

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	fold     key.Binding
	draft    key.Binding
	child    key.Binding
	rename   key.Binding
	kind     key.Binding
	required key.Binding
	remove   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:   key.NewBinding(key.WithKeys("up", "k")),
		down: key.NewBinding(key.WithKeys("down", "j")),
		fold: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fold"),
		),
		draft: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add field"),
		),
		child: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "add child"),
		),
		rename: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "rename"),
		),
		kind: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "type"),
		),
		required: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "required"),
		),
		remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.draft,
		k.child,
		k.rename,
		k.kind,
		k.required,
		k.remove,
		k.fold,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{}, // only render short help
	}
}

// while renaming
type editKeyMap struct {
	commit key.Binding
	revert key.Binding
}

func newEditKeyMap() editKeyMap {
	return editKeyMap{
		commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
		revert: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "revert"),
		),
	}
}

func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.commit,
		k.revert,
	}
}

func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{},
	}
}
