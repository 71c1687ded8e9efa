package schema

import "fmt"

// Tree is the single owner of the current forest. Unlike the package level
// operations it reports unknown ids and invalid targets as errors; the forest
// is left unchanged whenever an error is returned.
type Tree struct {
	forest Forest
	newID  IDFunc
	indent string
}

type TreeOption func(*Tree)

func WithIDFunc(fn IDFunc) TreeOption {
	return func(t *Tree) {
		t.newID = fn
	}
}

func WithIndent(indent string) TreeOption {
	return func(t *Tree) {
		t.indent = indent
	}
}

func WithForest(forest Forest) TreeOption {
	return func(t *Tree) {
		t.forest = forest
	}
}

func NewTree(opts ...TreeOption) *Tree {
	t := &Tree{
		forest: Forest{},
		newID:  newID,
		indent: DefaultIndent,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tree) Forest() Forest {
	return t.forest
}

// Add appends a top-level field and returns its id.
func (t *Tree) Add(name string, kind Kind, required bool) (string, error) {
	if kind.IsSet() && !kind.Valid() {
		return "", fmt.Errorf("add %q: %w", name, ErrUnknownKind)
	}
	field := newField(t.newID(), name, kind, required)
	t.forest = appendField(t.forest, field)
	return field.ID, nil
}

// AddChild appends an empty field under parentID and returns its id.
func (t *Tree) AddChild(parentID string) (string, error) {
	child := newField(t.newID(), "", KindUnset, false)
	forest, err := insertChild(t.forest, parentID, child)
	if err != nil {
		return "", fmt.Errorf("add child to %s: %w", parentID, err)
	}
	t.forest = forest
	return child.ID, nil
}

func (t *Tree) Update(id string, changes Changes) error {
	forest, err := updateField(t.forest, id, changes)
	if err != nil {
		return fmt.Errorf("update %s: %w", id, err)
	}
	t.forest = forest
	return nil
}

func (t *Tree) Delete(id string) error {
	forest, ok := remove(t.forest, id)
	if !ok {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	t.forest = forest
	return nil
}

func (t *Tree) Serialize() *Object {
	return Serialize(t.forest)
}

// JSON renders the serialized forest as indented JSON.
func (t *Tree) JSON() ([]byte, error) {
	return Pretty(t.Serialize(), t.indent)
}

func (t *Tree) YAML() ([]byte, error) {
	return YAML(t.Serialize(), len(t.indent))
}
