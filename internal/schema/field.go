package schema

import "github.com/google/uuid"

// Field is one node of the schema forest. Children is non-nil only for
// Nested fields.
type Field struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     Kind   `json:"type"`
	Required bool   `json:"required"`
	Children Forest `json:"children,omitempty"`
}

// Forest is the ordered top-level sequence of fields. A Forest value is never
// written to in place by this package; every operation returns a new one.
type Forest []Field

// IDFunc generates field ids. Generated ids must never repeat.
type IDFunc func() string

var newID IDFunc = uuid.NewString

// NewField returns a field with a fresh id. Nested fields start with an empty
// child list. A kind outside the vocabulary is replaced by KindUnset.
func NewField(name string, kind Kind, required bool) Field {
	if !kind.Valid() {
		kind = KindUnset
	}
	return newField(newID(), name, kind, required)
}

func newField(id, name string, kind Kind, required bool) Field {
	f := Field{
		ID:       id,
		Name:     name,
		Kind:     kind,
		Required: required,
	}
	if kind == Nested {
		f.Children = Forest{}
	}
	return f
}

func (f Field) IsNested() bool {
	return f.Kind == Nested
}

// Changes is a partial update of a field. Nil members are left untouched.
type Changes struct {
	Name     *string
	Kind     *Kind
	Required *bool
}

func (c Changes) WithName(name string) Changes {
	c.Name = &name
	return c
}

func (c Changes) WithKind(kind Kind) Changes {
	c.Kind = &kind
	return c
}

func (c Changes) WithRequired(required bool) Changes {
	c.Required = &required
	return c
}

func (c Changes) IsEmpty() bool {
	return c.Name == nil && c.Kind == nil && c.Required == nil
}

func (c Changes) validate() error {
	if c.Kind != nil && c.Kind.IsSet() && !c.Kind.Valid() {
		return ErrUnknownKind
	}
	return nil
}

// apply merges c into f. Leaving Nested drops the children; entering Nested
// starts an empty child list.
func (c Changes) apply(f Field) Field {
	if c.Name != nil {
		f.Name = *c.Name
	}
	if c.Required != nil {
		f.Required = *c.Required
	}
	if c.Kind != nil {
		f.Kind = *c.Kind
		if f.Kind == Nested {
			if f.Children == nil {
				f.Children = Forest{}
			}
		} else {
			f.Children = nil
		}
	}
	return f
}
