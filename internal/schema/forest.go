package schema

// AddTopLevel appends a new field with a fresh id to the end of the forest.
// A kind outside the vocabulary leaves the forest unchanged.
func AddTopLevel(forest Forest, name string, kind Kind, required bool) Forest {
	if kind.IsSet() && !kind.Valid() {
		return forest
	}
	return appendField(forest, NewField(name, kind, required))
}

// AddChild appends a new empty field to the children of parentID. The forest
// is returned unchanged when the parent is missing or not Nested.
func AddChild(forest Forest, parentID string) Forest {
	out, _ := insertChild(forest, parentID, NewField("", KindUnset, false))
	return out
}

// Update merges changes into the field with the given id, wherever it lives.
// Unknown ids and out-of-vocabulary kinds leave the forest unchanged.
func Update(forest Forest, id string, changes Changes) Forest {
	out, _ := updateField(forest, id, changes)
	return out
}

// Delete removes the field with the given id from any depth.
func Delete(forest Forest, id string) Forest {
	out, _ := remove(forest, id)
	return out
}

func appendField(forest Forest, field Field) Forest {
	out := make(Forest, len(forest), len(forest)+1)
	copy(out, forest)
	return append(out, field)
}

func insertChild(forest Forest, parentID string, child Field) (Forest, error) {
	err := ErrNotFound
	out, _ := replace(forest, parentID, func(parent Field) Field {
		if !parent.IsNested() {
			err = ErrNotNested
			return parent
		}
		err = nil
		parent.Children = appendField(parent.Children, child)
		return parent
	})
	if err != nil {
		return forest, err
	}
	return out, nil
}

func updateField(forest Forest, id string, changes Changes) (Forest, error) {
	if err := changes.validate(); err != nil {
		return forest, err
	}
	out, found := replace(forest, id, changes.apply)
	if !found {
		return forest, ErrNotFound
	}
	return out, nil
}

// replace rebuilds the path from the root to the first field with the given
// id, substituting fn(field) for it. Subtrees off the path are shared.
func replace(forest Forest, id string, fn func(Field) Field) (Forest, bool) {
	for i := range forest {
		if forest[i].ID == id {
			out := forest.clone()
			out[i] = fn(forest[i])
			return out, true
		}
		if children, ok := replace(forest[i].Children, id, fn); ok {
			out := forest.clone()
			out[i].Children = children
			return out, true
		}
	}
	return forest, false
}

// remove drops every field with the given id at every level.
func remove(forest Forest, id string) (Forest, bool) {
	var out Forest
	changed := false

	for i, field := range forest {
		removed := field.ID == id
		if !removed {
			children, ok := remove(field.Children, id)
			if !ok && !changed {
				continue
			}
			field.Children = children
		}

		if !changed {
			out = make(Forest, i, len(forest))
			copy(out, forest[:i])
			changed = true
		}
		if !removed {
			out = append(out, field)
		}
	}

	if !changed {
		return forest, false
	}
	return out, true
}

func (f Forest) clone() Forest {
	out := make(Forest, len(f))
	copy(out, f)
	return out
}

// Find returns the first field with the given id, depth first.
func (f Forest) Find(id string) (Field, bool) {
	for _, field := range f {
		if field.ID == id {
			return field, true
		}
		if found, ok := field.Children.Find(id); ok {
			return found, true
		}
	}
	return Field{}, false
}

func (f Forest) Contains(id string) bool {
	_, ok := f.Find(id)
	return ok
}

// Walk visits every field depth first, in order. Returning false from fn
// skips the children of that field.
func (f Forest) Walk(fn func(field Field, depth int) bool) {
	f.walk(0, fn)
}

func (f Forest) walk(depth int, fn func(Field, int) bool) {
	for _, field := range f {
		if fn(field, depth) {
			field.Children.walk(depth+1, fn)
		}
	}
}

// IDs collects every id in depth-first order.
func (f Forest) IDs() []string {
	ids := []string{}
	f.Walk(func(field Field, _ int) bool {
		ids = append(ids, field.ID)
		return true
	})
	return ids
}

// Len counts the fields at every depth.
func (f Forest) Len() int {
	return len(f.IDs())
}

// Depth is the number of levels in the forest; an empty forest has depth 0.
func (f Forest) Depth() int {
	depth := 0
	f.Walk(func(_ Field, d int) bool {
		if d+1 > depth {
			depth = d + 1
		}
		return true
	})
	return depth
}
