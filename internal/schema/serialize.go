package schema

import "strings"

// Serialize projects the forest into a schema template object. Fields with a
// blank name are skipped at every level. A top-level field without a kind is
// dropped, while the same field nested under a Nested parent is kept with an
// empty string value. Nested fields always serialize to an object, even an
// empty one.
func Serialize(forest Forest) *Object {
	root := NewObject()
	for _, field := range forest {
		if isBlank(field.Name) {
			continue
		}
		if value, ok := fieldValue(field); ok {
			root.Set(field.Name, value)
		}
	}
	return root
}

func fieldValue(field Field) (any, bool) {
	switch {
	case field.Kind == Nested:
		obj := NewObject()
		for _, child := range field.Children {
			if isBlank(child.Name) {
				continue
			}
			if value, ok := fieldValue(child); ok {
				obj.Set(child.Name, value)
			} else {
				obj.Set(child.Name, "")
			}
		}
		return obj, true
	case field.Kind.IsPrimitive():
		return field.Kind.String(), true
	default:
		return nil, false
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
