package builder

import "github.com/flavono123/schemabuilder/internal/schema"

// root -> builder

// SetForestMsg replaces the rendered forest. A non-empty Select moves the
// cursor onto that field.
type SetForestMsg struct {
	Forest schema.Forest
	Select string
}
