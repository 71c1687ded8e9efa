package preview

import "github.com/flavono123/schemabuilder/internal/schema"

// root -> preview
type SetObjectMsg struct {
	Object *schema.Object
}
