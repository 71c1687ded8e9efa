package draft

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/flavono123/schemabuilder/internal/schema"
)

// Draft is the field being authored before it is added to the forest.
type Draft struct {
	Name     string      `json:"name"`
	Kind     schema.Kind `json:"type"`
	Required bool        `json:"required"`
}

// Validate gates the commit of a draft: it needs a non-blank name and a kind.
func (d Draft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.By(notBlank)),
		validation.Field(&d.Kind,
			validation.Required.Error("must be picked"),
			validation.In(kinds()...),
		),
	)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

func kinds() []interface{} {
	var ks []interface{}
	for _, k := range schema.Kinds() {
		ks = append(ks, k)
	}
	return ks
}
