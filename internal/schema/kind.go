package schema

import (
	"fmt"
	"strings"
)

// Kind is the closed vocabulary of field types. The zero value is KindUnset,
// the state of a field that is still being authored.
type Kind uint8

const (
	KindUnset Kind = iota
	String
	Number
	Float
	ObjectID
	Boolean
	Nested
)

var kindNames = map[Kind]string{
	String:   "String",
	Number:   "Number",
	Float:    "Float",
	ObjectID: "ObjectID",
	Boolean:  "Boolean",
	Nested:   "Nested",
}

// Kinds returns the six recognized kinds in display order.
func Kinds() []Kind {
	return []Kind{String, Number, Float, ObjectID, Boolean, Nested}
}

// String is the type identifier. KindUnset is the empty string and values
// outside the vocabulary render as Kind(n).
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if k == KindUnset {
		return ""
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the six recognized kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

func (k Kind) IsSet() bool {
	return k != KindUnset
}

func (k Kind) IsPrimitive() bool {
	return k.Valid() && k != Nested
}

// ParseKind maps a type identifier to its Kind. An empty (or blank) string
// parses to KindUnset; anything outside the vocabulary is an error.
func ParseKind(s string) (Kind, error) {
	if strings.TrimSpace(s) == "" {
		return KindUnset, nil
	}
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindUnset, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

func (k Kind) MarshalText() ([]byte, error) {
	if k != KindUnset && !k.Valid() {
		return nil, fmt.Errorf("kind(%d): %w", uint8(k), ErrUnknownKind)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
