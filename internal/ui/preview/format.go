package preview

import "fmt"

type Format uint8

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "json", "":
		return JSON, nil
	case "yaml":
		return YAML, nil
	}
	return JSON, fmt.Errorf("unknown format %q", s)
}

func (f Format) toggle() Format {
	if f == JSON {
		return YAML
	}
	return JSON
}
