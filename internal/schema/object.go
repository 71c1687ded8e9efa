package schema

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

const DefaultIndent = "  "

// Object is a JSON object that remembers key insertion order. Values are
// either strings or *Object. The zero value is an empty object ready to use.
type Object struct {
	pairs *orderedmap.OrderedMap[string, any]
}

func NewObject() *Object {
	return &Object{pairs: orderedmap.New[string, any]()}
}

// Set assigns value to key. A key that is already present keeps its position.
func (o *Object) Set(key string, value any) {
	if o.pairs == nil {
		o.pairs = orderedmap.New[string, any]()
	}
	o.pairs.Set(key, value)
}

func (o *Object) Get(key string) (any, bool) {
	if o.pairs == nil {
		return nil, false
	}
	return o.pairs.Get(key)
}

func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	o.each(func(k string, _ any) {
		keys = append(keys, k)
	})
	return keys
}

func (o *Object) Len() int {
	if o.pairs == nil {
		return 0
	}
	return o.pairs.Len()
}

func (o *Object) each(fn func(key string, value any)) {
	if o.pairs == nil {
		return
	}
	for pair := o.pairs.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Map converts o into plain nested maps.
func (o *Object) Map() map[string]any {
	m := make(map[string]any, o.Len())
	o.each(func(k string, v any) {
		if child, ok := v.(*Object); ok {
			m[k] = child.Map()
			return
		}
		m[k] = v
	})
	return m
}

// MarshalJSON writes keys and strings without HTML escaping.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	var err error
	i := 0
	buf.WriteByte('{')
	o.each(func(k string, v any) {
		if err != nil {
			return
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		i++

		var key, value []byte
		if key, err = json.MarshalNoEscape(k); err != nil {
			return
		}
		buf.Write(key)
		buf.WriteByte(':')

		switch v := v.(type) {
		case *Object:
			value, err = v.MarshalJSON()
		case string:
			value, err = json.MarshalNoEscape(v)
		default:
			err = fmt.Errorf("unsupported value %T for key %q", v, k)
		}
		buf.Write(value)
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML builds a mapping node in insertion order. Invalid UTF-8 is
// replaced with U+FFFD, as the JSON encoder does.
func (o *Object) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	var err error
	o.each(func(k string, v any) {
		if err != nil {
			return
		}
		keyNode := stringNode(k)

		var valueNode *yaml.Node
		switch v := v.(type) {
		case *Object:
			var child interface{}
			if child, err = v.MarshalYAML(); err != nil {
				return
			}
			valueNode = child.(*yaml.Node)
		case string:
			valueNode = stringNode(v)
		default:
			err = fmt.Errorf("unsupported value %T for key %q", v, k)
			return
		}
		node.Content = append(node.Content, keyNode, valueNode)
	})
	if err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		node.Style = yaml.FlowStyle
	}
	return node, nil
}

func stringNode(s string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: strings.ToValidUTF8(s, "\uFFFD")}
	if s == "" {
		node.Style = yaml.DoubleQuotedStyle
	}
	return node
}

// Pretty renders o as indented JSON.
func Pretty(o *Object, indent string) ([]byte, error) {
	compact, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", indent); err != nil {
		return nil, fmt.Errorf("indent: %w", err)
	}
	return buf.Bytes(), nil
}

// YAML renders o as a block style YAML document.
func YAML(o *Object, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
