package confmap

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/bashhack/devboot/internal/errors"
)

// UnmarshalYAML implements yaml.Unmarshaler. Mapping key order from the
// document is preserved.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	node = resolve(node)
	if node.Kind != yaml.MappingNode {
		return errors.Errorf("line %d: expected a mapping, got %s", node.Line, kindName(node))
	}
	decoded, err := decodeMapping(node)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := decodeNode(node)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// ParseValue interprets s as a YAML scalar or flow collection, so "3" becomes
// a number, "true" a bool, "[80, 120]" a list and anything else a string.
func ParseValue(s string) (Value, error) {
	if s == "" {
		return String(""), nil
	}
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(s), &node); err != nil {
		// Not valid YAML on its own; treat it as literal text
		return String(s), nil
	}
	if len(node.Content) == 0 {
		return String(s), nil
	}
	root := resolve(&node)
	if root.Style&yaml.TaggedStyle != 0 || hasComment(&node) || hasComment(root) {
		// Explicit tags and comments mean the text was never meant as YAML
		return String(s), nil
	}
	return decodeNode(root)
}

func decodeNode(node *yaml.Node) (Value, error) {
	node = resolve(node)

	switch node.Kind {
	case yaml.MappingNode:
		m, err := decodeMapping(node)
		if err != nil {
			return Value{}, err
		}
		return Object(m), nil

	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := decodeNode(child)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return List(items...), nil

	case yaml.ScalarNode:
		return decodeScalar(node)
	}

	return Value{}, errors.Errorf("line %d: unsupported YAML node %s", node.Line, kindName(node))
}

func decodeMapping(node *yaml.Node) (*Map, error) {
	m := NewMap()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := resolve(node.Content[i])
		if keyNode.Kind != yaml.ScalarNode {
			return nil, errors.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}
		v, err := decodeNode(node.Content[i+1])
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", keyNode.Value)
		}
		m.Set(keyNode.Value, v)
	}
	return m, nil
}

func decodeScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return Value{}, err
		}
		return Number(float64(i)), nil
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			var decoded float64
			if derr := node.Decode(&decoded); derr != nil {
				return Value{}, derr
			}
			f = decoded
		}
		return Number(f), nil
	}
	return String(node.Value), nil
}

func hasComment(node *yaml.Node) bool {
	return node.HeadComment != "" || node.LineComment != "" || node.FootComment != ""
}

// resolve unwraps document and alias nodes.
func resolve(node *yaml.Node) *yaml.Node {
	for {
		switch {
		case node.Kind == yaml.DocumentNode && len(node.Content) > 0:
			node = node.Content[0]
		case node.Kind == yaml.AliasNode && node.Alias != nil:
			node = node.Alias
		default:
			return node
		}
	}
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
