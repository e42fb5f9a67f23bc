package config

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/empyreus/gridgraph"
	"github.com/katalvlaran/empyreus/layout"
)

// remainderWord marks the tile entry that fills the rest of the board.
// A count of -1 means the same.
const remainderWord = "remainder"

// Tiles is the tile distribution as a YAML mapping. Key order is significant
// and preserved:
//
//	tiles:
//	  planet_ore: 3
//	  trader_A: 1
//	  empty: remainder
type Tiles layout.Request

// UnmarshalYAML decodes a mapping node, keeping its key order.
func (t *Tiles) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: tiles must be a mapping", ErrSyntax, n.Line)
	}
	out := make(Tiles, 0, len(n.Content)/2)
	seen := make(map[string]bool, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if seen[key.Value] {
			return fmt.Errorf("%w: line %d: tile %q listed twice", ErrSyntax, key.Line, key.Value)
		}
		seen[key.Value] = true

		e := layout.Entry{Type: gridgraph.TileType(key.Value)}
		switch {
		case val.Kind != yaml.ScalarNode:
			return fmt.Errorf("%w: line %d: tile %q needs a count", ErrSyntax, val.Line, key.Value)
		case val.Value == remainderWord || val.Value == "-1":
			e.Remainder = true
		default:
			c, err := strconv.Atoi(val.Value)
			if err != nil {
				return fmt.Errorf("%w: line %d: tile %q: count %q", ErrSyntax, val.Line, key.Value, val.Value)
			}
			e.Count = c
		}
		out = append(out, e)
	}
	*t = out
	return nil
}

// MarshalYAML encodes the distribution as an ordered mapping.
func (t Tiles) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range t {
		v := strconv.Itoa(e.Count)
		if e.Remainder {
			v = remainderWord
		}
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(e.Type)},
			&yaml.Node{Kind: yaml.ScalarNode, Value: v},
		)
	}
	return n, nil
}
