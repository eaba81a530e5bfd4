package pathgen

import (
	"errors"
	"fmt"
)

// Block is the translated operations of one path leaf, in command order.
type Block []Operation

// Flatten walks the vector tree depth first, left to right, and returns
// one block per path leaf in that order. Groups contribute only their
// descendants; clip paths contribute nothing. If any command cannot be
// translated the whole vector fails and no blocks are returned.
func Flatten(v *Vector) ([]Block, error) {
	if v == nil {
		return nil, errors.New("flatten: nil vector")
	}
	blocks := []Block{}
	for _, n := range v.Nodes {
		bs, err := flattenNode(n)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, bs...)
	}
	return blocks, nil
}

func flattenNode(n VectorNode) ([]Block, error) {
	switch n := n.(type) {
	case *Group:
		var blocks []Block
		for _, child := range n.Children {
			bs, err := flattenNode(child)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, bs...)
		}
		return blocks, nil
	case *Path:
		b, err := translatePath(n)
		if err != nil {
			return nil, err
		}
		return []Block{b}, nil
	case *ClipPath:
		// clip paths are not supported by the runtime
		return nil, nil
	}
	return nil, fmt.Errorf("unknown vector node %T", n)
}

func translatePath(p *Path) (Block, error) {
	b := make(Block, 0, len(p.Commands))
	for i, c := range p.Commands {
		op, err := Translate(c)
		if err != nil {
			if p.Name != "" {
				return nil, fmt.Errorf("path %q command %d: %w", p.Name, i, err)
			}
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
		b = append(b, op)
	}
	return b, nil
}

// emittedPaths returns the path leaves below nodes in the order Flatten
// emits their blocks.
func emittedPaths(nodes []VectorNode) []*Path {
	var paths []*Path
	for _, n := range nodes {
		switch n := n.(type) {
		case *Group:
			paths = append(paths, emittedPaths(n.Children)...)
		case *Path:
			paths = append(paths, n)
		}
	}
	return paths
}
