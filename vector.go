package pathgen

// Vector is a parsed icon: its intrinsic size, the coordinate space its
// paths are drawn in, and the top level nodes in document order.
type Vector struct {
	Name           string
	Width          float64
	Height         float64
	ViewportWidth  float64
	ViewportHeight float64
	Nodes          []VectorNode
}

// VectorNode is a node of the vector tree: *Group, *Path or *ClipPath.
type VectorNode interface {
	isVectorNode()
}

// Group is a container of nodes. Groups never produce output of their
// own; their children are emitted in order.
type Group struct {
	Name     string
	Children []VectorNode
}

// Path is a leaf holding an ordered command list.
type Path struct {
	Name      string
	Commands  []PathCommand
	Fill      string
	FillAlpha float64
	FillType  FillType
}

// ClipPath is a clipping outline. It is kept in the tree so the parser
// does not have to drop it, but it is never emitted.
type ClipPath struct {
	Commands []PathCommand
}

// FillType is the winding rule of a path.
type FillType int

const (
	NonZero FillType = iota
	EvenOdd
)

func (*Group) isVectorNode()    {}
func (*Path) isVectorNode()     {}
func (*ClipPath) isVectorNode() {}
