package draw

// Icon is a complete vector image: its intrinsic size, the viewport its
// paths are expressed in, and the paths in paint order.
type Icon struct {
	Name           string
	Width          float32
	Height         float32
	ViewportWidth  float32
	ViewportHeight float32
	Paths          []*Path
}

// IconBuilder assembles an Icon path by path.
type IconBuilder struct {
	icon Icon
}

// NewIconBuilder starts an icon of the given size and viewport.
func NewIconBuilder(name string, width, height, viewportWidth, viewportHeight float32) *IconBuilder {
	return &IconBuilder{icon: Icon{
		Name:           name,
		Width:          width,
		Height:         height,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
	}}
}

// AddPath appends p above the paths added so far.
func (b *IconBuilder) AddPath(p *Path) *IconBuilder {
	b.icon.Paths = append(b.icon.Paths, p)
	return b
}

// Build returns the icon. The builder must not be used afterwards.
func (b *IconBuilder) Build() *Icon {
	icon := b.icon
	return &icon
}
