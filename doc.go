// Package pathgen generates Go accessors for vector icons.
//
// An icon source (SVG or Android vector drawable) is parsed into a tree
// of groups and paths. Flatten walks the tree and translates every path
// command into a call on the runtime draw.Path, one block of calls per
// path, in paint order. Generate wraps the blocks in a lazily computed
// accessor, a method on a group type in the destination package, and a
// Batch drives the pipeline over a directory of icons:
//
//	b := &pathgen.Batch{
//		Parser: pathgen.SVGParser{Fs: fs},
//		Writer: pathgen.DirWriter{Fs: fs, Root: ".", Module: "example.com/icons"},
//	}
//	ids, err := b.Generate(icons, pathgen.Scope{Group: "Filled", Package: "example.com/icons/filled"}, pathgen.MatchAll)
//
// Horizontal and vertical lines, arcs and smooth curves have no
// equivalent in the runtime; an icon using them fails instead of being
// generated with missing geometry.
package pathgen
