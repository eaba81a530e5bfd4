// Package draw is the runtime imported by code generated with pathgen.
//
// A generated accessor returns either a list of *Path values or an
// *Icon. Paths record the drawing operations the generator translated
// from the source vector, in order; a renderer replays them through Ops.
// Accessors are backed by a Lazy cell so the operations are built once,
// on first use, whatever the number of goroutines asking for them.
package draw
