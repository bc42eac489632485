// Package graph implements the monotone dataflow graph: Vertex and Source
// nodes addressed by dense, never-reused integer handles, and the
// VertexManager that allocates them, wires edges, and propagates types
// forward.
package graph

// VertexId is an opaque, dense handle into the graph. Handles are never
// reused while the graph lives; they are indices, not owning references, so
// cycles are representable without reference-count issues (spec.md §3).
type VertexId int

// BoxId is an opaque, dense handle for a reactive cell (MethodCallBox). It
// lives alongside VertexId in the same "never reused" discipline. Vertex
// stores the BoxIds subscribed to it as a receiver; the graph package never
// interprets what a BoxId means, only routes notifications for one.
type BoxId int

// Invalid (-1) is the "no vertex" sentinel; ids are allocated from 0
// upward, so no real vertex or box is ever allocated with this id.
const Invalid = -1
