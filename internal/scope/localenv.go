package scope

import "github.com/methodray/methodray/internal/graph"

// LocalEnv maps local-variable names to VertexIds for the unit currently
// being analyzed. Each write allocates a fresh Vertex and replaces the
// binding; reads return the current binding or report absence (spec.md
// §4.5) — the installer skips a missing read without raising an error.
type LocalEnv struct {
	vars map[string]graph.VertexId
}

// NewLocalEnv creates an empty LocalEnv.
func NewLocalEnv() *LocalEnv {
	return &LocalEnv{vars: make(map[string]graph.VertexId)}
}

// Bind replaces the binding for name with vtx.
func (e *LocalEnv) Bind(name string, vtx graph.VertexId) {
	e.vars[name] = vtx
}

// Lookup returns the current binding for name, if any.
func (e *LocalEnv) Lookup(name string) (graph.VertexId, bool) {
	id, ok := e.vars[name]
	return id, ok
}
