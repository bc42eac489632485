// Package registry implements MethodRegistry: the mapping from (receiver
// type, method name) to the method's signature (spec.md §4.3).
package registry

import "github.com/methodray/methodray/internal/typesystem"

// MethodInfo describes one method's signature. Parameter types are out of
// scope for spec.md; only the return type is tracked.
type MethodInfo struct {
	ReturnType typesystem.Type
}

// Registry is the MethodRegistry: an exact-match map keyed by structural
// Type equality and a method name. There is no subtyping or MRO walk — a
// class that declares a method must register it directly.
type Registry struct {
	entries map[string]MethodInfo
}

// New creates an empty MethodRegistry.
func New() *Registry {
	return &Registry{entries: make(map[string]MethodInfo)}
}

// Register binds (recvTy, name) to a method returning retTy. Re-registering
// an existing key overwrites the prior entry.
func (r *Registry) Register(recvTy typesystem.Type, name string, retTy typesystem.Type) {
	r.entries[key(recvTy, name)] = MethodInfo{ReturnType: retTy}
}

// Resolve looks up (recvTy, name) by exact structural match. Bot never
// resolves any method: receivers of unknown type do not trigger errors.
func (r *Registry) Resolve(recvTy typesystem.Type, name string) (MethodInfo, bool) {
	if typesystem.IsBot(recvTy) {
		return MethodInfo{}, false
	}
	info, ok := r.entries[key(recvTy, name)]
	return info, ok
}

func key(recvTy typesystem.Type, name string) string {
	return typesystem.Key(recvTy) + "#" + name
}
