package analyzer

import (
	"github.com/methodray/methodray/internal/ast"
	"github.com/methodray/methodray/internal/typesystem"
)

// isAttrDeclName reports whether name is one of the three attribute
// declaration helpers spec.md §4.9 models.
func isAttrDeclName(name string) bool {
	switch name {
	case "attr_reader", "attr_writer", "attr_accessor":
		return true
	}
	return false
}

// handleAttrDecl records one attr_reader/attr_writer/attr_accessor call
// for deferred registration. Outside any class scope the call is silently
// ignored, matching the attr_* helpers having no effect at top level
// (spec.md §4.9). Only symbol-literal arguments name an attribute; any
// other argument shape is skipped rather than raising an error, since an
// attr_* call with a computed argument isn't a syntax this surface models.
func (ins *Installer) handleAttrDecl(call *ast.MethodCallExpression) {
	if len(ins.classes) == 0 {
		return
	}
	ctx := ins.classes[len(ins.classes)-1]

	var names []string
	for _, arg := range call.Arguments {
		sym, ok := arg.(*ast.SymbolLiteral)
		if !ok {
			continue
		}
		names = append(names, sym.Name)
	}
	if len(names) == 0 {
		return
	}

	var kind attrKind
	switch call.Name {
	case "attr_reader":
		kind = attrReader
	case "attr_writer":
		kind = attrWriter
	case "attr_accessor":
		kind = attrAccessor
	}
	ctx.pending = append(ctx.pending, pendingAttr{kind: kind, names: names})
}

// flushAttrs registers every attribute declared in ctx's class body now
// that the whole body has been installed: each reader's return type is the
// first type currently on the matching instance variable (or Bot if the
// ivar was never written or its vertex has no type yet, since deferred
// edges are only committed by Finish), and each writer always returns Bot (spec.md
// §4.9).
func (ins *Installer) flushAttrs(ctx *classCtx) {
	recv := typesystem.Instance{ClassName: ctx.className}
	for _, decl := range ctx.pending {
		for _, name := range decl.names {
			switch decl.kind {
			case attrReader:
				ins.registerAttrReader(recv, name)
			case attrWriter:
				ins.registerAttrWriter(recv, name)
			case attrAccessor:
				ins.registerAttrReader(recv, name)
				ins.registerAttrWriter(recv, name)
			}
		}
	}
}

func (ins *Installer) registerAttrReader(recv typesystem.Type, name string) {
	ret := typesystem.Type(typesystem.Bot{})
	if vtx, ok := ins.scopes.LookupInstanceVar(name); ok {
		if types := ins.vm.Types(vtx); len(types) > 0 {
			ret = types[0]
		}
	}
	ins.registry.Register(recv, name, ret)
}

func (ins *Installer) registerAttrWriter(recv typesystem.Type, name string) {
	ins.registry.Register(recv, name+"=", typesystem.Bot{})
}
