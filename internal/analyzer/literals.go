package analyzer

import (
	"github.com/methodray/methodray/internal/ast"
	"github.com/methodray/methodray/internal/config"
	"github.com/methodray/methodray/internal/typesystem"
)

func (ins *Installer) VisitStringLiteral(s *ast.StringLiteral) {
	ins.result = ins.vm.NewSource(typesystem.Instance{ClassName: config.StringClassName})
}

func (ins *Installer) VisitIntegerLiteral(i *ast.IntegerLiteral) {
	ins.result = ins.vm.NewSource(typesystem.Instance{ClassName: config.IntegerClassName})
}

func (ins *Installer) VisitArrayLiteral(a *ast.ArrayLiteral) {
	for _, el := range a.Elements {
		ins.Install(el)
	}
	ins.result = ins.vm.NewSource(typesystem.Instance{ClassName: config.ArrayClassName})
}

func (ins *Installer) VisitHashLiteral(h *ast.HashLiteral) {
	for _, pair := range h.Pairs {
		ins.Install(pair.Key)
		ins.Install(pair.Value)
	}
	ins.result = ins.vm.NewSource(typesystem.Instance{ClassName: config.HashClassName})
}

func (ins *Installer) VisitNilLiteral(n *ast.NilLiteral) {
	ins.result = ins.vm.NewSource(typesystem.Nil{})
}

// VisitTrueLiteral and VisitFalseLiteral resolve to Instance types of two
// distinct classes, TrueClass and FalseClass, rather than one shared
// Boolean class, matching
// original_source/src/types.rs's RubyType::TrueClass/FalseClass split: a
// method registered on one does not resolve on the other.
func (ins *Installer) VisitTrueLiteral(t *ast.TrueLiteral) {
	ins.result = ins.vm.NewSource(typesystem.Instance{ClassName: config.TrueClassName})
}

func (ins *Installer) VisitFalseLiteral(f *ast.FalseLiteral) {
	ins.result = ins.vm.NewSource(typesystem.Instance{ClassName: config.FalseClassName})
}

func (ins *Installer) VisitSymbolLiteral(s *ast.SymbolLiteral) {
	ins.result = ins.vm.NewSource(typesystem.Instance{ClassName: config.SymbolClassName})
}
