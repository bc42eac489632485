// Package config holds build-time and runtime constants shared across the
// CLI, lint service, and embeddable library surfaces.
package config

// Version is the current methodray version.
// Set at build time by -ldflags or by writing to this file.
var Version = "0.1.0"

const SourceFileExt = ".rb"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".rb"}

// HasSourceExt returns true if the path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// Class names shared by literal installation (internal/analyzer) and the
// lint service's default seed signatures (internal/lintservice), so both
// agree on what a bare "String" or "Integer" literal means without a
// project-specific signature file loaded.
const (
	StringClassName  = "String"
	IntegerClassName = "Integer"
	ArrayClassName   = "Array"
	HashClassName    = "Hash"
	TrueClassName    = "TrueClass"
	FalseClassName   = "FalseClass"
	SymbolClassName  = "Symbol"
	ObjectClassName  = "Object"
)

// Default seeded method names.
const (
	UpcaseMethodName   = "upcase"
	DowncaseMethodName = "downcase"
	ToSMethodName      = "to_s"
	LengthMethodName   = "length"
)
