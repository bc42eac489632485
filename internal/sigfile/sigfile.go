// Package sigfile implements the external type-signature loader: a flat
// YAML file mapping "ClassName.method" to a return class name, loaded with
// gopkg.in/yaml.v3 the way internal/evaluator/builtins_yaml.go decodes
// arbitrary YAML documents.
package sigfile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/methodray/methodray/internal/analyzer"
	"github.com/methodray/methodray/internal/typesystem"
)

// File is the on-disk shape of a signature file:
//
//	methods:
//	  String.upcase: String
//	  String.length: Integer
//	  String.maybe_trim: nil
//
// A return value of "nil" names the Nil type; anything else names an
// Instance of that class.
type File struct {
	Methods map[string]string `yaml:"methods"`
}

// Parse decodes a signature file's YAML bytes.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("sigfile: parse error: %w", err)
	}
	return &f, nil
}

// LoadFile reads and parses a signature file from disk.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sigfile: cannot read %s: %w", path, err)
	}
	return Parse(data)
}

// Apply registers every entry in f against d's MethodRegistry.
func (f *File) Apply(d *analyzer.Driver) error {
	for key, ret := range f.Methods {
		className, method, ok := splitKey(key)
		if !ok {
			return fmt.Errorf("sigfile: malformed key %q, want ClassName.method", key)
		}
		d.RegisterBuiltinMethod(typesystem.Instance{ClassName: className}, method, returnType(ret))
	}
	return nil
}

func splitKey(key string) (className, method string, ok bool) {
	i := strings.IndexByte(key, '.')
	if i < 0 {
		return "", "", false
	}
	return key[:i], key[i+1:], true
}

func returnType(name string) typesystem.Type {
	if name == "nil" {
		return typesystem.Nil{}
	}
	return typesystem.Instance{ClassName: name}
}
