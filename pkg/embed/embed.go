// Package embed is the embeddable library surface: the same Driver,
// pipeline, signature loading, and caching the CLI drives, exposed as a
// small API a host program can call directly rather than through a
// subprocess. A Checker holds one shared Driver, so multiple files checked
// through it accumulate into the same method registry: methods registered
// through RegisterMethod or LoadSignatures, and those synthesized by
// attr_reader/attr_writer/attr_accessor, stay visible to later files. A
// `def` does not register a method.
package embed

import (
	"context"
	"os"

	"github.com/methodray/methodray/internal/analyzer"
	"github.com/methodray/methodray/internal/cache"
	"github.com/methodray/methodray/internal/diagnostics"
	"github.com/methodray/methodray/internal/pipeline"
	"github.com/methodray/methodray/internal/sigfile"
	"github.com/methodray/methodray/internal/typesystem"
)

// Checker wraps a Driver behind a host-facing API: register signatures,
// feed it source, read back diagnostics.
type Checker struct {
	driver *analyzer.Driver
	cache  *cache.Store
}

// New builds a Checker with an empty Driver.
func New() *Checker {
	return &Checker{driver: analyzer.New()}
}

// RegisterMethod seeds the Driver's method registry directly, without going
// through a signature file. recvClass and retClass name Instance types;
// pass "" for retClass to mean Nil.
func (c *Checker) RegisterMethod(recvClass, name, retClass string) {
	var ret typesystem.Type = typesystem.Nil{}
	if retClass != "" {
		ret = typesystem.Instance{ClassName: retClass}
	}
	c.driver.RegisterBuiltinMethod(typesystem.Instance{ClassName: recvClass}, name, ret)
}

// LoadSignatures reads a YAML signature file and registers every entry.
func (c *Checker) LoadSignatures(path string) error {
	f, err := sigfile.LoadFile(path)
	if err != nil {
		return err
	}
	return f.Apply(c.driver)
}

// WithCache opens (or creates) a content-hash cache at path and attaches it
// to this Checker. Check will consult it before analyzing and populate it
// afterward.
func (c *Checker) WithCache(path string) error {
	store, err := cache.Open(path)
	if err != nil {
		return err
	}
	c.cache = store
	return nil
}

// Result is one file's outcome: the errors found and whether the answer
// came from the cache.
type Result struct {
	File   string
	Errors []*diagnostics.TypeError
	Cached bool
}

// Check parses and type-checks source under the given filename, against
// this Checker's shared Driver and registry. The Driver's TypeErrors list
// is cumulative across every file ever installed on it, so Check slices
// off only the tail produced by this call, keeping Result.Errors scoped to
// this one file the way the field's name promises.
func (c *Checker) Check(filename, source string) *Result {
	if c.cache != nil {
		hash := cache.Hash([]byte(source))
		if stored, ok, err := c.cache.Lookup(context.Background(), hash); err == nil && ok {
			return &Result{File: filename, Errors: fromStored(stored), Cached: true}
		}
	}

	before := len(c.driver.TypeErrors())

	ctx := &pipeline.PipelineContext{File: filename, Source: source}
	p := pipeline.New(pipeline.ParseStage{}, pipeline.AnalyzeStage{Driver: c.driver})
	result := p.Run(ctx)

	ownErrors := append([]*diagnostics.TypeError(nil), result.TypeErrors[before:]...)

	if c.cache != nil {
		hash := cache.Hash([]byte(source))
		_ = c.cache.Put(context.Background(), hash, cache.FromTypeErrors(ownErrors))
	}

	return &Result{File: filename, Errors: ownErrors}
}

// CheckFile reads path from disk and checks it.
func (c *Checker) CheckFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.Check(path, string(data)), nil
}

// TypeErrors returns every diagnostic accumulated across all Check calls so
// far on this Checker's shared Driver. A Check answered from the cache does
// not run the Driver and adds nothing here.
func (c *Checker) TypeErrors() []*diagnostics.TypeError {
	return c.driver.TypeErrors()
}

// Close releases the attached cache, if any.
func (c *Checker) Close() error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Close()
}

func fromStored(stored []cache.StoredTypeError) []*diagnostics.TypeError {
	out := make([]*diagnostics.TypeError, len(stored))
	for i, s := range stored {
		out[i] = &diagnostics.TypeError{
			Code:         diagnostics.UndefinedMethod,
			ReceiverType: typesystem.Instance{ClassName: s.ReceiverType},
			MethodName:   s.MethodName,
		}
	}
	return out
}
