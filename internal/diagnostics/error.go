// Package diagnostics implements the core's error taxonomy (spec.md §7) and
// a terminal-aware renderer for it.
package diagnostics

import (
	"fmt"

	"github.com/methodray/methodray/internal/token"
	"github.com/methodray/methodray/internal/typesystem"
)

// ErrorCode classifies a diagnostic. UndefinedMethod is the only core-level
// error spec.md §7 defines; UnsupportedSyntax is explicitly silent (no
// TypeError is ever recorded for it) and ParseFailure originates outside
// the core, but both codes are named here so callers across the CLI,
// lintservice, and embed surfaces can discriminate on one enum.
type ErrorCode string

const (
	UndefinedMethod   ErrorCode = "undefined_method"
	UnsupportedSyntax ErrorCode = "unsupported_syntax"
	ParseFailure      ErrorCode = "parse_failure"
)

// TypeError is the core's recorded diagnostic: a method call whose
// receiver's inferred type does not declare that method (spec.md §3, §7).
type TypeError struct {
	Code         ErrorCode
	ReceiverType typesystem.Type
	MethodName   string
	Location     *token.Location // nil when no location is available
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	recv := "<unknown>"
	if e.ReceiverType != nil {
		recv = e.ReceiverType.String()
	}
	if e.Location != nil {
		return fmt.Sprintf("%s: undefined method %q for %s", e.Location.String(), e.MethodName, recv)
	}
	return fmt.Sprintf("undefined method %q for %s", e.MethodName, recv)
}

// NewUndefinedMethod builds the one error the MethodCallBox ever records
// (spec.md §4.7).
func NewUndefinedMethod(recv typesystem.Type, method string, loc *token.Location) *TypeError {
	return &TypeError{Code: UndefinedMethod, ReceiverType: recv, MethodName: method, Location: loc}
}
