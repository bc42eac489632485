package cache

import "github.com/methodray/methodray/internal/diagnostics"

// FromTypeErrors converts the analyzer's live TypeErrors into the cache's
// plain-value shape for storage.
func FromTypeErrors(errs []*diagnostics.TypeError) []StoredTypeError {
	out := make([]StoredTypeError, len(errs))
	for i, e := range errs {
		se := StoredTypeError{MethodName: e.MethodName}
		if e.ReceiverType != nil {
			se.ReceiverType = e.ReceiverType.String()
		}
		if e.Location != nil {
			se.File = e.Location.File
			se.Line = e.Location.Start.Line
			se.Column = e.Location.Start.Column
		}
		out[i] = se
	}
	return out
}
