package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// Renderer formats TypeErrors for a CLI, optionally colorizing when the
// destination is a real terminal (spec.md §1's "diagnostic rendering/color"
// collaborator, given a thin real body here rather than left unimplemented).
type Renderer struct {
	w     io.Writer
	color bool
}

// NewRenderer builds a Renderer writing to w. Color is auto-detected via
// go-isatty when w is an *os.File; WithColor overrides the detected
// setting (the CLI's --no-color flag calls WithColor(false)).
func NewRenderer(w io.Writer) *Renderer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Renderer{w: w, color: color}
}

// WithColor overrides auto-detection.
func (r *Renderer) WithColor(on bool) *Renderer {
	r.color = on
	return r
}

// Render writes one line per error. A clean analysis (no errors) writes
// nothing, matching spec.md §7's "zero errors is a clean analysis".
func (r *Renderer) Render(errs []*TypeError) {
	for _, e := range errs {
		r.renderOne(e)
	}
}

func (r *Renderer) renderOne(e *TypeError) {
	if !r.color {
		fmt.Fprintln(r.w, e.Error())
		return
	}
	loc := ""
	if e.Location != nil {
		loc = colorBold + e.Location.String() + colorReset + ": "
	}
	recv := "<unknown>"
	if e.ReceiverType != nil {
		recv = e.ReceiverType.String()
	}
	fmt.Fprintf(r.w, "%s%sundefined method%s %q for %s\n", loc, colorRed, colorReset, e.MethodName, recv)
}
