// Package output builds the termenv outputs depcache renders its logs through.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile is termenv.Ascii when NO_COLOR is set and the detected profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New wraps w, or stderr when w is nil. The output is treated as a terminal so styling
// follows ColorProfile rather than TTY detection.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, append(opts, termenv.WithProfile(ColorProfile()), termenv.WithTTY(true))...)
}
