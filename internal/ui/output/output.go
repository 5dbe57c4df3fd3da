// Package output builds termenv outputs that honor NO_COLOR.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns Ascii when NO_COLOR is set and the detected terminal profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New returns a termenv.Output writing to w, or to stderr when w is nil.
func New(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(ColorProfile()), termenv.WithTTY(true))
}

// Paint renders s in the given hex color using the profile of out.
func Paint(out *termenv.Output, hex, s string) string {
	return out.String(s).Foreground(termenv.RGBColor(hex)).String()
}
