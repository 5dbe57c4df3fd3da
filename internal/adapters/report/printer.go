// Package report prints the end-of-run summary.
package report

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/modup/internal/core/domain"
	"go.trai.ch/modup/internal/ui/output"
	"go.trai.ch/modup/internal/ui/style"
)

// emptyMessage is printed when no group has entries.
const emptyMessage = "No modules were changed."

// labelColors maps group labels to their color. Unlisted labels are gray.
var labelColors = map[string]lipgloss.Color{
	"Modules Installed":                    style.Green,
	"Modules Updated":                      style.Blue,
	"Old Versions Removed":                 style.Yellow,
	"Modules Skipped (installed manually)": style.Yellow,
	"Modules Failed":                       style.Red,
}

// Printer implements ports.ReportPrinter.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrinter creates a Printer writing to w, or to stdout when w is nil.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// SetOutput redirects the printer.
func (p *Printer) SetOutput(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.w = w
}

// Print writes one line per non-empty group of r.
func (p *Printer) Print(r *domain.Report) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := output.New(p.w)

	groups := r.Groups()
	if len(groups) == 0 {
		_, err := io.WriteString(p.w, emptyMessage+"\n")
		return err
	}

	var b strings.Builder
	for _, g := range groups {
		color, ok := labelColors[g.Label]
		if !ok {
			color = style.Gray
		}
		b.WriteString(output.Paint(out, string(color), g.Label+":"))
		b.WriteString(" " + strings.Join(g.Items, ", ") + "\n")
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}
