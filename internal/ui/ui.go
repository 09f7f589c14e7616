package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes operator-facing messages. Success and warning lines go to
// out, errors to errOut. Colors are dropped when a writer is not a terminal.
type Printer struct {
	out    io.Writer
	errOut io.Writer

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	faintStyle   lipgloss.Style
}

// New creates a Printer over the given writers.
func New(out, errOut io.Writer) *Printer {
	outRenderer := lipgloss.NewRenderer(out)
	errRenderer := lipgloss.NewRenderer(errOut)
	return &Printer{
		out:    out,
		errOut: errOut,

		successStyle: outRenderer.NewStyle().Foreground(lipgloss.Color("78")),  // Green
		warningStyle: outRenderer.NewStyle().Foreground(lipgloss.Color("214")), // Orange
		errorStyle:   errRenderer.NewStyle().Bold(true).Foreground(lipgloss.Color("197")),
		faintStyle:   errRenderer.NewStyle().Faint(true),
	}
}

func (p *Printer) Success(format string, a ...interface{}) {
	fmt.Fprintln(p.out, p.successStyle.Render(fmt.Sprintf(format, a...)))
}

func (p *Printer) Warning(format string, a ...interface{}) {
	fmt.Fprintln(p.out, p.warningStyle.Render(fmt.Sprintf(format, a...)))
}

func (p *Printer) Error(format string, a ...interface{}) {
	fmt.Fprintln(p.errOut, p.errorStyle.Render(fmt.Sprintf(format, a...)))
}

// Stack prints a stack trace captured from a recovered panic.
func (p *Printer) Stack(stack []byte) {
	fmt.Fprintf(p.errOut, "\n--- Stack Trace ---\n%s\n", p.faintStyle.Render(string(stack)))
}
