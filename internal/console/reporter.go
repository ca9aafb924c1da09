package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// Reporter writes leveled status lines to Out and raw errors to Err.
type Reporter struct {
	Out io.Writer
	Err io.Writer
}

// New returns a Reporter writing to stdout and stderr.
func New() *Reporter {
	return &Reporter{Out: os.Stdout, Err: os.Stderr}
}

// Success prints text behind a check mark.
func (r *Reporter) Success(text string) {
	fmt.Fprintln(r.Out, successStyle.Render("✔")+" "+text)
}

// Info prints text in the info color.
func (r *Reporter) Info(text string) {
	fmt.Fprintln(r.Out, infoStyle.Render(text))
}

// Warning prints text behind a warning sign.
func (r *Reporter) Warning(text string) {
	fmt.Fprintln(r.Out, warningStyle.Render("⚠")+" "+text)
}

// Error prints text behind a cross.
func (r *Reporter) Error(text string) {
	fmt.Fprintln(r.Out, errorStyle.Render("✖")+" "+text)
}

// Title prints a blank line followed by text in bold.
func (r *Reporter) Title(text string) {
	fmt.Fprintln(r.Out, "\n"+titleStyle.Render(text))
}

// Banner prints a highlighted headline preceded by a blank line.
func (r *Reporter) Banner(text string) {
	fmt.Fprintln(r.Out, "\n"+bannerStyle.Render(text))
}

// Step prints an indented accent-colored line, used for next-step commands.
func (r *Reporter) Step(text string) {
	fmt.Fprintln(r.Out, "  "+accentStyle.Render(text))
}

// Field prints an indented "label: value" line with the value highlighted.
func (r *Reporter) Field(label, value string) {
	fmt.Fprintf(r.Out, "  %s: %s\n", label, accentStyle.Render(value))
}

// Cause prints the underlying error to Err in the error color.
func (r *Reporter) Cause(err error) {
	if err == nil {
		return
	}
	w := r.Err
	if w == nil {
		w = r.Out
	}
	fmt.Fprintln(w, errorStyle.Render(err.Error()))
}
