package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/dhamidi/minic/minic/diag"
)

var (
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorInfo    = lipgloss.Color("#06B6D4")
	colorMuted   = lipgloss.Color("#6B7280")
)

// diagnosticPrinter writes diagnostics as "file:line:col: Level: message".
// Levels and locations are coloured when the writer is a colour terminal
// and output.color allows it.
type diagnosticPrinter struct {
	w        io.Writer
	color    bool
	levels   map[diag.Level]lipgloss.Style
	location lipgloss.Style
}

func newDiagnosticPrinter(w io.Writer, color bool) *diagnosticPrinter {
	r := lipgloss.NewRenderer(w)
	return &diagnosticPrinter{
		w:     w,
		color: color,
		levels: map[diag.Level]lipgloss.Style{
			diag.Error:   r.NewStyle().Foreground(colorError).Bold(true),
			diag.Warning: r.NewStyle().Foreground(colorWarning).Bold(true),
			diag.Info:    r.NewStyle().Foreground(colorInfo),
		},
		location: r.NewStyle().Foreground(colorMuted),
	}
}

func (p *diagnosticPrinter) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p *diagnosticPrinter) Print(file string, d diag.Diagnostic) error {
	loc := fmt.Sprintf("%s:%d:%d:", file, d.Line, d.Column)
	msg := d.Message
	switch {
	case d.AtEOF():
		msg += " at end of file"
	case d.Token != nil && d.Token.Text != "":
		msg += fmt.Sprintf(" ('%s')", d.Token.Text)
	}
	_, err := fmt.Fprintf(p.w, "%s %s %s\n",
		p.style(p.location, loc),
		p.style(p.levels[d.Level], d.Level.String()+":"),
		msg)
	return err
}

func (p *diagnosticPrinter) PrintAll(file string, diags diag.List) error {
	for _, d := range diags {
		if err := p.Print(file, d); err != nil {
			return err
		}
	}
	return nil
}

// Summary prints the closing "N error(s)" line of check.
func (p *diagnosticPrinter) Summary(files, errs int) error {
	if errs == 0 {
		_, err := fmt.Fprintf(p.w, "%d file(s) checked, no errors\n", files)
		return err
	}
	_, err := fmt.Fprintf(p.w, "%d file(s) checked, %s\n", files,
		p.style(p.levels[diag.Error], fmt.Sprintf("%d error(s)", errs)))
	return err
}
