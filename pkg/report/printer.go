package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Format selects how a report is printed.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatText, FormatYAML:
		return Format(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Printer writes reports and progress lines to an output.
type Printer struct {
	w        io.Writer
	errW     io.Writer
	format   Format
	header   lipgloss.Style
	positive lipgloss.Style
}

// NewPrinter creates a printer. Errors go to w with the text format and to
// errW otherwise, keeping YAML output parseable. Styles are rendered for w,
// so output that is not a terminal stays plain text.
func NewPrinter(w, errW io.Writer, format Format) *Printer {
	renderer := lipgloss.NewRenderer(w)
	return &Printer{
		w:        w,
		errW:     errW,
		format:   format,
		header:   renderer.NewStyle().Bold(true),
		positive: renderer.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// Progress prints a progress line. YAML output only carries the report.
func (p *Printer) Progress(format string, args ...interface{}) {
	if p.format != FormatText {
		return
	}
	fmt.Fprintf(p.w, "-> "+format+"\n\n", args...)
}

// Banner prints the run title.
func (p *Printer) Banner() {
	if p.format != FormatText {
		return
	}
	line := "------------------------------------"
	fmt.Fprintf(p.w, "%s\n%s\n%s\n\n", line, p.header.Render("Removing unused localized strings"), line)
}

// Success prints a success line.
func (p *Printer) Success(format string, args ...interface{}) {
	if p.format != FormatText {
		return
	}
	fmt.Fprintln(p.w, p.positive.Render("-> "+fmt.Sprintf(format, args...)))
	fmt.Fprintln(p.w)
}

// Error prints an error that did not stop the run.
func (p *Printer) Error(err error) {
	if p.format != FormatText {
		fmt.Fprintf(p.errW, "error: %v\n", err)
		return
	}
	fmt.Fprintf(p.w, "-> Error: %v\n\n", err)
}

// Report prints r. With listUnused set the text format lists every unused
// key before the total; the YAML format always lists them.
func (p *Printer) Report(r Report, listUnused bool) error {
	if p.format == FormatYAML {
		return p.yaml(r)
	}

	if listUnused {
		fmt.Fprintln(p.w, p.header.Render("-> Unused localized strings found:"))
		fmt.Fprintln(p.w)
		for _, key := range r.Unused {
			fmt.Fprintln(p.w, key)
		}
		fmt.Fprintln(p.w)
	}

	fmt.Fprintf(p.w, "-> Total unused localized strings found: %d\n\n", r.UnusedCount())
	return nil
}

type yamlReport struct {
	Total       int      `yaml:"total"`
	Used        int      `yaml:"used"`
	Unused      int      `yaml:"unused"`
	Ignored     int      `yaml:"ignored"`
	UnusedKeys  []string `yaml:"unused_keys"`
	IgnoredKeys []string `yaml:"ignored_keys"`
}

func (p *Printer) yaml(r Report) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlReport{
		Total:       r.Total,
		Used:        r.Used,
		Unused:      r.UnusedCount(),
		Ignored:     len(r.Ignored),
		UnusedKeys:  r.Unused,
		IgnoredKeys: r.Ignored,
	}); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
