// Package printer writes the user-facing report to stdout
package printer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Printer renders the CRLF report, the confirmation prompt and fix status lines
type Printer struct {
	output    io.Writer
	input     *bufio.Reader
	useColors bool
}

// New creates a new Printer writing to stdout and reading from stdin
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		input:     bufio.NewReader(os.Stdin),
		useColors: true,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithInput sets where confirmation answers are read from
func (p *Printer) WithInput(r io.Reader) *Printer {
	p.input = bufio.NewReader(r)
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

func (p *Printer) paint(attr color.Attribute, s string) string {
	if !p.useColors {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}

// AllClean reports that no file needs fixing
func (p *Printer) AllClean() {
	fmt.Fprintln(p.output, p.paint(color.FgGreen, "All source files have proper line endings (LF), no files to fix"))
}

// ScanIncomplete reports that no CRLF was found but failed files were not checked
func (p *Printer) ScanIncomplete(failed int) {
	fmt.Fprintln(p.output, p.paint(color.FgYellow, fmt.Sprintf("No CRLF line endings found, but %d files could not be scanned", failed)))
}

// Found lists the files containing CRLF
func (p *Printer) Found(files []string) {
	fmt.Fprintln(p.output, p.paint(color.FgYellow, fmt.Sprintf("Found %d files with CRLF line endings:", len(files))))
	for _, file := range files {
		fmt.Fprintf(p.output, "  %s\n", file)
	}
}

// ScanFailed reports a file that could not be scanned
func (p *Printer) ScanFailed(file string, err error) {
	fmt.Fprintln(p.output, p.paint(color.FgRed, fmt.Sprintf("Cannot scan %q: %v", file, err)))
}

// Confirm asks question and reports whether the answer was yes.
// Anything but "y" or "yes", including end of input, is a no.
func (p *Printer) Confirm(question string) bool {
	fmt.Fprintf(p.output, "%s [y/N]: ", question)
	answer, err := p.input.ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(p.output)
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// NotInteractive explains why no confirmation could be asked
func (p *Printer) NotInteractive() {
	fmt.Fprintln(p.output, "stdin is not a terminal, rerun with --yes to fix these files")
}

// Aborting reports that the user declined
func (p *Printer) Aborting() {
	fmt.Fprintln(p.output, "Aborting")
}

// FixStarted begins the status line for file
func (p *Printer) FixStarted(file string) {
	fmt.Fprintf(p.output, "Normalizing eol in file %q to LF...", file)
}

// FixDone ends the status line with success
func (p *Printer) FixDone() {
	fmt.Fprintln(p.output, p.paint(color.FgGreen, " done"))
}

// FixFailed ends the status line with err
func (p *Printer) FixFailed(err error) {
	fmt.Fprintln(p.output, p.paint(color.FgRed, " failed: "+err.Error()))
}
