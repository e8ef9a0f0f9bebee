// Package observability provides formatted report output for the résumé CLIs.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-helper/internal/scan"
	"github.com/jonathan/resume-helper/internal/schemas"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// ruleWidth is the width of report separator lines
	ruleWidth = 70
)

// Printer handles formatted report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	if content == "" {
		fmt.Fprintf(p.out, "└%s┘\n", border)
		return
	}
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintEmptyFields lists the empty fields found in a document. When
// profileURL is set, the report points the reader at it as the source
// for the missing data.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintEmptyFields(fields []scan.Field, profileURL string) {
	rule := strings.Repeat("=", ruleWidth)

	if profileURL != "" {
		fmt.Fprintln(p.out, "The following fields are empty and should be filled in from your profile:")
	} else {
		fmt.Fprintln(p.out, "The following fields are empty and should be filled in:")
	}
	fmt.Fprintln(p.out, rule)
	for _, f := range fields {
		fmt.Fprintf(p.out, "  - %s\n", f)
	}
	fmt.Fprintln(p.out, rule)
	fmt.Fprintf(p.out, "\nTotal empty fields: %d\n", len(fields))
	if profileURL != "" {
		fmt.Fprintf(p.out, "\nPlease visit %s to gather this information.\n", profileURL)
	}
}

// PrintAllClear reports a document with no empty fields
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintAllClear() {
	fmt.Fprintln(p.out, "✓ All fields are filled in!")
}

// PrintValidationPassed reports a document that satisfies the schema
func (p *Printer) PrintValidationPassed(file string) {
	p.printBox(fmt.Sprintf("✓ Your %s looks amazing!", file), "")
}

// PrintValidationErrors lists schema violations with their hints
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationErrors(verr *schemas.ValidationError, schemaURL string) {
	if verr == nil {
		return
	}
	fmt.Fprintf(p.out, "❌ Resume validation failed with %d error(s):\n\n", len(verr.Errors))

	for i, fe := range verr.Errors {
		fmt.Fprintf(p.out, "Error %d:\n", i+1)
		fmt.Fprintf(p.out, "  Location: %s\n", fe.Field)
		fmt.Fprintf(p.out, "  Issue: %s\n", fe.Message)
		if hint := fe.Hint(); hint != "" {
			fmt.Fprintf(p.out, "  → %s\n", hint)
		}
		fmt.Fprintln(p.out)
	}

	if schemaURL != "" {
		fmt.Fprintln(p.out, "For the complete JSON Resume schema specification, visit:")
		fmt.Fprintf(p.out, "%s\n\n", schemaURL)
	}
}
