// Package fill interactively completes missing résumé fields.
package fill

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/resume-helper/internal/document"
	"github.com/jonathan/resume-helper/internal/prompt"
	"github.com/jonathan/resume-helper/internal/types"
	"github.com/rs/zerolog"
)

// LastModifiedLayout is the timestamp format written to meta.lastModified
const LastModifiedLayout = "2006-01-02T15:04:05.000Z"

var ruler = strings.Repeat("=", 70)

// contactFields lists the contact paths the filler asks for, in order
var contactFields = []struct {
	path  string
	label string
}{
	{"basics.email", "Email"},
	{"basics.phone", "Phone"},
	{"basics.location.city", "City"},
	{"basics.location.region", "Region/State"},
	{"basics.location.countryCode", "Country Code (e.g., CA, US)"},
	{"basics.location.postalCode", "Postal Code"},
	{"basics.location.address", "Address"},
}

// Filler prompts for contact, work and education details and writes them into a document
type Filler struct {
	prompt *prompt.Prompter
	out    io.Writer
	now    func() time.Time
	log    zerolog.Logger
}

// Option configures a Filler
type Option func(*Filler)

// WithClock overrides the clock used for meta.lastModified
func WithClock(now func() time.Time) Option {
	return func(f *Filler) { f.now = now }
}

// WithLogger attaches a logger for debug output
func WithLogger(log zerolog.Logger) Option {
	return func(f *Filler) { f.log = log }
}

// New creates a Filler that reads answers from in and writes prompts to out
func New(in io.Reader, out io.Writer, opts ...Option) *Filler {
	f := &Filler{
		prompt: prompt.New(in, out),
		out:    out,
		now:    time.Now,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

//nolint:errcheck // writing to the terminal; errors are not recoverable
func (f *Filler) println(a ...any) {
	fmt.Fprintln(f.out, a...)
}

// Run fills every section and stamps meta.lastModified
func (f *Filler) Run(doc *document.Object) error {
	f.println(ruler)
	f.println("Resume Data Entry Helper")
	f.println(ruler)
	f.println("\nThis tool will help you fill in missing information.")
	f.println("Press Enter to keep the current value or skip optional fields.")
	f.println()

	if err := f.FillContact(doc); err != nil {
		return err
	}
	if err := f.FillWork(doc); err != nil {
		return err
	}
	if err := f.FillEducation(doc); err != nil {
		return err
	}

	stamp := f.now().UTC().Format(LastModifiedLayout)
	doc.EnsureObject("meta").Set("lastModified", stamp)
	f.log.Debug().Str("lastModified", stamp).Msg("updated document metadata")
	return nil
}

// FillContact asks for each contact field, offering the current value as the default
func (f *Filler) FillContact(doc *document.Object) error {
	f.println("\n=== Contact Information ===")
	for i, field := range contactFields {
		if i == 2 {
			f.println("\n--- Location ---")
		}
		current, exists := document.Lookup(doc, field.path)
		currentText, _ := document.ScalarText(current)

		value, err := f.prompt.Input(field.label, false, currentText)
		if err != nil {
			return err
		}
		if exists && value == currentText {
			// keeps numbers and booleans as they were
			continue
		}
		if err := document.SetPath(doc, field.path, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", field.path, err)
		}
	}
	return nil
}

// FillWork appends new work entries after dropping placeholder entries with no name
func (f *Filler) FillWork(doc *document.Object) error {
	f.println("\n=== Work Experience ===")
	return f.fillEntries(doc, section{
		key:         "work",
		identity:    "name",
		addPrompt:   "Add work experience entries?",
		againPrompt: "Add another work experience?",
		heading:     "\n--- New Work Experience ---",
		read:        f.readWork,
	})
}

// FillEducation appends new education entries after dropping placeholder entries with no institution
func (f *Filler) FillEducation(doc *document.Object) error {
	f.println("\n=== Education ===")
	return f.fillEntries(doc, section{
		key:         "education",
		identity:    "institution",
		addPrompt:   "Add education entries?",
		againPrompt: "Add another education entry?",
		heading:     "\n--- New Education Entry ---",
		read:        f.readEducation,
	})
}

// section describes a repeatable document section
type section struct {
	key         string
	identity    string
	addPrompt   string
	againPrompt string
	heading     string
	read        func() (any, error)
}

func (f *Filler) fillEntries(doc *document.Object, s section) error {
	existing := doc.Array(s.key)
	kept := make([]any, 0, len(existing))
	for _, entry := range existing {
		if obj, ok := entry.(*document.Object); ok && obj.String(s.identity) != "" {
			kept = append(kept, entry)
		}
	}
	f.println(fmt.Sprintf("Current %s entries: %d", s.key, len(kept)))

	add, err := f.prompt.Confirm(s.addPrompt, true)
	if err != nil {
		return err
	}
	if !add {
		return nil
	}

	f.log.Debug().
		Str("section", s.key).
		Int("dropped", len(existing)-len(kept)).
		Msg("removed placeholder entries")

	for {
		f.println(s.heading)
		entry, err := s.read()
		if err != nil {
			return err
		}
		node, err := toNode(entry)
		if err != nil {
			return fmt.Errorf("failed to convert %s entry: %w", s.key, err)
		}
		kept = append(kept, node)
		doc.Set(s.key, kept)

		again, err := f.prompt.Confirm(s.againPrompt, false)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (f *Filler) readWork() (any, error) {
	p := f.prompt
	var w types.Work
	var err error

	if w.Name, err = p.Input("Company name", true, ""); err != nil {
		return nil, err
	}
	if w.Position, err = p.Input("Position/Title", true, ""); err != nil {
		return nil, err
	}
	if w.URL, err = p.Input("Company website", false, ""); err != nil {
		return nil, err
	}
	if w.StartDate, err = p.Date("Start date (YYYY-MM-DD)", true); err != nil {
		return nil, err
	}
	if w.EndDate, err = p.Date("End date (YYYY-MM-DD, empty if current)", false); err != nil {
		return nil, err
	}
	if w.Summary, err = p.Input("Job summary", false, ""); err != nil {
		return nil, err
	}
	if w.Highlights, err = p.List("Key achievements/highlights"); err != nil {
		return nil, err
	}

	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid work entry: %w", err)
	}
	return w, nil
}

func (f *Filler) readEducation() (any, error) {
	p := f.prompt
	var e types.Education
	var err error

	if e.Institution, err = p.Input("Institution name", true, ""); err != nil {
		return nil, err
	}
	if e.URL, err = p.Input("Institution website", false, ""); err != nil {
		return nil, err
	}
	if e.Area, err = p.Input("Field of study", true, ""); err != nil {
		return nil, err
	}
	if e.StudyType, err = p.Input("Degree type (e.g., Bachelor's, Master's)", true, ""); err != nil {
		return nil, err
	}
	if e.StartDate, err = p.Date("Start date (YYYY-MM-DD)", false); err != nil {
		return nil, err
	}
	if e.EndDate, err = p.Date("End date (YYYY-MM-DD)", false); err != nil {
		return nil, err
	}
	if e.Score, err = p.Input("GPA/Score", false, ""); err != nil {
		return nil, err
	}
	if e.Courses, err = p.List("Relevant courses"); err != nil {
		return nil, err
	}

	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("invalid education entry: %w", err)
	}
	return e, nil
}

// toNode converts a typed entry into an ordered document node, keeping
// struct field order as key order.
func toNode(entry any) (any, error) {
	data, err := document.Marshal(entry)
	if err != nil {
		return nil, err
	}
	return document.Parse(data)
}
