// Package rendering renders a résumé document as plain text or themed HTML.
package rendering

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-helper/internal/document"
)

// pageWidth is the width of the preview header
const pageWidth = 70

// WriteText renders doc and writes it to w
func WriteText(w io.Writer, doc *document.Object) error {
	if _, err := io.WriteString(w, RenderText(doc)); err != nil {
		return &RenderError{Message: "failed to write preview", Cause: err}
	}
	return nil
}

// textWriter accumulates the preview line by line
type textWriter struct {
	sb strings.Builder
}

func (t *textWriter) line(format string, args ...any) {
	t.sb.WriteString(fmt.Sprintf(format, args...))
	t.sb.WriteByte('\n')
}

func (t *textWriter) section(title string, underline string) {
	t.line("\n%s", title)
	t.line("%s", strings.Repeat(underline, utf8.RuneCountInString(title)))
}

// RenderText produces the plain-text preview straight from the document tree.
// Sections that are missing, empty or of the wrong shape are skipped; work,
// education and project entries without a name (or institution) are treated
// as placeholders and left out. Numbers and booleans print as written.
// "N/A" stands in for a missing key only, never for a present empty string.
func RenderText(doc *document.Object) string {
	t := &textWriter{}
	rule := strings.Repeat("=", pageWidth)
	basics := doc.Object("basics")

	t.line("%s", rule)
	t.line("%s", center(basics.TextOr("name", "N/A"), pageWidth))
	t.line("%s", center(basics.Text("label"), pageWidth))
	t.line("%s", rule)

	renderContact(t, basics)
	renderProfiles(t, basics.Objects("profiles"))

	if summary := basics.Text("summary"); summary != "" {
		t.section("Summary", "=")
		t.line("%s", summary)
	}

	renderWork(t, doc.Objects("work"))
	renderEducation(t, doc.Objects("education"))
	renderSkills(t, doc.Objects("skills"))
	renderProjects(t, doc.Objects("projects"))
	renderLanguages(t, doc.Objects("languages"))
	renderInterests(t, doc.Objects("interests"))
	renderCertificates(t, doc.Objects("certificates"))
	renderAwards(t, doc.Objects("awards"))

	t.line("\n%s", rule)
	t.line("")
	return t.sb.String()
}

func renderContact(t *textWriter, basics *document.Object) {
	email, phone := basics.Text("email"), basics.Text("phone")
	if email == "" && phone == "" {
		return
	}
	t.section("Contact", "-")
	if email != "" {
		t.line("Email: %s", email)
	}
	if phone != "" {
		t.line("Phone: %s", phone)
	}
	loc := basics.Object("location")
	city, region := loc.Text("city"), loc.Text("region")
	if city != "" || region != "" {
		t.line("Location: %s", joinNonEmpty(", ", city, region, loc.Text("countryCode")))
	}
}

func renderProfiles(t *textWriter, profiles []*document.Object) {
	if len(profiles) == 0 {
		return
	}
	t.section("Profiles", "-")
	for _, p := range profiles {
		t.line("• %s: %s", p.TextOr("network", "N/A"), p.TextOr("url", "N/A"))
	}
}

// named keeps the entries whose key holds non-empty text
func named(entries []*document.Object, key string) []*document.Object {
	var kept []*document.Object
	for _, e := range entries {
		if e.Text(key) != "" {
			kept = append(kept, e)
		}
	}
	return kept
}

func renderWork(t *textWriter, work []*document.Object) {
	work = named(work, "name")
	if len(work) == 0 {
		return
	}

	t.section("Work Experience", "=")
	for _, job := range work {
		t.line("\n%s at %s", job.TextOr("position", "N/A"), job.Text("name"))
		if dates := DateRange(job.Text("startDate"), job.Text("endDate")); dates != "" {
			t.line("  %s", dates)
		}
		if summary := job.Text("summary"); summary != "" {
			t.line("  %s", summary)
		}
		for _, h := range job.Texts("highlights") {
			t.line("  • %s", h)
		}
	}
}

func renderEducation(t *textWriter, education []*document.Object) {
	education = named(education, "institution")
	if len(education) == 0 {
		return
	}

	t.section("Education", "=")
	for _, edu := range education {
		t.line("\n%s", orNA(joinNonEmpty(" in ", edu.Text("studyType"), edu.Text("area"))))
		t.line("  %s", edu.Text("institution"))
		if dates := DateRange(edu.Text("startDate"), edu.Text("endDate")); dates != "" {
			t.line("  %s", dates)
		}
		if score := edu.Text("score"); score != "" {
			t.line("  GPA: %s", score)
		}
	}
}

func renderSkills(t *textWriter, skills []*document.Object) {
	if len(skills) == 0 {
		return
	}
	t.section("Skills", "=")
	for _, s := range skills {
		heading := s.TextOr("name", "N/A")
		if level := s.Text("level"); level != "" {
			heading += fmt.Sprintf(" (%s)", level)
		}
		t.line("\n%s", heading)
		if keywords := s.Texts("keywords"); len(keywords) > 0 {
			t.line("  %s", strings.Join(keywords, ", "))
		}
	}
}

func renderProjects(t *textWriter, projects []*document.Object) {
	projects = named(projects, "name")
	if len(projects) == 0 {
		return
	}

	t.section("Projects", "=")
	for _, p := range projects {
		t.line("\n%s", p.Text("name"))
		if url := p.Text("url"); url != "" {
			t.line("  URL: %s", url)
		}
		if description := p.Text("description"); description != "" {
			t.line("  %s", description)
		}
		for _, h := range p.Texts("highlights") {
			t.line("  • %s", h)
		}
		if keywords := p.Texts("keywords"); len(keywords) > 0 {
			t.line("  Technologies: %s", strings.Join(keywords, ", "))
		}
	}
}

func renderLanguages(t *textWriter, languages []*document.Object) {
	if len(languages) == 0 {
		return
	}
	t.section("Languages", "=")
	for _, l := range languages {
		t.line("• %s: %s", l.TextOr("language", "N/A"), l.TextOr("fluency", "N/A"))
	}
}

func renderInterests(t *textWriter, interests []*document.Object) {
	if len(interests) == 0 {
		return
	}
	t.section("Interests", "=")
	for _, i := range interests {
		name := i.TextOr("name", "N/A")
		if keywords := i.Texts("keywords"); len(keywords) > 0 {
			t.line("• %s: %s", name, strings.Join(keywords, ", "))
		} else {
			t.line("• %s", name)
		}
	}
}

func renderCertificates(t *textWriter, certificates []*document.Object) {
	if len(certificates) == 0 {
		return
	}
	t.section("Certifications", "=")
	for _, c := range certificates {
		t.line("• %s", c.TextOr("name", "N/A"))
		if issuer := c.Text("issuer"); issuer != "" {
			t.line("  Issued by: %s", issuer)
		}
		if date := c.Text("date"); date != "" {
			t.line("  Date: %s", date)
		}
	}
}

func renderAwards(t *textWriter, awards []*document.Object) {
	if len(awards) == 0 {
		return
	}
	t.section("Awards", "=")
	for _, a := range awards {
		t.line("• %s", a.TextOr("title", "N/A"))
		if awarder := a.Text("awarder"); awarder != "" {
			t.line("  From: %s", awarder)
		}
		if date := a.Text("date"); date != "" {
			t.line("  Date: %s", date)
		}
	}
}

// DateRange formats "start - end", "start - Present" when end is empty,
// or "" when both are empty.
func DateRange(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	if end == "" {
		return start + " - Present"
	}
	return start + " - " + end
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
