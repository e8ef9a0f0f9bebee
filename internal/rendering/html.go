package rendering

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/jonathan/resume-helper/internal/document"
	"github.com/jonathan/resume-helper/internal/types"
)

//go:embed themes/default.html.tmpl
var defaultTheme string

// TemplateData represents the data structure passed to an HTML theme
type TemplateData struct {
	Lang         string
	Name         string
	Label        string
	Image        template.URL
	Summary      string
	Contact      []Link
	Work         []types.Work
	Education    []types.Education
	Skills       []types.Skill
	Projects     []types.Project
	Languages    []types.Language
	Interests    []types.Interest
	Certificates []types.Certificate
	Awards       []types.Award
	LastModified string
}

// Link is one contact item. Href is empty for plain text items.
type Link struct {
	Label string
	Text  string
	Href  template.URL
}

// RenderHTML renders r with the theme at templatePath, or with the built-in
// theme when templatePath is empty.
func RenderHTML(r *types.Resume, templatePath string) (string, error) {
	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, buildTemplateData(r)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

// parseTemplate reads and parses an HTML theme
func parseTemplate(templatePath string) (*template.Template, error) {
	content := defaultTheme
	if templatePath != "" {
		data, err := os.ReadFile(templatePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &TemplateError{
					Message: fmt.Sprintf("template file not found: %s", templatePath),
					Cause:   err,
				}
			}
			return nil, &TemplateError{
				Message: fmt.Sprintf("failed to read template file: %s", templatePath),
				Cause:   err,
			}
		}
		content = string(data)
	}

	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"dateRange":  DateRange,
		"safeURL":    SafeURL,
		"displayURL": DisplayURL,
		"join":       strings.Join,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// buildTemplateData drops placeholder entries and assembles the contact line
func buildTemplateData(r *types.Resume) *TemplateData {
	b := r.Basics
	data := &TemplateData{
		Lang:         "en",
		Name:         b.Name,
		Label:        b.Label,
		Image:        SafeURL(b.Image),
		Summary:      b.Summary,
		Contact:      contactLinks(b),
		Skills:       r.Skills,
		Languages:    r.Languages,
		Interests:    r.Interests,
		Certificates: r.Certificates,
		Awards:       r.Awards,
		LastModified: r.Meta.LastModified,
	}

	for _, w := range r.Work {
		if w.Name != "" {
			data.Work = append(data.Work, w)
		}
	}
	for _, e := range r.Education {
		if e.Institution != "" {
			data.Education = append(data.Education, e)
		}
	}
	for _, p := range r.Projects {
		if p.Name != "" {
			data.Projects = append(data.Projects, p)
		}
	}
	return data
}

func contactLinks(b types.Basics) []Link {
	var links []Link
	if b.Email != "" {
		links = append(links, Link{Label: "Email", Text: b.Email, Href: SafeURL("mailto:" + b.Email)})
	}
	if b.Phone != "" {
		links = append(links, Link{Label: "Phone", Text: b.Phone, Href: SafeURL("tel:" + b.Phone)})
	}
	if loc := joinNonEmpty(", ", b.Location.City, b.Location.Region, b.Location.CountryCode); loc != "" {
		links = append(links, Link{Label: "Location", Text: loc})
	}
	if b.URL != "" {
		links = append(links, Link{Label: "Website", Text: DisplayURL(b.URL), Href: SafeURL(b.URL)})
	}
	for _, p := range b.Profiles {
		if p.URL == "" {
			continue
		}
		text := p.Network
		if text == "" {
			text = p.Username
		}
		links = append(links, Link{Label: p.Network, Text: text, Href: SafeURL(p.URL)})
	}
	return links
}

// DecodeResume converts the document tree into the typed résumé model.
// Numbers and booleans are read as their text. Sections and entries of the
// wrong shape are left out; their paths are returned as skipped.
func DecodeResume(doc *document.Object) (*types.Resume, []string) {
	d := &decoder{}
	r := &types.Resume{}

	if v, ok := doc.Get("basics"); ok {
		if basics, isObj := v.(*document.Object); isObj {
			d.basics(basics, &r.Basics)
		} else if v != nil {
			d.skip("basics")
		}
	}
	decodeList(d, doc, "", "work", &r.Work)
	decodeList(d, doc, "", "education", &r.Education)
	decodeList(d, doc, "", "skills", &r.Skills)
	decodeList(d, doc, "", "projects", &r.Projects)
	decodeList(d, doc, "", "languages", &r.Languages)
	decodeList(d, doc, "", "interests", &r.Interests)
	decodeList(d, doc, "", "certificates", &r.Certificates)
	decodeList(d, doc, "", "awards", &r.Awards)
	if v, ok := doc.Get("meta"); ok {
		d.value(v, "meta", &r.Meta)
	}

	return r, d.skipped
}

type decoder struct {
	skipped []string
}

func (d *decoder) skip(path string) {
	d.skipped = append(d.skipped, path)
}

// value decodes v into dst, recording path when the shapes disagree
func (d *decoder) value(v any, path string, dst any) bool {
	data, err := document.Marshal(textify(v))
	if err == nil {
		err = json.Unmarshal(data, dst)
	}
	if err != nil {
		d.skip(path)
		return false
	}
	return true
}

// basics decodes location and profiles on their own so one bad part does not
// hide the rest of the section.
func (d *decoder) basics(obj *document.Object, dst *types.Basics) {
	rest := document.NewObject()
	for _, key := range obj.Keys() {
		if key == "location" || key == "profiles" {
			continue
		}
		v, _ := obj.Get(key)
		rest.Set(key, v)
	}
	var b types.Basics
	if d.value(rest, "basics", &b) {
		*dst = b
	}
	if v, ok := obj.Get("location"); ok {
		d.value(v, "basics.location", &dst.Location)
	}
	decodeList(d, obj, "basics", "profiles", &dst.Profiles)
}

// decodeList decodes each element of the sequence under key, skipping the
// value when it is not a sequence and any element that does not fit T.
func decodeList[T any](d *decoder, parent *document.Object, parentPath, key string, dst *[]T) {
	v, ok := parent.Get(key)
	if !ok || v == nil {
		return
	}
	path := document.JoinKey(parentPath, key)
	items, isList := v.([]any)
	if !isList {
		d.skip(path)
		return
	}
	for i, item := range items {
		var entry T
		if d.value(item, document.JoinIndex(path, i), &entry) {
			*dst = append(*dst, entry)
		}
	}
}

// textify copies a tree with numbers and booleans replaced by their text
func textify(v any) any {
	switch t := v.(type) {
	case *document.Object:
		out := document.NewObject()
		for _, key := range t.Keys() {
			child, _ := t.Get(key)
			out.Set(key, textify(child))
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = textify(item)
		}
		return out
	case json.Number, bool:
		s, _ := document.ScalarText(t)
		return s
	default:
		return v
	}
}
