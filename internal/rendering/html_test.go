package rendering

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resume-helper/internal/document"
	"github.com/jonathan/resume-helper/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate_EmbeddedTheme(t *testing.T) {
	tmpl, err := parseTemplate("")
	require.NoError(t, err)
	assert.NotNil(t, tmpl)
}

func TestParseTemplate_ValidTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "theme.html.tmpl")
	err := os.WriteFile(templatePath, []byte(`<h1>{{.Name}}</h1>`), 0644)
	require.NoError(t, err)

	tmpl, err := parseTemplate(templatePath)
	require.NoError(t, err)
	assert.NotNil(t, tmpl)
}

func TestParseTemplate_InvalidPath(t *testing.T) {
	_, err := parseTemplate("/nonexistent/theme.html.tmpl")
	assert.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestParseTemplate_InvalidTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "invalid.html.tmpl")
	err := os.WriteFile(templatePath, []byte(`<h1>{{.InvalidSyntax{{}}</h1>`), 0644)
	require.NoError(t, err)

	_, err = parseTemplate(templatePath)
	assert.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "failed to parse template")
}

func TestRenderHTML_DefaultTheme(t *testing.T) {
	doc, err := document.Load(filepath.Join("..", "..", "testdata", "valid", "resume.json"))
	require.NoError(t, err)
	r, skipped := DecodeResume(doc)
	assert.Empty(t, skipped)

	out, err := RenderHTML(r, "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<html lang="en">`)
	assert.Contains(t, out, "<h1>Jordan Rivera</h1>")
	assert.Contains(t, out, `<p class="label">Site Reliability Engineer</p>`)
	assert.Contains(t, out, `href="mailto:jordan@example.com"`)
	assert.Contains(t, out, `<a href="https://acme.example.com">Acme Corp</a>`)
	assert.Contains(t, out, "2017-06-01 - 2021-02-28")
	assert.Contains(t, out, "2021-03-01 - Present")
	assert.Contains(t, out, "<li>Cut deploy time by 60%</li>")
	assert.Contains(t, out, "Kubernetes, Terraform, Go")
	assert.Contains(t, out, "Montreal, Quebec, CA")

	// sections follow the theme order
	assert.Less(t, strings.Index(out, ">Experience<"), strings.Index(out, ">Education<"))
	assert.Less(t, strings.Index(out, ">Projects<"), strings.Index(out, ">Skills<"))
}

func TestRenderHTML_EscapesDocumentText(t *testing.T) {
	r := &types.Resume{
		Basics: types.Basics{Name: `<script>alert("x")</script>`},
		Work: []types.Work{
			{Name: "Evil & Co", Position: "Dev", URL: "javascript:alert(1)"},
		},
	}

	out, err := RenderHTML(r, "")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>alert")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "Evil &amp; Co")
	assert.NotContains(t, out, "javascript:")
	assert.NotContains(t, out, "Evil &amp; Co</a>")
}

func TestRenderHTML_CustomTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "minimal.html.tmpl")
	content := `<h1>{{.Name}}</h1>{{range .Work}}<p>{{.Position}} {{dateRange .StartDate .EndDate}}</p>{{end}}`
	require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))

	r := &types.Resume{
		Basics: types.Basics{Name: "Ann"},
		Work:   []types.Work{{Name: "Acme", Position: "SRE", StartDate: "2020-01-01"}},
	}
	out, err := RenderHTML(r, templatePath)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Ann</h1><p>SRE 2020-01-01 - Present</p>", out)
}

func TestRenderHTML_ExecuteFailure(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "broken.html.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte(`<p>{{.Missing}}</p>`), 0644))

	_, err := RenderHTML(&types.Resume{}, templatePath)
	require.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "failed to execute template")
}

func TestBuildTemplateData_DropsPlaceholders(t *testing.T) {
	r := &types.Resume{
		Basics:    types.Basics{Name: "Ann", Image: "javascript:alert(1)"},
		Work:      []types.Work{{Name: "Acme"}, {Position: "Ghost"}},
		Education: []types.Education{{Area: "Nothing"}, {Institution: "MIT"}},
		Projects:  []types.Project{{Description: "unnamed"}},
		Skills:    []types.Skill{{Name: "Go"}},
		Meta:      types.Meta{LastModified: "2024-01-01"},
	}

	data := buildTemplateData(r)
	assert.Equal(t, "Ann", data.Name)
	assert.Equal(t, "en", data.Lang)
	assert.Empty(t, data.Image)
	require.Len(t, data.Work, 1)
	assert.Equal(t, "Acme", data.Work[0].Name)
	require.Len(t, data.Education, 1)
	assert.Equal(t, "MIT", data.Education[0].Institution)
	assert.Empty(t, data.Projects)
	assert.Len(t, data.Skills, 1)
	assert.Equal(t, "2024-01-01", data.LastModified)
}

func TestContactLinks(t *testing.T) {
	links := contactLinks(types.Basics{
		Email:    "ann@example.com",
		Phone:    "555 0100",
		URL:      "https://ann.example.com/",
		Location: types.Location{City: "Oslo", CountryCode: "NO"},
		Profiles: []types.Profile{
			{Network: "GitHub", URL: "www.github.com/ann"},
			{Network: "Mastodon"},
			{Username: "ann", URL: "https://example.social/@ann"},
		},
	})

	require.Len(t, links, 6)
	assert.Equal(t, Link{Label: "Email", Text: "ann@example.com", Href: "mailto:ann@example.com"}, links[0])
	assert.Equal(t, Link{Label: "Phone", Text: "555 0100", Href: "tel:555 0100"}, links[1])
	assert.Equal(t, Link{Label: "Location", Text: "Oslo, NO"}, links[2])
	assert.Equal(t, Link{Label: "Website", Text: "ann.example.com", Href: "https://ann.example.com/"}, links[3])
	assert.Equal(t, Link{Label: "GitHub", Text: "GitHub", Href: "https://www.github.com/ann"}, links[4])
	assert.Equal(t, Link{Label: "", Text: "ann", Href: "https://example.social/@ann"}, links[5])

	assert.Empty(t, contactLinks(types.Basics{Name: "Ann"}))
}

func TestDecodeResume_NumbersAndBooleans(t *testing.T) {
	doc := decode(t, `{
		"basics": {"name": "Ann", "location": {"postalCode": 12345}},
		"education": [{"institution": "MIT", "score": 3.8}],
		"skills": [{"name": "Go", "keywords": ["generics", 1.22, false]}]
	}`)

	r, skipped := DecodeResume(doc)
	assert.Empty(t, skipped)
	assert.Equal(t, "Ann", r.Basics.Name)
	assert.Equal(t, "12345", r.Basics.Location.PostalCode)
	require.Len(t, r.Education, 1)
	assert.Equal(t, "3.8", r.Education[0].Score)
	require.Len(t, r.Skills, 1)
	assert.Equal(t, []string{"generics", "1.22", "false"}, r.Skills[0].Keywords)
}

func TestDecodeResume_SkipsWrongShapes(t *testing.T) {
	doc := decode(t, `{
		"basics": {"name": "Ann", "location": {"city": ["Oslo"]}, "profiles": "gh"},
		"work": [{"name": "Acme"}, {"name": {"legal": "Globex"}}],
		"skills": "Go",
		"languages": null,
		"awards": [{"title": "Ops Hero"}]
	}`)

	r, skipped := DecodeResume(doc)
	assert.Equal(t, []string{"basics.location", "basics.profiles", "work[1]", "skills"}, skipped)
	assert.Equal(t, "Ann", r.Basics.Name)
	require.Len(t, r.Work, 1)
	assert.Equal(t, "Acme", r.Work[0].Name)
	assert.Empty(t, r.Skills)
	assert.Empty(t, r.Languages)
	require.Len(t, r.Awards, 1)
}

func TestDecodeResume_BasicsNotAnObject(t *testing.T) {
	r, skipped := DecodeResume(decode(t, `{"basics": "Ann", "work": [{"name": "Acme"}]}`))
	assert.Equal(t, []string{"basics"}, skipped)
	assert.Empty(t, r.Basics.Name)
	assert.Len(t, r.Work, 1)
}
