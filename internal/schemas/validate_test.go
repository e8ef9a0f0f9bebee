package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	resumeschema "github.com/jonathan/resume-helper/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer"}
	}
}`

func fixture(parts ...string) string {
	return filepath.Join(append([]string{"..", "..", "testdata"}, parts...)...)
}

func TestValidateJSONBytes_Valid(t *testing.T) {
	assert.NoError(t, ValidateJSONBytes([]byte(personSchema), []byte(`{"name": "Jordan", "age": 30}`)))
}

func TestValidateJSONBytes_MissingFieldAndWrongType(t *testing.T) {
	err := ValidateJSONBytes([]byte(personSchema), []byte(`{"age": "thirty"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Errors, 2)
	assert.Contains(t, err.Error(), "validation failed:")
	assert.Contains(t, err.Error(), "age")
}

func TestValidateJSONBytes_BadSchema(t *testing.T) {
	err := ValidateJSONBytes([]byte(`{"type": 12}`), []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "invalid schema")
}

func TestValidateJSONBytes_RootViolation(t *testing.T) {
	err := ValidateJSONBytes([]byte(personSchema), []byte(`[]`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Equal(t, "invalid_type", validationErr.Errors[0].Type)
}

func TestValidateJSONBytes_SampleResumeIsValid(t *testing.T) {
	doc, err := os.ReadFile(fixture("valid", "resume.json"))
	require.NoError(t, err)

	assert.NoError(t, ValidateJSONBytes(resumeschema.Resume, doc))
}

func TestValidateJSONBytes_ReportsFieldsAndHints(t *testing.T) {
	doc, err := os.ReadFile(fixture("invalid", "schema_violations.json"))
	require.NoError(t, err)

	err = ValidateJSONBytes(resumeschema.Resume, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 2)

	byField := make(map[string]FieldError)
	for _, fe := range validationErr.Errors {
		byField[fe.Field] = fe
	}

	url, ok := byField["basics.url"]
	require.True(t, ok, "expected an error for basics.url, got %v", validationErr.Errors)
	assert.Equal(t, "format", url.Type)
	assert.Equal(t, "uri", url.Format)
	assert.Contains(t, url.Hint(), "URLs must be valid URIs")

	date, ok := byField["work.0.startDate"]
	require.True(t, ok, "expected an error for work.0.startDate, got %v", validationErr.Errors)
	assert.Equal(t, "pattern", date.Type)
	assert.Contains(t, date.Hint(), "ISO 8601")
}

func TestFieldError_HintDefaults(t *testing.T) {
	assert.Equal(t, "", FieldError{Field: "basics.name", Type: "invalid_type"}.Hint())
	assert.Equal(t, "", FieldError{Field: "basics.email", Type: "format", Format: "email"}.Hint())
	assert.Equal(t, "", FieldError{Field: "basics.label", Type: "pattern"}.Hint())
}

func TestValidationError_Fields(t *testing.T) {
	err := ValidateJSONBytes([]byte(personSchema), []byte(`{"name": 7}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"name"}, validationErr.Fields())
}

func TestResolveSchemaPath(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(abs, []byte(personSchema), 0644))

	assert.Equal(t, abs, ResolveSchemaPath(abs))
	assert.Equal(t, "", ResolveSchemaPath(filepath.Join(dir, "missing.json")))

	// schemas/resume.schema.json lives two levels above this package
	resolved := ResolveSchemaPath(filepath.Join("schemas", "resume.schema.json"))
	assert.NotEmpty(t, resolved)
	assert.True(t, filepath.IsAbs(resolved))
}
