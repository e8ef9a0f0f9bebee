// Package schemas provides JSON Schema validation for résumé documents.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResolveSchemaPath finds a schema file given a path relative to the working
// directory or up to two parent directories. Absolute paths are checked as-is.
// Returns the absolute path of the first match, or "" when none exists.
func ResolveSchemaPath(path string) string {
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}

	for _, candidate := range []string{
		path,
		filepath.Join("..", path),
		filepath.Join("..", "..", path),
	} {
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if _, err := os.Stat(abs); err == nil {
			return abs
		}
	}
	return ""
}

// ValidationError lists every schema violation found in a document
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, fe := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// Fields returns the location of each violation in report order
func (ve *ValidationError) Fields() []string {
	fields := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		fields[i] = fe.Field
	}
	return fields
}

// FieldError is a single violation, located by dotted field path
// ("work.0.startDate"; "(root)" for the document itself).
type FieldError struct {
	Field   string
	Message string
	// Type is the failed keyword, e.g. "pattern" or "format"
	Type string
	// Format is the expected format for "format" failures
	Format string
}

// Hint returns guidance for common mistakes, or "" when there is none
func (fe FieldError) Hint() string {
	switch {
	case fe.Type == "pattern" && strings.Contains(strings.ToLower(fe.Field), "date"):
		return "Dates must be in ISO 8601 format: YYYY-MM-DD, YYYY-MM, or YYYY\n" +
			"   Examples: \"2023-06\", \"2023\", \"2023-06-15\""
	case fe.Type == "format" && fe.Format == "uri":
		return "URLs must be valid URIs (e.g., \"https://example.com\")\n" +
			"   Empty strings are not valid. Use a proper URL or remove the field."
	default:
		return ""
	}
}

// SchemaLoadError reports a schema that could not be compiled
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateJSONBytes checks jsonContent against schemaContent.
// It returns a *ValidationError listing violations, a *SchemaLoadError when
// the schema itself is unusable, or nil when the document conforms.
func ValidateJSONBytes(schemaContent, jsonContent []byte) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaContent))
	if err != nil {
		return &SchemaLoadError{Message: "failed to compile schema", Cause: err}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(jsonContent))
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		fe := FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Type:    desc.Type(),
		}
		if fe.Field == "" {
			fe.Field = "(root)"
		}
		if format, ok := desc.Details()["format"].(string); ok {
			fe.Format = format
		}
		verr.Errors = append(verr.Errors, fe)
	}
	return verr
}
