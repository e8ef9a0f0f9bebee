package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-helper/internal/cli"
	"github.com/jonathan/resume-helper/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	t.Setenv(config.EnvResumeFile, "")
	t.Setenv(config.EnvSchema, "")

	var stdout, stderr bytes.Buffer
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	cli.Report(&stderr, err)
	return stdout.String(), stderr.String(), cli.ExitCode(err)
}

func fixture(parts ...string) string {
	return filepath.Join(append([]string{"..", "..", "testdata"}, parts...)...)
}

func TestValidateCommand_ValidResume(t *testing.T) {
	path := fixture("valid", "resume.json")

	stdout, stderr, code := execute(t, "-f", path)

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Validating "+path+"...")
	assert.Contains(t, stdout, "looks amazing!")
	assert.Empty(t, stderr)
}

func TestValidateCommand_SchemaViolations(t *testing.T) {
	stdout, stderr, code := execute(t, "-f", fixture("invalid", "schema_violations.json"))

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "Resume validation failed with 2 error(s)")
	assert.Contains(t, stdout, "Location: basics.url")
	assert.Contains(t, stdout, "Location: work.0.startDate")
	assert.Contains(t, stdout, "Dates must be in ISO 8601 format")
	assert.Contains(t, stdout, "URLs must be valid URIs")
	assert.Contains(t, stdout, "https://github.com/jsonresume/resume-schema")
	assert.Empty(t, stderr)
}

func TestValidateCommand_InvalidJSON(t *testing.T) {
	_, stderr, code := execute(t, "-f", fixture("invalid", "malformed.json"))

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error: Invalid JSON - ")
}

func TestValidateCommand_FileNotFound(t *testing.T) {
	_, stderr, code := execute(t, "-f", filepath.Join(t.TempDir(), "resume.json"))

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "not found")
}

func TestValidateCommand_SchemaOverride(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "strict.schema.json")
	require.NoError(t, os.WriteFile(schema, []byte(`{
		"type": "object",
		"required": ["awards"]
	}`), 0644))
	resume := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(resume, []byte(`{"basics": {"name": "Jordan"}}`), 0644))

	stdout, _, code := execute(t, "-f", resume, "--schema", schema)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "Resume validation failed with 1 error(s)")
	assert.Contains(t, stdout, "awards is required")
}

func TestValidateCommand_SchemaOverrideFromEnv(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "open.schema.json")
	require.NoError(t, os.WriteFile(schema, []byte(`{"type": "object"}`), 0644))
	resume := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(resume, []byte(`{"anything": "goes"}`), 0644))

	var stdout, stderr bytes.Buffer
	t.Setenv(config.EnvResumeFile, resume)
	t.Setenv(config.EnvSchema, schema)
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "looks amazing!")
}

func TestValidateCommand_MissingSchemaOverride(t *testing.T) {
	_, stderr, code := execute(t, "-f", fixture("valid", "resume.json"), "--schema", filepath.Join(t.TempDir(), "missing.json"))

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "schema file not found")
}
