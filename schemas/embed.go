// Package schemas holds the JSON Schema documents shipped with resume-helper.
package schemas

import _ "embed"

// ResumeSchemaURL is the published location of the JSON Resume schema
const ResumeSchemaURL = "https://github.com/jsonresume/resume-schema/blob/master/schema.json"

// Resume is the JSON Resume schema used when no override is configured
//
//go:embed resume.schema.json
var Resume []byte
