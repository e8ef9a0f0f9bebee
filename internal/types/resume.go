// Package types provides type definitions for the JSON Resume sections used throughout resume-helper.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// DateLayout is the ISO calendar-date format accepted for new entries
const DateLayout = "2006-01-02"

// Resume is the typed view of a JSON Resume document
type Resume struct {
	Basics       Basics        `json:"basics"`
	Work         []Work        `json:"work"`
	Education    []Education   `json:"education"`
	Skills       []Skill       `json:"skills"`
	Projects     []Project     `json:"projects"`
	Languages    []Language    `json:"languages"`
	Interests    []Interest    `json:"interests"`
	Certificates []Certificate `json:"certificates"`
	Awards       []Award       `json:"awards"`
	Meta         Meta          `json:"meta"`
}

// Basics holds identity and contact details
type Basics struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Image    string    `json:"image"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	URL      string    `json:"url"`
	Summary  string    `json:"summary"`
	Location Location  `json:"location"`
	Profiles []Profile `json:"profiles"`
}

// Location is a postal location
type Location struct {
	Address     string `json:"address"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
	Region      string `json:"region"`
}

// Profile is an online profile such as GitHub or LinkedIn
type Profile struct {
	Network  string `json:"network"`
	Username string `json:"username"`
	URL      string `json:"url"`
}

// Work is one position held at an organization
type Work struct {
	Name       string   `json:"name" validate:"required"`
	Position   string   `json:"position" validate:"required"`
	URL        string   `json:"url"`
	StartDate  string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string   `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

// Education is one course of study
type Education struct {
	Institution string   `json:"institution" validate:"required"`
	URL         string   `json:"url"`
	Area        string   `json:"area" validate:"required"`
	StudyType   string   `json:"studyType" validate:"required"`
	StartDate   string   `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string   `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Score       string   `json:"score"`
	Courses     []string `json:"courses"`
}

// Skill is a group of related keywords
type Skill struct {
	Name     string   `json:"name"`
	Level    string   `json:"level"`
	Keywords []string `json:"keywords"`
}

// Project is a side or professional project
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Highlights  []string `json:"highlights"`
	Keywords    []string `json:"keywords"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
}

// Language is a spoken language and fluency
type Language struct {
	Language string `json:"language"`
	Fluency  string `json:"fluency"`
}

// Interest is a personal interest
type Interest struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Certificate is a professional certification
type Certificate struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Issuer string `json:"issuer"`
	URL    string `json:"url"`
}

// Award is a prize or recognition
type Award struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Awarder string `json:"awarder"`
	Summary string `json:"summary"`
}

// Meta records document metadata
type Meta struct {
	Canonical    string `json:"canonical"`
	Version      string `json:"version"`
	LastModified string `json:"lastModified"`
}

var validate = validator.New()

// Validate checks the fields required for a new work entry.
func (w *Work) Validate() error {
	return validate.Struct(w)
}

// Validate checks the fields required for a new education entry.
func (e *Education) Validate() error {
	return validate.Struct(e)
}

// ValidDate reports whether s is an ISO calendar date (YYYY-MM-DD)
func ValidDate(s string) bool {
	return validate.Var(s, "datetime="+DateLayout) == nil
}
