// Package ats detects which applicant-tracking system hosts the current page
// and supplies the field-selector table and fill configuration for it.
package ats

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Field is a logical form-field name mapped to selector strategies.
type Field string

// Logical field names shared across adapter tables.
const (
	FieldFirstName       Field = "firstName"
	FieldLastName        Field = "lastName"
	FieldFullName        Field = "fullName"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldCurrentCompany  Field = "currentCompany"
	FieldCurrentTitle    Field = "currentTitle"
	FieldYearsExperience Field = "yearsExperience"
	FieldLinkedIn        Field = "linkedin"
	FieldGitHub          Field = "github"
	FieldPortfolio       Field = "portfolio"
	FieldCity            Field = "city"
	FieldState           Field = "state"
	FieldZipCode         Field = "zipCode"
	FieldSchool          Field = "school"
	FieldDegree          Field = "degree"
	FieldResume          Field = "resume"
	FieldCoverLetter     Field = "coverLetter"
	FieldSubmitButton    Field = "submitButton"
	FieldNextButton      Field = "nextButton"
	FieldEasyApply       Field = "easyApplyButton"
)

// IsControl reports whether the field is a navigation affordance rather than
// a candidate-data field.
func (f Field) IsControl() bool {
	return f == FieldSubmitButton || f == FieldNextButton || f == FieldEasyApply
}

// Method selects the value-write strategy for a site's UI framework.
type Method string

const (
	// MethodReactive writes through the framework's tracked value setter.
	MethodReactive Method = "reactive"
	// MethodNative assigns the DOM value directly and dispatches events.
	MethodNative Method = "native"
	// MethodAuto tries the reactive path first and falls back to native.
	MethodAuto Method = "auto"
)

// Config carries an adapter's fill hints.
type Config struct {
	Method      Method
	MultiPage   bool
	WaitForLoad time.Duration
}

// Adapter bundles one ATS's detection rule, selector table, and fill
// configuration. The adapter set is fixed; nothing mutates it at runtime.
type Adapter struct {
	Name      string
	Detect    func(s *Signals) float64
	Selectors map[Field][]string
	Config    Config
}

// Signals are the page observations detection rules score against.
// The parsed document is built once and shared across adapters.
type Signals struct {
	URL      string
	Hostname string
	HTML     string

	htmlLower string
	doc       *goquery.Document
}

// NewSignals builds detection signals from a page URL and its raw HTML.
// The hostname is derived from the URL; a parse failure leaves it empty
// rather than failing detection.
func NewSignals(pageURL, html string) *Signals {
	hostname := ""
	if u, err := url.Parse(pageURL); err == nil {
		hostname = strings.ToLower(u.Hostname())
	}
	s := &Signals{
		URL:       pageURL,
		Hostname:  hostname,
		HTML:      html,
		htmlLower: strings.ToLower(html),
	}
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		s.doc = doc
	}
	return s
}

// MatchURL reports whether any pattern matches the page URL.
func (s *Signals) MatchURL(patterns ...*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(s.URL) {
			return true
		}
	}
	return false
}

// MatchHost reports whether any pattern matches the hostname.
func (s *Signals) MatchHost(patterns ...*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(s.Hostname) {
			return true
		}
	}
	return false
}

// HTMLContains reports whether the raw HTML contains the marker,
// case-insensitively.
func (s *Signals) HTMLContains(marker string) bool {
	return strings.Contains(s.htmlLower, strings.ToLower(marker))
}

// Has reports whether the parsed document matches the CSS selector. False
// when the HTML failed to parse.
func (s *Signals) Has(selector string) bool {
	if s.doc == nil {
		return false
	}
	return s.doc.Find(selector).Length() > 0
}

// clamp caps an additive detection score at 1.0.
func clamp(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	return score
}
