package ats

import (
	"regexp"
	"strings"
	"time"
)

// Detection weights below were calibrated by inspection of real ATS pages;
// treat them as configuration rather than proven constants.

var (
	greenhouseURL = []*regexp.Regexp{
		regexp.MustCompile(`boards\.greenhouse\.io`),
		regexp.MustCompile(`job-boards\.greenhouse\.io`),
		regexp.MustCompile(`boards\.eu\.greenhouse\.io`),
		regexp.MustCompile(`gh_jid=`),
	}
	workdayURL = []*regexp.Regexp{
		regexp.MustCompile(`myworkdayjobs\.com`),
		regexp.MustCompile(`workday\.com.*job`),
		regexp.MustCompile(`wd\d\.myworkdayjobs`),
	}
	leverURL = []*regexp.Regexp{
		regexp.MustCompile(`jobs\.lever\.co`),
		regexp.MustCompile(`lever\.co.*jobs`),
	}
	ashbyURL = []*regexp.Regexp{
		regexp.MustCompile(`ashbyhq\.com`),
	}
	taleoURL = []*regexp.Regexp{
		regexp.MustCompile(`taleo\.net`),
	}
	smartURL = []*regexp.Regexp{
		regexp.MustCompile(`smartrecruiters\.com`),
	}
	icimsURL = []*regexp.Regexp{
		regexp.MustCompile(`icims\.com`),
	}
)

// Adapters is the fixed, ordered detection table. Order matters only for
// tie-breaking; the generic catch-all stays last.
var Adapters = []*Adapter{
	greenhouseAdapter,
	workdayAdapter,
	leverAdapter,
	linkedinAdapter,
	ashbyAdapter,
	taleoAdapter,
	smartRecruitersAdapter,
	icimsAdapter,
	GenericAdapter,
}

var greenhouseAdapter = &Adapter{
	Name: "greenhouse",
	Detect: func(s *Signals) float64 {
		score := 0.0
		if s.MatchURL(greenhouseURL...) {
			score += 0.5
		}
		if s.MatchHost(greenhouseURL...) {
			score += 0.3
		}
		if s.HTMLContains("greenhouse") || s.Has("#application_form") {
			score += 0.2
		}
		return clamp(score)
	},
	Selectors: map[Field][]string{
		FieldFirstName: {
			`//input[@id="first_name"]`,
			`//input[@name="first_name"]`,
		},
		FieldLastName: {
			`//input[@id="last_name"]`,
			`//input[@name="last_name"]`,
		},
		FieldEmail: {
			`//input[@id="email"]`,
			`//input[@data-candidate-field="candidate_email"]`,
		},
		FieldPhone: {
			`//input[@id="phone"]`,
			`//input[@data-candidate-field="candidate_phone"]`,
		},
		FieldResume: {
			`//input[@type="file" and contains(@name, "resume")]`,
		},
		FieldCoverLetter: {
			`//textarea[@id="cover_letter"]`,
		},
		FieldSubmitButton: {
			`//input[@type="submit" and @data-trackingid="job-application-submit"]`,
			`//button[@type="submit" and contains(@class, "submit-step")]`,
		},
		FieldNextButton: {
			`//button[contains(text(), "Next") or contains(text(), "Continue")]`,
		},
	},
	Config: Config{Method: MethodReactive, MultiPage: true, WaitForLoad: time.Second},
}

var workdayAdapter = &Adapter{
	Name: "workday",
	Detect: func(s *Signals) float64 {
		score := 0.0
		if s.MatchURL(workdayURL...) {
			score += 0.6
		}
		if s.MatchHost(workdayURL...) {
			score += 0.3
		}
		if s.HTMLContains("workday") || s.Has("[data-automation-id]") {
			score += 0.1
		}
		return clamp(score)
	},
	Selectors: map[Field][]string{
		FieldFirstName: {
			`//input[@data-automation-id="legalNameSection_firstName"]`,
			`//input[contains(@aria-label, "First Name")]`,
		},
		FieldLastName: {
			`//input[@data-automation-id="legalNameSection_lastName"]`,
			`//input[contains(@aria-label, "Last Name")]`,
		},
		FieldEmail: {
			`//input[@data-automation-id="email"]`,
			`//input[contains(@aria-label, "Email")]`,
		},
		FieldPhone: {
			`//input[@data-automation-id="phone"]`,
			`//input[contains(@aria-label, "Phone")]`,
		},
		FieldSubmitButton: {
			`//button[@data-automation-id="bottom-navigation-next-button"]`,
			`//button[contains(text(), "Submit")]`,
		},
	},
	Config: Config{Method: MethodReactive, MultiPage: true, WaitForLoad: 1500 * time.Millisecond},
}

var leverAdapter = &Adapter{
	Name: "lever",
	Detect: func(s *Signals) float64 {
		score := 0.0
		if s.MatchURL(leverURL...) {
			score += 0.5
		}
		if s.MatchHost(leverURL...) {
			score += 0.3
		}
		if s.HTMLContains("lever") || s.Has(".application-form") {
			score += 0.2
		}
		return clamp(score)
	},
	Selectors: map[Field][]string{
		FieldFullName: {
			`//input[@name="name"]`,
			`//input[contains(@placeholder, "Name")]`,
		},
		FieldEmail: {
			`//input[@name="email"]`,
			`//input[@type="email"]`,
		},
		FieldPhone: {
			`//input[@name="phone"]`,
			`//input[@type="tel"]`,
		},
		FieldResume: {
			`//input[@name="resume" and @type="file"]`,
		},
		FieldSubmitButton: {
			`//button[@type="submit"]`,
			`//button[contains(text(), "Submit application")]`,
		},
	},
	Config: Config{Method: MethodNative, MultiPage: false, WaitForLoad: 800 * time.Millisecond},
}

var linkedinAdapter = &Adapter{
	Name: "linkedin",
	Detect: func(s *Signals) float64 {
		if strings.Contains(s.Hostname, "linkedin.com") && strings.Contains(s.URL, "/jobs/") {
			return 1.0
		}
		return 0
	},
	Selectors: map[Field][]string{
		FieldEasyApply: {
			`//button[contains(@class, "jobs-apply-button")]`,
			`//button[contains(., "Easy Apply")]`,
		},
		FieldPhone: {
			`//input[contains(@id, "phoneNumber")]`,
		},
		FieldSubmitButton: {
			`//button[contains(@aria-label, "Submit application")]`,
			`//button[contains(., "Submit application")]`,
		},
		FieldNextButton: {
			`//button[contains(@aria-label, "Continue")]`,
			`//button[contains(., "Next")]`,
		},
	},
	Config: Config{Method: MethodReactive, MultiPage: true, WaitForLoad: time.Second},
}

var ashbyAdapter = &Adapter{
	Name: "ashby",
	Detect: func(s *Signals) float64 {
		score := 0.0
		if s.MatchURL(ashbyURL...) {
			score += 0.6
		}
		if s.MatchHost(ashbyURL...) {
			score += 0.4
		}
		return clamp(score)
	},
	Selectors: map[Field][]string{
		FieldFullName: {
			`//input[@name="full_name"]`,
			`//input[@placeholder="Full name"]`,
		},
		FieldEmail: {
			`//input[@type="email"]`,
			`//input[@name="email"]`,
		},
		FieldPhone: {
			`//input[@type="tel"]`,
		},
		FieldResume: {
			`//input[@type="file"]`,
		},
		FieldSubmitButton: {
			`//button[contains(text(), "Submit Application")]`,
		},
	},
	Config: Config{Method: MethodReactive, MultiPage: true, WaitForLoad: time.Second},
}

var taleoAdapter = &Adapter{
	Name: "taleo",
	Detect: func(s *Signals) float64 {
		score := 0.0
		if s.MatchURL(taleoURL...) {
			score += 0.6
		}
		if s.MatchHost(taleoURL...) {
			score += 0.4
		}
		return clamp(score)
	},
	Selectors: map[Field][]string{
		FieldFirstName: {
			`//input[contains(@id, "FirstName")]`,
		},
		FieldLastName: {
			`//input[contains(@id, "LastName")]`,
		},
		FieldEmail: {
			`//input[contains(@id, "Email")]`,
		},
		FieldSubmitButton: {
			`//input[@type="submit"]`,
			`//button[@type="submit"]`,
		},
	},
	Config: Config{Method: MethodNative, MultiPage: true, WaitForLoad: 1200 * time.Millisecond},
}

var smartRecruitersAdapter = &Adapter{
	Name: "smartrecruiters",
	Detect: func(s *Signals) float64 {
		score := 0.0
		if s.MatchURL(smartURL...) {
			score += 0.6
		}
		if s.HTMLContains("smartrecruiters") {
			score += 0.4
		}
		return clamp(score)
	},
	Selectors: map[Field][]string{
		FieldFirstName: {
			`//input[@name="firstName"]`,
			`//input[@id="first-name"]`,
		},
		FieldLastName: {
			`//input[@name="lastName"]`,
			`//input[@id="last-name"]`,
		},
		FieldEmail: {
			`//input[@type="email"]`,
		},
		FieldPhone: {
			`//input[@type="tel"]`,
		},
		FieldSubmitButton: {
			`//button[@type="submit"]`,
		},
	},
	Config: Config{Method: MethodReactive, MultiPage: true, WaitForLoad: time.Second},
}

var icimsAdapter = &Adapter{
	Name: "icims",
	Detect: func(s *Signals) float64 {
		score := 0.0
		if s.MatchURL(icimsURL...) {
			score += 0.6
		}
		if s.HTMLContains("icims") {
			score += 0.4
		}
		return clamp(score)
	},
	Selectors: map[Field][]string{
		FieldFirstName: {
			`//input[contains(@id, "FirstName")]`,
		},
		FieldLastName: {
			`//input[contains(@id, "LastName")]`,
		},
		FieldEmail: {
			`//input[contains(@id, "Email")]`,
		},
		FieldSubmitButton: {
			`//input[@type="submit" and contains(@value, "Submit")]`,
		},
	},
	Config: Config{Method: MethodNative, MultiPage: true, WaitForLoad: time.Second},
}
