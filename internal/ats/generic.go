package ats

import "time"

// GenericAdapter is the table's catch-all. Its detect score is a flat 0.1 so
// it never outranks a real signature; when nothing reaches the detection
// threshold the detector returns it with a fixed 0.5 confidence. Its
// selectors rely on attribute and label-text heuristics instead of
// site-specific anchors: case-folded attribute containment (the translate()
// calls), autocomplete hints, and label-then-following-input traversal.
var GenericAdapter = &Adapter{
	Name:   "generic",
	Detect: func(*Signals) float64 { return 0.1 },
	Selectors: map[Field][]string{
		FieldFirstName: {
			`//input[@id="first_name" or @id="firstName" or @name="first_name" or @name="firstName"]`,
			`//input[contains(translate(@name, "FIRST", "first"), "first")]`,
			`//input[contains(translate(@id, "FIRST", "first"), "first")]`,
			`//label[contains(translate(., "FIRST NAME", "first name"), "first name")]/following::input[@type="text"][1]`,
			`//input[contains(@autocomplete, "given-name")]`,
			`//input[@placeholder and contains(translate(@placeholder, "FIRST", "first"), "first")]`,
		},
		FieldLastName: {
			`//input[@id="last_name" or @id="lastName" or @name="last_name" or @name="lastName"]`,
			`//input[contains(translate(@name, "LAST", "last"), "last")]`,
			`//input[contains(translate(@id, "LAST", "last"), "last")]`,
			`//label[contains(translate(., "LAST NAME", "last name"), "last name")]/following::input[@type="text"][1]`,
			`//input[contains(@autocomplete, "family-name")]`,
		},
		FieldFullName: {
			`//input[@id="full_name" or @id="fullName" or @id="name"]`,
			`//input[@name="full_name" or @name="fullName" or @name="name"]`,
			`//label[contains(translate(., "FULL NAME", "full name"), "full name")]/following::input[@type="text"][1]`,
		},
		FieldEmail: {
			`//input[@type="email"]`,
			`//input[@id="email" or @name="email"]`,
			`//input[contains(translate(@name, "EMAIL", "email"), "email")]`,
			`//input[contains(@autocomplete, "email")]`,
			`//label[contains(translate(., "EMAIL", "email"), "email")]/following::input[1]`,
		},
		FieldPhone: {
			`//input[@type="tel"]`,
			`//input[@id="phone" or @name="phone"]`,
			`//input[contains(translate(@name, "PHONE", "phone"), "phone")]`,
			`//input[contains(@autocomplete, "tel")]`,
			`//label[contains(translate(., "PHONE", "phone"), "phone")]/following::input[1]`,
		},
		FieldCurrentCompany: {
			`//input[@id="current_company" or @name="current_company" or @name="currentCompany"]`,
			`//input[contains(translate(@name, "COMPANY", "company"), "company")]`,
			`//label[contains(translate(., "CURRENT COMPANY", "current company"), "current company")]/following::input[@type="text"][1]`,
		},
		FieldCurrentTitle: {
			`//input[@id="current_title" or @name="current_title" or @name="currentTitle"]`,
			`//input[contains(translate(@name, "TITLE", "title"), "title")]`,
			`//label[contains(translate(., "JOB TITLE", "job title"), "job title")]/following::input[@type="text"][1]`,
		},
		FieldYearsExperience: {
			`//input[@id="years_experience" or @name="years_experience"]`,
			`//input[contains(translate(@name, "EXPERIENCE", "experience"), "experience")]`,
			`//select[contains(translate(@name, "EXPERIENCE", "experience"), "experience")]`,
		},
		FieldLinkedIn: {
			`//input[@id="linkedin" or @name="linkedin"]`,
			`//input[contains(translate(@name, "LINKEDIN", "linkedin"), "linkedin")]`,
			`//label[contains(translate(., "LINKEDIN", "linkedin"), "linkedin")]/following::input[@type="text" or @type="url"][1]`,
		},
		FieldGitHub: {
			`//input[@id="github" or @name="github"]`,
			`//input[contains(translate(@name, "GITHUB", "github"), "github")]`,
		},
		FieldPortfolio: {
			`//input[@id="portfolio" or @name="portfolio" or @name="website"]`,
			`//input[contains(translate(@name, "PORTFOLIO", "portfolio"), "portfolio")]`,
			`//label[contains(translate(., "WEBSITE", "website"), "website")]/following::input[@type="url" or @type="text"][1]`,
		},
		FieldCity: {
			`//input[@id="city" or @name="city"]`,
			`//input[contains(translate(@name, "CITY", "city"), "city")]`,
		},
		FieldState: {
			`//select[@id="state" or @name="state"]`,
			`//select[contains(translate(@name, "STATE", "state"), "state")]`,
		},
		FieldZipCode: {
			`//input[@id="zip" or @id="zipcode" or @id="postal_code"]`,
			`//input[@name="zip" or @name="zipcode" or @name="postal_code"]`,
			`//input[contains(translate(@name, "ZIP", "zip"), "zip")]`,
		},
		FieldSchool: {
			`//input[@id="school" or @name="school" or @name="university"]`,
			`//input[contains(translate(@name, "SCHOOL", "school"), "school")]`,
		},
		FieldDegree: {
			`//select[@id="degree" or @name="degree"]`,
			`//select[contains(translate(@name, "DEGREE", "degree"), "degree")]`,
		},
		FieldResume: {
			`//input[@type="file" and contains(translate(@name, "RESUME", "resume"), "resume")]`,
			`//label[contains(translate(., "RESUME", "resume"), "resume")]/following::input[@type="file"][1]`,
		},
		FieldCoverLetter: {
			`//textarea[@id="cover_letter" or @name="cover_letter" or @name="coverLetter"]`,
			`//textarea[contains(translate(@name, "COVER", "cover"), "cover")]`,
		},
		FieldSubmitButton: {
			`//button[@type="submit"]`,
			`//input[@type="submit"]`,
			`//button[contains(translate(., "SUBMIT", "submit"), "submit")]`,
			`//button[contains(translate(., "APPLY", "apply"), "apply")]`,
		},
		FieldNextButton: {
			`//button[contains(translate(., "NEXT", "next"), "next")]`,
			`//button[contains(translate(., "CONTINUE", "continue"), "continue")]`,
			`//input[@type="button" and contains(translate(@value, "NEXT", "next"), "next")]`,
		},
	},
	Config: Config{Method: MethodAuto, MultiPage: true, WaitForLoad: 500 * time.Millisecond},
}
