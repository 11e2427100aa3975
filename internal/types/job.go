package types

// JobPosting represents a scraped or structured job posting supplied by the
// host application. Absent fields default to empty strings so downstream
// string operations stay total; sanitization happens once per analysis in
// the extraction package.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	// Requirements and Qualifications are description aliases some scrapers
	// populate instead of Description; sanitization folds them in.
	Requirements   string `json:"requirements,omitempty"`
	Qualifications string `json:"qualifications,omitempty"`
	Salary         string `json:"salary,omitempty"`
	URL            string `json:"url,omitempty"`
}
