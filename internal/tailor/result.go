package tailor

// FileMeta carries the job title and company name the model extracted from
// the job description. Either may be empty; filename construction tolerates
// that downstream.
type FileMeta struct {
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
}

// Result is the tailored output returned to the caller. RewrittenResume and
// CoverLetter are always non-empty on success.
type Result struct {
	Files           *FileMeta `json:"files,omitempty"`
	RewrittenResume string    `json:"rewrittenResume"`
	CoverLetter     string    `json:"coverLetter"`
}
