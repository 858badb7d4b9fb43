package docgen

import "tailor-backend/internal/shared/util"

// FileName builds the download name for a generated document. The stem keeps
// only alphanumeric characters from the extracted job title and company name;
// a missing company falls back to "Job" and a missing job title collapses the
// stem to just the kind.
func FileName(kind, jobTitle, companyName string) string {
	stem := kind
	if cleanJob := util.AlphaNumeric(jobTitle); cleanJob != "" {
		cleanCompany := util.AlphaNumeric(companyName)
		if cleanCompany == "" {
			cleanCompany = "Job"
		}
		stem = kind + "_" + cleanJob + "_" + cleanCompany
	}
	return stem + ".docx"
}
