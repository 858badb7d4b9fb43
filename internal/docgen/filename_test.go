package docgen

import "testing"

func TestFileNameSanitizes(t *testing.T) {
	got := FileName("Resume", "Senior Dev/Eng!", "Acme & Co.")
	if got != "Resume_SeniorDevEng_AcmeCo.docx" {
		t.Fatalf("unexpected file name: %q", got)
	}
}

func TestFileNameCompanyFallback(t *testing.T) {
	got := FileName("CoverLetter", "Backend Engineer", "")
	if got != "CoverLetter_BackendEngineer_Job.docx" {
		t.Fatalf("unexpected file name: %q", got)
	}
}

func TestFileNameMissingJobTitle(t *testing.T) {
	got := FileName("Resume", "", "Acme")
	if got != "Resume.docx" {
		t.Fatalf("unexpected file name: %q", got)
	}
}
