package tailor

import "testing"

func TestStripMarkdown(t *testing.T) {
	got := StripMarkdown("**Bold** and ### Heading and * bullet")
	want := "Bold and  Heading and  bullet"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestStripMarkdownIdempotent(t *testing.T) {
	inputs := []string{
		"**Bold** and ### Heading and * bullet",
		"## Section\n- plain item\n#### deep heading",
		"no markers at all",
		"",
	}
	for _, in := range inputs {
		once := StripMarkdown(in)
		twice := StripMarkdown(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestStripMarkdownTripleHashLeavesNoDanglingHash(t *testing.T) {
	got := StripMarkdown("### Professional Experience")
	if got != " Professional Experience" {
		t.Fatalf("unexpected: %q", got)
	}
}
