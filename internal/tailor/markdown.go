package tailor

import "strings"

// StripMarkdown removes emphasis and heading markers the model tends to leave
// in plain-text fields. Double asterisks are stripped before single ones and
// longer hash runs before shorter ones, so "###" never leaves a dangling "#".
// The function is idempotent.
func StripMarkdown(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "*", "")
	s = strings.ReplaceAll(s, "###", "")
	s = strings.ReplaceAll(s, "##", "")
	s = strings.ReplaceAll(s, "#", "")
	return s
}
