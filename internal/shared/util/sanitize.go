package util

import "strings"

// AlphaNumeric keeps only ASCII letters and digits, dropping everything else.
// Used to build download file name stems from model-extracted titles.
func AlphaNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
