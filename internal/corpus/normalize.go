package corpus

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var spaceRuns = regexp.MustCompile(`[ \t]{2,}`)

// Normalize applies the Unicode normalization form and minimal whitespace
// cleanup without altering the script of the text: newlines are
// standardized to \n, runs of spaces and tabs collapse to one space,
// lines are trimmed, and a leading BOM is stripped. Paragraph structure
// is preserved.
func Normalize(text string, form norm.Form) string {
	s := form.String(text)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = spaceRuns.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	s = strings.Join(lines, "\n")
	return strings.TrimPrefix(s, "\uFEFF")
}

// NormalizeInline flattens text to a single NFC line, collapsing every
// whitespace run to one space. Duplicate detection fingerprints this
// form so whitespace-only variants collide.
func NormalizeInline(text string) string {
	return strings.Join(strings.Fields(norm.NFC.String(text)), " ")
}

// ParseForm maps a normalization form name (NFC, NFD, NFKC, NFKD) to
// its x/text form.
func ParseForm(name string) (norm.Form, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "NFC":
		return norm.NFC, nil
	case "NFD":
		return norm.NFD, nil
	case "NFKC":
		return norm.NFKC, nil
	case "NFKD":
		return norm.NFKD, nil
	}
	return norm.NFC, fmt.Errorf("unknown normalization form %q", name)
}
