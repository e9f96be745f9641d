package corpus

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// CleanOptions controls normalization and length filtering.
type CleanOptions struct {
	Form     norm.Form
	MinChars int
	MaxChars int
}

// Clean normalizes record text and drops records whose text normalizes
// to empty or falls outside the configured length bounds. LenChars is
// set on every kept record. A MaxChars of zero disables the upper bound.
func Clean(records []Record, opts CleanOptions) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		text := Normalize(rec.Text, opts.Form)
		if text == "" {
			continue
		}
		chars := utf8.RuneCountInString(text)
		if chars < opts.MinChars {
			continue
		}
		if opts.MaxChars > 0 && chars > opts.MaxChars {
			continue
		}
		rec.Text = text
		rec.LenChars = chars
		out = append(out, rec)
	}
	return out
}
