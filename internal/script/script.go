// Package script classifies text by Unicode script membership.
package script

import "unicode"

// Names lists the scripts tallied by Counts: the writing systems that
// occur across the corpus languages. Characters outside these scripts
// are not counted.
var Names = []string{
	"Latin", "Cyrillic", "Greek", "Arabic", "Hebrew", "Devanagari",
	"Ethiopic", "Georgian", "Lao", "Khmer", "Myanmar", "Thai",
	"Han", "Hiragana", "Katakana", "Hangul", "Tibetan",
}

// Known reports whether name is one of the tallied scripts.
func Known(name string) bool {
	for _, known := range Names {
		if known == name {
			return true
		}
	}
	return false
}

// Counts tallies characters per script for the scripts in Names.
// Whitespace and unlisted characters are ignored.
func Counts(text string) map[string]int {
	counts := make(map[string]int)
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		for _, name := range Names {
			if unicode.Is(unicode.Scripts[name], r) {
				counts[name]++
				break
			}
		}
	}
	return counts
}

// Primary returns the dominant script and its share of all counted
// characters. Ties break toward the lexically smaller name so the
// result is stable. Empty counts yield "Unknown" with a zero ratio.
func Primary(counts map[string]int) (string, float64) {
	if len(counts) == 0 {
		return "Unknown", 0
	}
	best := ""
	bestCount := -1
	total := 0
	for name, count := range counts {
		total += count
		if count > bestCount || (count == bestCount && name < best) {
			best = name
			bestCount = count
		}
	}
	if total == 0 {
		return "Unknown", 0
	}
	return best, float64(bestCount) / float64(total)
}
