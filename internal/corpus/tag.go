package corpus

import (
	"math"

	"github.com/oteomoura/klingon-lid-experiment/internal/script"
)

// TagOptions controls script tagging for one language stream.
type TagOptions struct {
	// Expected maps a language code to its expected script. Languages
	// not listed are assumed to expect Latin.
	Expected map[string]string

	// Groups maps a language code to the set of scripts that all count
	// as native, for languages written in several scripts at once.
	Groups map[string][]string

	// LatinThreshold is the minimum Latin character share that flags a
	// non-Latin language as romanized.
	LatinThreshold float64
}

// TagResult reports tagging counts for one language stream.
type TagResult struct {
	Tagged        []Record
	Lines         int
	LatinMajority int
	RomanizedEst  int
}

// TagScripts annotates every record with its script composition and a
// romanization estimate for the language.
func TagScripts(records []Record, lang string, opts TagOptions) TagResult {
	result := TagResult{
		Tagged: make([]Record, 0, len(records)),
		Lines:  len(records),
	}

	for _, rec := range records {
		counts := script.Counts(rec.Text)
		primary, ratio := script.Primary(counts)
		romanized := isRomanized(lang, primary, ratio, opts)

		if primary == "Latin" && ratio >= opts.LatinThreshold {
			result.LatinMajority++
		}
		if romanized {
			result.RomanizedEst++
		}

		rec.Script = &ScriptTag{
			Primary:      primary,
			PrimaryRatio: math.Round(ratio*10000) / 10000,
			Counts:       counts,
		}
		rec.IsRomanized = &romanized
		result.Tagged = append(result.Tagged, rec)
	}
	return result
}

// isRomanized estimates whether a line is a romanized rendering of a
// language normally written in another script. Languages with a native
// script group are never romanized while their primary script is in the
// group; otherwise a Latin majority at or above the threshold flags the
// line when the expected script is not Latin.
func isRomanized(lang string, primary string, ratio float64, opts TagOptions) bool {
	if group, ok := opts.Groups[lang]; ok && len(group) > 0 {
		for _, name := range group {
			if name == primary {
				return false
			}
		}
		return primary == "Latin" && ratio >= opts.LatinThreshold
	}

	expected := opts.Expected[lang]
	if expected == "" {
		expected = "Latin"
	}
	return expected != "Latin" && primary == "Latin" && ratio >= opts.LatinThreshold
}
