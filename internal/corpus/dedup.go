package corpus

// DedupOptions controls duplicate detection for one language stream.
type DedupOptions struct {
	NearDup          bool
	JaccardThreshold float64
	NGram            int
}

// DedupResult reports what happened to one language stream.
type DedupResult struct {
	Kept      []Record
	Input     int
	ExactDups int
	NearDups  int
}

// Dedup removes exact and, when enabled, near duplicates from records.
// The first occurrence always wins. Text is flattened before
// fingerprinting so whitespace-only variants collide; kept records carry
// the flattened text and a dedup trace entry. Records whose text
// flattens to empty are dropped without counting as duplicates.
func Dedup(records []Record, opts DedupOptions) DedupResult {
	result := DedupResult{
		Kept:  make([]Record, 0, len(records)),
		Input: len(records),
	}

	seen := make(map[string]bool, len(records))
	signatures := make([]map[string]struct{}, 0)

	for _, rec := range records {
		text := NormalizeInline(rec.Text)
		if text == "" {
			continue
		}

		fingerprint := Fingerprint(text)
		if seen[fingerprint] {
			result.ExactDups++
			continue
		}

		if opts.NearDup {
			signature := Signature(text, opts.NGram)
			if nearDuplicateOfAny(signature, signatures, opts.JaccardThreshold) {
				result.NearDups++
				continue
			}
			signatures = append(signatures, signature)
		}

		seen[fingerprint] = true
		rec.Text = text
		result.Kept = append(result.Kept, rec.WithTrace("dedup", "kept"))
	}
	return result
}

// nearDuplicateOfAny compares a signature against the signatures of all
// previously kept records. This is O(n²) over kept records. It is
// acceptable for the current corpus sizes, but larger datasets should
// switch to an indexed approach (for example MinHash/LSH) to reduce
// pairwise comparisons.
func nearDuplicateOfAny(
	signature map[string]struct{},
	kept []map[string]struct{},
	threshold float64,
) bool {
	for _, current := range kept {
		if Jaccard(signature, current) >= threshold {
			return true
		}
	}
	return false
}
