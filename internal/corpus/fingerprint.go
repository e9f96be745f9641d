package corpus

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Fingerprint returns the SHA-256 hex digest of the text. Exact
// duplicates are records whose flattened texts share a fingerprint.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Signature returns the set of character n-grams of the text after NFKC
// case folding. Grams are cut on rune boundaries. Texts shorter than n
// yield a single whole-text gram; empty text yields an empty set.
func Signature(text string, n int) map[string]struct{} {
	t := strings.ToLower(norm.NFKC.String(text))
	runes := []rune(t)
	if len(runes) < n {
		if t == "" {
			return map[string]struct{}{}
		}
		return map[string]struct{}{t: {}}
	}
	grams := make(map[string]struct{}, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		grams[string(runes[i:i+n])] = struct{}{}
	}
	return grams
}

// Jaccard returns set intersection over union. Empty sets score zero.
func Jaccard(a map[string]struct{}, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for gram := range a {
		if _, ok := b[gram]; ok {
			intersection++
		}
	}
	if intersection == 0 {
		return 0
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
