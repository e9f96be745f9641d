package corpus

import "unicode/utf8"

// Split label constants.
const (
	SplitTrain = "train"
	SplitDev   = "dev"
	SplitTest  = "test"
)

// Length bucket labels used by the stratified splitter.
const (
	BucketShort  = "short"
	BucketMedium = "medium"
	BucketLong   = "long"
)

// ScriptTag summarizes the Unicode script composition of a record's text.
// Counts holds per-script character tallies for the scripts that occur.
type ScriptTag struct {
	Primary      string         `json:"primary"`
	PrimaryRatio float64        `json:"primary_ratio"`
	Counts       map[string]int `json:"counts,omitempty"`
}

// Record is one sentence or snippet flowing through the pipeline.
// Script and IsRomanized stay nil until the tagging stage runs.
type Record struct {
	Text        string            `json:"text"`
	Title       string            `json:"title,omitempty"`
	URL         string            `json:"url,omitempty"`
	License     string            `json:"license,omitempty"`
	Source      string            `json:"source,omitempty"`
	Domain      string            `json:"domain,omitempty"`
	Lang        string            `json:"lang,omitempty"`
	Code        string            `json:"code,omitempty"`
	LenChars    int               `json:"len_chars,omitempty"`
	Script      *ScriptTag        `json:"script,omitempty"`
	IsRomanized *bool             `json:"is_romanized,omitempty"`
	Trace       map[string]string `json:"trace,omitempty"`
}

// StratumSource returns the stratification source key: the source name,
// falling back to the domain, then to "unknown".
func (r Record) StratumSource() string {
	if r.Source != "" {
		return r.Source
	}
	if r.Domain != "" {
		return r.Domain
	}
	return "unknown"
}

// Romanized reports whether the record was flagged romanized by the
// tagging stage. Untagged records count as not romanized.
func (r Record) Romanized() bool {
	return r.IsRomanized != nil && *r.IsRomanized
}

// WithTrace returns a copy of the record with a trace entry added.
// The original trace map is never mutated.
func (r Record) WithTrace(key string, value string) Record {
	trace := make(map[string]string, len(r.Trace)+1)
	for k, v := range r.Trace {
		trace[k] = v
	}
	trace[key] = value
	r.Trace = trace
	return r
}

func lengthBucket(text string, shortMax int, mediumMax int) string {
	n := utf8.RuneCountInString(text)
	if n <= shortMax {
		return BucketShort
	}
	if n <= mediumMax {
		return BucketMedium
	}
	return BucketLong
}
