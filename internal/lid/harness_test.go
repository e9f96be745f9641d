package lid

import (
	"errors"
	"testing"
)

// fakeOracle serves canned predictions keyed by sentence text and fails
// for sentences it has no entry for.
type fakeOracle struct {
	labels      map[string]string
	confidences map[string]float64
}

func (o *fakeOracle) Predict(text string, k int) ([]string, []float64, error) {
	label, ok := o.labels[text]
	if !ok {
		return nil, nil, errors.New("model unavailable")
	}
	return []string{label}, []float64{o.confidences[text]}, nil
}

func TestClassify_CountsVariantHitsAsCorrect(t *testing.T) {
	t.Parallel()

	oracle := &fakeOracle{
		labels: map[string]string{
			"first":  "__label__kal_Latn",
			"second": "__label__kal",
			"third":  "__label__dan_Latn",
		},
		confidences: map[string]float64{"first": 0.9, "second": 0.8, "third": 0.4},
	}
	batches := []Batch{{Lang: "kal", Sentences: []string{"first", "second", "third"}}}

	results := Classify(oracle, batches, Options{})
	lr := results.ByLang["kal"]
	if lr.Correct != 2 {
		t.Fatalf("Correct = %d, want 2", lr.Correct)
	}
	if lr.Other["__label__dan_Latn"] != 1 {
		t.Fatalf("Other = %v, want dan_Latn once", lr.Other)
	}
	if len(lr.Predictions) != 3 || len(lr.Confidences) != 3 {
		t.Fatalf("predictions/confidences = %d/%d, want 3/3", len(lr.Predictions), len(lr.Confidences))
	}
}

func TestClassify_AppliesCodeMapping(t *testing.T) {
	t.Parallel()

	// The project code "klingon" maps to the oracle's "tlh"; without the
	// mapping no variant would match.
	oracle := &fakeOracle{
		labels:      map[string]string{"Heghlu'meH QaQ jajvam": "__label__tlh_Latn"},
		confidences: map[string]float64{"Heghlu'meH QaQ jajvam": 0.99},
	}
	batches := []Batch{{Lang: "klingon", Sentences: []string{"Heghlu'meH QaQ jajvam"}}}

	results := Classify(oracle, batches, Options{
		CodeMapping:     map[string]string{"klingon": "tlh"},
		ConfounderLabel: "__label__tlh_Latn",
	})
	lr := results.ByLang["klingon"]
	if lr.Correct != 1 {
		t.Fatalf("Correct = %d, want 1", lr.Correct)
	}
	// The variant check runs first, so the confounder tally stays zero
	// for Klingon itself.
	if lr.Klingon != 0 {
		t.Fatalf("Klingon = %d, want 0", lr.Klingon)
	}
}

func TestClassify_TalliesConfounderSeparately(t *testing.T) {
	t.Parallel()

	oracle := &fakeOracle{
		labels: map[string]string{
			"drifted":    "__label__tlh_Latn",
			"plain miss": "__label__eng_Latn",
		},
		confidences: map[string]float64{"drifted": 0.7, "plain miss": 0.6},
	}
	batches := []Batch{{Lang: "quc", Sentences: []string{"drifted", "plain miss"}}}

	results := Classify(oracle, batches, Options{ConfounderLabel: "__label__tlh_Latn"})
	lr := results.ByLang["quc"]
	if lr.Klingon != 1 {
		t.Fatalf("Klingon = %d, want 1", lr.Klingon)
	}
	if lr.Other["__label__eng_Latn"] != 1 {
		t.Fatalf("Other = %v", lr.Other)
	}
	if lr.Correct != 0 {
		t.Fatalf("Correct = %d, want 0", lr.Correct)
	}
}

func TestClassify_SkipsOracleFailures(t *testing.T) {
	t.Parallel()

	oracle := &fakeOracle{
		labels:      map[string]string{"known": "__label__mam_Latn"},
		confidences: map[string]float64{"known": 0.8},
	}
	batches := []Batch{{Lang: "mam", Sentences: []string{"known", "unknown"}}}

	results := Classify(oracle, batches, Options{})
	lr := results.ByLang["mam"]
	if len(lr.Predictions) != 1 {
		t.Fatalf("len(Predictions) = %d, want 1 (failure skipped)", len(lr.Predictions))
	}
	if lr.Correct != 1 {
		t.Fatalf("Correct = %d, want 1", lr.Correct)
	}

	stats := Analyze(results)
	if stats["mam"].TotalSentences != 1 {
		t.Fatalf("TotalSentences = %d, want 1", stats["mam"].TotalSentences)
	}
	if stats["mam"].Accuracy != 100.0 {
		t.Fatalf("Accuracy = %v, want 100.0", stats["mam"].Accuracy)
	}
}

func TestClassify_PreservesBatchOrder(t *testing.T) {
	t.Parallel()

	oracle := &fakeOracle{labels: map[string]string{}, confidences: map[string]float64{}}
	batches := []Batch{
		{Lang: "yua", Sentences: nil},
		{Lang: "arn", Sentences: nil},
		{Lang: "nav", Sentences: nil},
	}

	results := Classify(oracle, batches, Options{})
	want := []string{"yua", "arn", "nav"}
	for i, lang := range want {
		if results.Order[i] != lang {
			t.Fatalf("Order = %v, want %v", results.Order, want)
		}
	}
}
