package lid

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArtifactRoundTrip(t *testing.T) {
	t.Parallel()

	results := &Results{
		Order: []string{"am"},
		ByLang: map[string]*LanguageResult{
			"am": {
				Predictions: []string{"__label__amh_Ethi"},
				Confidences: []float64{0.97},
				Correct:     1,
				Other:       map[string]int{},
			},
		},
	}
	artifact := NewArtifact(results, Analyze(results))

	path := filepath.Join(t.TempDir(), "results", "lid_results.json")
	if err := SaveArtifact(path, artifact); err != nil {
		t.Fatalf("SaveArtifact: %v", err)
	}

	got, err := LoadArtifact(path)
	if err != nil {
		t.Fatalf("LoadArtifact: %v", err)
	}
	if got.Results["am"].Correct != 1 {
		t.Fatalf("Results[am] = %+v", got.Results["am"])
	}
	if got.LanguageStats["am"].Accuracy != 100.0 {
		t.Fatalf("Accuracy = %v, want 100.0", got.LanguageStats["am"].Accuracy)
	}
	if got.Summary.TotalLanguages != 1 {
		t.Fatalf("Summary = %+v", got.Summary)
	}
}

func TestSaveArtifact_SnakeCaseFieldNames(t *testing.T) {
	t.Parallel()

	results := &Results{
		Order: []string{"ka"},
		ByLang: map[string]*LanguageResult{
			"ka": {Predictions: []string{"x"}, Confidences: []float64{0.5}, Other: map[string]int{}},
		},
	}
	path := filepath.Join(t.TempDir(), "artifact.json")
	if err := SaveArtifact(path, NewArtifact(results, Analyze(results))); err != nil {
		t.Fatalf("SaveArtifact: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	for _, key := range []string{
		`"language_stats"`,
		`"correct_predictions"`,
		`"klingon_predictions"`,
		`"most_common_misclassifications"`,
		`"average_confidence"`,
		`"total_languages"`,
	} {
		if !strings.Contains(string(data), key) {
			t.Fatalf("artifact missing key %s:\n%s", key, data)
		}
	}
}

func TestLoadArtifact_Errors(t *testing.T) {
	t.Parallel()

	if _, err := LoadArtifact(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing artifact")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadArtifact(path); err == nil || !strings.Contains(err.Error(), "parse artifact json") {
		t.Fatalf("expected parse error, got %v", err)
	}
}
