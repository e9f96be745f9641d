package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oteomoura/klingon-lid-experiment/internal/lid"
)

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	if err := run(nil); err == nil {
		t.Fatal("expected usage error for empty args")
	}
	if err := run([]string{"unknown"}); err == nil {
		t.Fatal("expected usage error for unknown command")
	}
}

func TestRun_FlagValidation(t *testing.T) {
	t.Parallel()

	if err := run([]string{"classify"}); err == nil {
		t.Fatal("expected classify flag error")
	}
	if err := run([]string{"control"}); err == nil {
		t.Fatal("expected control flag error")
	}
}

func TestRunClassify_WritesArtifact(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sentencesPath := filepath.Join(dir, "sentences.json")
	predictionsPath := filepath.Join(dir, "predictions.jsonl")
	outPath := filepath.Join(dir, "lid_results.json")

	sentences := map[string][]string{
		"quc": {"are che'", "utz awäch"},
		"pt":  {"bom dia"},
	}
	writeJSONFile(t, sentencesPath, sentences)

	predictions := strings.Join([]string{
		`{"text": "are che'", "labels": ["__label__quc_Latn"], "confidences": [0.8]}`,
		`{"text": "utz awäch", "labels": ["__label__tlh_Latn"], "confidences": [0.6]}`,
		`{"text": "bom dia", "labels": ["__label__pt_Latn"], "confidences": [0.95]}`,
	}, "\n") + "\n"
	if err := os.WriteFile(predictionsPath, []byte(predictions), 0o644); err != nil {
		t.Fatalf("write predictions: %v", err)
	}

	err := run([]string{
		"classify",
		"--sentences", sentencesPath,
		"--predictions", predictionsPath,
		"--name", "low-resource language identification",
		"--out", outPath,
	})
	if err != nil {
		t.Fatalf("run classify: %v", err)
	}

	artifact, err := lid.LoadArtifact(outPath)
	if err != nil {
		t.Fatalf("LoadArtifact: %v", err)
	}
	quc := artifact.LanguageStats["quc"]
	if quc.Accuracy != 50.0 {
		t.Fatalf("quc accuracy = %v, want 50.0", quc.Accuracy)
	}
	if quc.KlingonRate != 50.0 {
		t.Fatalf("quc klingon rate = %v, want 50.0", quc.KlingonRate)
	}
	if artifact.LanguageStats["pt"].Accuracy != 100.0 {
		t.Fatalf("pt accuracy = %v, want 100.0", artifact.LanguageStats["pt"].Accuracy)
	}
	if artifact.Summary.TotalLanguages != 2 {
		t.Fatalf("summary = %+v", artifact.Summary)
	}
}

func TestRunControl_WritesArtifact(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "phrases.txt")
	predictionsPath := filepath.Join(dir, "predictions.jsonl")
	outPath := filepath.Join(dir, "klingon_control_results.json")

	phrases := strings.Join([]string{
		"Heghlu'meH QaQ jajvam",
		"http://klingon.example/source",
		"tlhIngan Hol vIjatlh = I speak Klingon",
	}, "\n") + "\n"
	if err := os.WriteFile(inputPath, []byte(phrases), 0o644); err != nil {
		t.Fatalf("write phrases: %v", err)
	}

	predictions := strings.Join([]string{
		`{"text": "Heghlu'meH QaQ jajvam", "labels": ["__label__tlh_Latn"], "confidences": [0.99]}`,
		`{"text": "tlhIngan Hol vIjatlh", "labels": ["__label__tlh_Latn"], "confidences": [0.97]}`,
	}, "\n") + "\n"
	if err := os.WriteFile(predictionsPath, []byte(predictions), 0o644); err != nil {
		t.Fatalf("write predictions: %v", err)
	}

	err := run([]string{
		"control",
		"--input", inputPath,
		"--predictions", predictionsPath,
		"--out", outPath,
	})
	if err != nil {
		t.Fatalf("run control: %v", err)
	}

	artifact, err := lid.LoadArtifact(outPath)
	if err != nil {
		t.Fatalf("LoadArtifact: %v", err)
	}
	klingon := artifact.LanguageStats["klingon"]
	if klingon.TotalSentences != 2 || klingon.Accuracy != 100.0 {
		t.Fatalf("klingon stats = %+v, want 2 sentences all correct", klingon)
	}
	// Correct Klingon identifications are not confounder drift.
	if klingon.KlingonPredictions != 0 {
		t.Fatalf("klingon confounder tally = %d, want 0", klingon.KlingonPredictions)
	}
}

func TestRunControl_NoSentencesFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "phrases.txt")
	predictionsPath := filepath.Join(dir, "predictions.jsonl")
	if err := os.WriteFile(inputPath, []byte("nothing klingon here\n"), 0o644); err != nil {
		t.Fatalf("write phrases: %v", err)
	}
	if err := os.WriteFile(predictionsPath, []byte("\n"), 0o644); err != nil {
		t.Fatalf("write predictions: %v", err)
	}

	err := run([]string{"control", "--input", inputPath, "--predictions", predictionsPath})
	if err == nil || !strings.Contains(err.Error(), "no control sentences") {
		t.Fatalf("expected no-sentences error, got %v", err)
	}
}

func TestRunReport_MergesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	lowPath := filepath.Join(dir, "low.json")
	majorPath := filepath.Join(dir, "major.json")
	controlPath := filepath.Join(dir, "control.json")
	outPath := filepath.Join(dir, "comprehensive.json")

	saveArtifact(t, lowPath, "quc", 45)
	saveArtifact(t, majorPath, "pt", 95)
	saveArtifact(t, controlPath, "klingon", 100)

	err := run([]string{
		"report",
		"--low", lowPath,
		"--major", majorPath,
		"--control", controlPath,
		"--out", outPath,
	})
	if err != nil {
		t.Fatalf("run report: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var comp lid.Comprehensive
	if err := json.Unmarshal(data, &comp); err != nil {
		t.Fatalf("parse report: %v", err)
	}
	if comp.Summary.TotalLanguages != 3 {
		t.Fatalf("TotalLanguages = %d, want 3", comp.Summary.TotalLanguages)
	}
	if comp.AllStats["pt"].Accuracy != 95 {
		t.Fatalf("AllStats[pt] = %+v", comp.AllStats["pt"])
	}
}

func TestRunReport_MissingArtifactFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := run([]string{"report", "--low", filepath.Join(dir, "absent.json")})
	if err == nil {
		t.Fatal("expected error for missing artifact")
	}
}

func writeJSONFile(t *testing.T, path string, value any) {
	t.Helper()
	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal json: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write json %s: %v", path, err)
	}
}

func saveArtifact(t *testing.T, path string, code string, accuracy float64) {
	t.Helper()
	artifact := lid.Artifact{
		Results: map[string]*lid.LanguageResult{
			code: {Predictions: []string{"x"}, Other: map[string]int{}},
		},
		LanguageStats: map[string]lid.LanguageStats{
			code: {TotalSentences: 20, CorrectPredictions: int(accuracy / 5), Accuracy: accuracy},
		},
	}
	if err := lid.SaveArtifact(path, artifact); err != nil {
		t.Fatalf("SaveArtifact %s: %v", path, err)
	}
}
