package lid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact is the JSON document one experiment run produces: the raw
// outcomes, their per-language analysis, and the roll-up summary.
type Artifact struct {
	Results       map[string]*LanguageResult `json:"results"`
	LanguageStats map[string]LanguageStats   `json:"language_stats"`
	Summary       Summary                    `json:"summary"`
}

// NewArtifact bundles classification results with their analysis.
func NewArtifact(results *Results, stats map[string]LanguageStats) Artifact {
	return Artifact{
		Results:       results.ByLang,
		LanguageStats: stats,
		Summary:       Summarize(stats),
	}
}

// SaveArtifact writes an artifact as indented JSON with HTML escaping
// disabled so non-Latin sentences survive byte for byte.
func SaveArtifact(path string, artifact Artifact) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(artifact); err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// LoadArtifact reads an experiment artifact.
func LoadArtifact(path string) (Artifact, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("read artifact: %w", err)
	}
	var artifact Artifact
	if err := json.Unmarshal(content, &artifact); err != nil {
		return Artifact{}, fmt.Errorf("parse artifact json: %w", err)
	}
	return artifact, nil
}
