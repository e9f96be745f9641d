// Package lid runs language identification experiments against an
// external classifier and aggregates the outcomes.
package lid

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Oracle is the classifier under test. Predict returns up to k labels
// with their confidences, best first.
type Oracle interface {
	Predict(text string, k int) ([]string, []float64, error)
}

// ErrNoPrediction is returned by ReplayOracle for sentences absent from
// the replay file.
var ErrNoPrediction = errors.New("no recorded prediction for sentence")

type replayEntry struct {
	Labels      []string  `json:"labels"`
	Confidences []float64 `json:"confidences"`
}

type replayLine struct {
	Text string `json:"text"`
	replayEntry
}

// ReplayOracle serves predictions recorded from an external model run.
// The replay file is JSONL, one object per sentence:
//
//	{"text": "...", "labels": ["__label__eng_Latn"], "confidences": [0.98]}
//
// Lookup is by exact sentence text. Later entries for the same text
// override earlier ones.
type ReplayOracle struct {
	byText map[string]replayEntry
}

// LoadReplayOracle reads a replay file. Blank and malformed lines are
// skipped.
func LoadReplayOracle(path string) (*ReplayOracle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay file: %w", err)
	}
	defer func() { _ = file.Close() }()

	oracle := &ReplayOracle{byText: make(map[string]replayEntry)}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry replayLine
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		if entry.Text == "" || len(entry.Labels) == 0 {
			continue
		}
		oracle.byText[entry.Text] = entry.replayEntry
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read replay file: %w", err)
	}
	return oracle, nil
}

// Len reports how many sentences the oracle can answer for.
func (o *ReplayOracle) Len() int {
	return len(o.byText)
}

// Predict returns the recorded labels for text, truncated to k.
func (o *ReplayOracle) Predict(text string, k int) ([]string, []float64, error) {
	entry, ok := o.byText[text]
	if !ok {
		return nil, nil, ErrNoPrediction
	}
	labels := entry.Labels
	confidences := entry.Confidences
	if k > 0 && len(labels) > k {
		labels = labels[:k]
		if len(confidences) > k {
			confidences = confidences[:k]
		}
	}
	return labels, confidences, nil
}
