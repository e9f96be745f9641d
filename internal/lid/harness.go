package lid

import (
	"github.com/oteomoura/klingon-lid-experiment/internal/log"
)

// Batch is one language's sentences awaiting classification.
type Batch struct {
	Lang      string
	Sentences []string
}

// Options configures a classification run.
type Options struct {
	// CodeMapping maps project language codes to the oracle's codes.
	// Unmapped codes pass through unchanged.
	CodeMapping map[string]string

	// ConfounderLabel is the label whose predictions are tallied
	// separately even when wrong, the constructed-language control.
	ConfounderLabel string

	// K is how many labels to request per sentence. Only the first is
	// scored. Defaults to 1.
	K int

	Logger *log.Logger
}

// LanguageResult accumulates raw classification outcomes for one language.
type LanguageResult struct {
	Predictions []string       `json:"predictions"`
	Confidences []float64      `json:"confidences"`
	Correct     int            `json:"correct_predictions"`
	Klingon     int            `json:"klingon_predictions"`
	Other       map[string]int `json:"other_predictions"`
}

// Results holds per-language outcomes plus the language input order.
type Results struct {
	Order  []string
	ByLang map[string]*LanguageResult
}

// Classify runs every batch against the oracle. A prediction is correct
// when it falls in the script-variant closure of the expected code;
// confounder hits are tallied apart; every other label is counted
// exactly. A sentence the oracle fails on is logged, skipped, and
// excluded from all denominators.
func Classify(oracle Oracle, batches []Batch, opts Options) *Results {
	logger := opts.Logger
	if logger == nil {
		logger = &log.Logger{}
	}
	k := opts.K
	if k == 0 {
		k = 1
	}

	results := &Results{
		Order:  make([]string, 0, len(batches)),
		ByLang: make(map[string]*LanguageResult, len(batches)),
	}

	for _, batch := range batches {
		logger.Printf("classifying %s (%d sentences)", batch.Lang, len(batch.Sentences))

		oracleCode := batch.Lang
		if mapped, ok := opts.CodeMapping[batch.Lang]; ok {
			oracleCode = mapped
		}
		variants := LabelVariants(oracleCode)

		lr := &LanguageResult{
			Predictions: make([]string, 0, len(batch.Sentences)),
			Confidences: make([]float64, 0, len(batch.Sentences)),
			Other:       make(map[string]int),
		}

		for _, sentence := range batch.Sentences {
			labels, confidences, err := oracle.Predict(sentence, k)
			if err != nil || len(labels) == 0 {
				logger.Printf("error classifying sentence in %s: %v", batch.Lang, err)
				continue
			}
			predicted := labels[0]
			confidence := 0.0
			if len(confidences) > 0 {
				confidence = confidences[0]
			}

			lr.Predictions = append(lr.Predictions, predicted)
			lr.Confidences = append(lr.Confidences, confidence)

			if _, ok := variants[predicted]; ok {
				lr.Correct++
			} else if predicted == opts.ConfounderLabel {
				lr.Klingon++
			} else {
				lr.Other[predicted]++
			}
		}

		results.Order = append(results.Order, batch.Lang)
		results.ByLang[batch.Lang] = lr
	}
	return results
}
