package lid

import "sort"

// LabelCount pairs a predicted label with its frequency.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// LanguageStats summarizes classification quality for one language.
// Ratios are percentages; zero-sentence languages score zero rather
// than dividing by zero.
type LanguageStats struct {
	TotalSentences               int          `json:"total_sentences"`
	CorrectPredictions           int          `json:"correct_predictions"`
	Accuracy                     float64      `json:"accuracy"`
	KlingonPredictions           int          `json:"klingon_predictions"`
	KlingonRate                  float64      `json:"klingon_rate"`
	MostCommonMisclassifications []LabelCount `json:"most_common_misclassifications"`
	AverageConfidence            float64      `json:"average_confidence"`
}

// Summary aggregates per-language accuracy across an experiment.
type Summary struct {
	TotalLanguages  int     `json:"total_languages"`
	AverageAccuracy float64 `json:"average_accuracy"`
	MedianAccuracy  float64 `json:"median_accuracy"`
	MinAccuracy     float64 `json:"min_accuracy"`
	MaxAccuracy     float64 `json:"max_accuracy"`
}

// Analyze converts raw classification outcomes into per-language
// statistics. The denominator is the number of classified sentences,
// so oracle failures never count against a language.
func Analyze(results *Results) map[string]LanguageStats {
	stats := make(map[string]LanguageStats, len(results.ByLang))
	for lang, lr := range results.ByLang {
		total := len(lr.Predictions)
		accuracy := 0.0
		klingonRate := 0.0
		if total > 0 {
			accuracy = float64(lr.Correct) / float64(total) * 100
			klingonRate = float64(lr.Klingon) / float64(total) * 100
		}
		stats[lang] = LanguageStats{
			TotalSentences:               total,
			CorrectPredictions:           lr.Correct,
			Accuracy:                     accuracy,
			KlingonPredictions:           lr.Klingon,
			KlingonRate:                  klingonRate,
			MostCommonMisclassifications: topMisclassifications(lr.Other, 5),
			AverageConfidence:            mean(lr.Confidences),
		}
	}
	return stats
}

// Summarize aggregates per-language accuracies. An empty stats map
// yields an all-zero summary.
func Summarize(stats map[string]LanguageStats) Summary {
	accuracies := make([]float64, 0, len(stats))
	for _, s := range stats {
		accuracies = append(accuracies, s.Accuracy)
	}
	if len(accuracies) == 0 {
		return Summary{}
	}
	sort.Float64s(accuracies)
	return Summary{
		TotalLanguages:  len(stats),
		AverageAccuracy: mean(accuracies),
		MedianAccuracy:  medianSorted(accuracies),
		MinAccuracy:     accuracies[0],
		MaxAccuracy:     accuracies[len(accuracies)-1],
	}
}

// topMisclassifications returns the n most frequent wrong labels,
// highest count first, ties broken by label so output is stable.
func topMisclassifications(other map[string]int, n int) []LabelCount {
	pairs := make([]LabelCount, 0, len(other))
	for label, count := range other {
		pairs = append(pairs, LabelCount{Label: label, Count: count})
	}
	sort.Slice(pairs, func(i int, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return pairs[i].Label < pairs[j].Label
	})
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// medianSorted returns the median of an already-sorted slice. Even
// lengths average the two middle values.
func medianSorted(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return values[n/2]
	}
	return (values[n/2-1] + values[n/2]) / 2
}
