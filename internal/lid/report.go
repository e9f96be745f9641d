package lid

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Comprehensive merges several experiment artifacts into one ranked view.
type Comprehensive struct {
	AllResults         map[string]*LanguageResult `json:"all_results"`
	AllStats           map[string]LanguageStats   `json:"all_stats"`
	LanguageNames      map[string]string          `json:"language_names"`
	LanguageCategories map[string]string          `json:"language_categories"`
	Summary            ComprehensiveSummary       `json:"summary"`
}

// CategoryStats summarizes accuracy across one language category.
type CategoryStats struct {
	Count           int     `json:"count"`
	AverageAccuracy float64 `json:"average_accuracy"`
	MedianAccuracy  float64 `json:"median_accuracy"`
	MinAccuracy     float64 `json:"min_accuracy"`
	MaxAccuracy     float64 `json:"max_accuracy"`
}

// ComprehensiveSummary rolls merged experiments up per category.
type ComprehensiveSummary struct {
	TotalLanguages int                      `json:"total_languages"`
	Categories     map[string]CategoryStats `json:"categories"`
}

// Merge combines experiment artifacts into a comprehensive view. Stats
// from later artifacts win for repeated codes. The returned order lists
// codes artifact by artifact, sorted within each, for ranked rendering.
// Codes missing from categories report as Unknown.
func Merge(
	names map[string]string,
	categories map[string]string,
	artifacts ...Artifact,
) (Comprehensive, []string) {
	comp := Comprehensive{
		AllResults:         make(map[string]*LanguageResult),
		AllStats:           make(map[string]LanguageStats),
		LanguageNames:      names,
		LanguageCategories: categories,
	}
	if comp.LanguageNames == nil {
		comp.LanguageNames = map[string]string{}
	}
	if comp.LanguageCategories == nil {
		comp.LanguageCategories = map[string]string{}
	}

	order := make([]string, 0)
	seen := make(map[string]bool)
	for _, artifact := range artifacts {
		codes := make([]string, 0, len(artifact.LanguageStats))
		for code := range artifact.LanguageStats {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			if !seen[code] {
				seen[code] = true
				order = append(order, code)
			}
			comp.AllStats[code] = artifact.LanguageStats[code]
			if lr, ok := artifact.Results[code]; ok {
				comp.AllResults[code] = lr
			}
		}
	}

	comp.Summary = summarizeCategories(comp.AllStats, comp.LanguageCategories)
	return comp, order
}

func summarizeCategories(
	stats map[string]LanguageStats,
	categories map[string]string,
) ComprehensiveSummary {
	byCategory := make(map[string][]float64)
	for code, s := range stats {
		category := categories[code]
		if category == "" {
			category = "Unknown"
		}
		byCategory[category] = append(byCategory[category], s.Accuracy)
	}

	summary := ComprehensiveSummary{
		TotalLanguages: len(stats),
		Categories:     make(map[string]CategoryStats, len(byCategory)),
	}
	for category, accuracies := range byCategory {
		sort.Float64s(accuracies)
		summary.Categories[category] = CategoryStats{
			Count:           len(accuracies),
			AverageAccuracy: mean(accuracies),
			MedianAccuracy:  medianSorted(accuracies),
			MinAccuracy:     accuracies[0],
			MaxAccuracy:     accuracies[len(accuracies)-1],
		}
	}
	return summary
}

// rankedCodes sorts codes by accuracy, highest first. The sort is
// stable so equal accuracies keep their input order.
func rankedCodes(codes []string, stats map[string]LanguageStats) []string {
	ranked := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, ok := stats[code]; ok {
			ranked = append(ranked, code)
		}
	}
	sort.SliceStable(ranked, func(i int, j int) bool {
		return stats[ranked[i]].Accuracy > stats[ranked[j]].Accuracy
	})
	return ranked
}

// AccuracyTable renders the ranked accuracy table for one experiment.
func AccuracyTable(
	w io.Writer,
	title string,
	order []string,
	stats map[string]LanguageStats,
	names map[string]string,
) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)

	rows := make([][]string, 0, len(order))
	for rank, code := range rankedCodes(order, stats) {
		s := stats[code]
		name := names[code]
		if name == "" {
			name = code
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", rank+1),
			name,
			code,
			fmt.Sprintf("%.1f%%", s.Accuracy),
			fmt.Sprintf("%d/%d", s.CorrectPredictions, s.TotalSentences),
			fmt.Sprintf("%.1f%%", s.KlingonRate),
		})
	}

	headers := []string{"Rank", "Language", "Code", "Accuracy", "Correct/Total", "Klingon Rate"}
	aligns := []text.Align{
		text.AlignRight, text.AlignLeft, text.AlignLeft,
		text.AlignRight, text.AlignRight, text.AlignRight,
	}
	fmt.Fprintln(w, renderTable(headers, rows, aligns))
}

// ComprehensiveTable renders the merged ranked table with categories.
func ComprehensiveTable(w io.Writer, comp Comprehensive, order []string) {
	fmt.Fprintf(w, "\n=== COMPREHENSIVE ACCURACY TABLE (ALL LANGUAGES) ===\n")

	rows := make([][]string, 0, len(order))
	for rank, code := range rankedCodes(order, comp.AllStats) {
		s := comp.AllStats[code]
		name := comp.LanguageNames[code]
		if name == "" {
			name = code
		}
		category := comp.LanguageCategories[code]
		if category == "" {
			category = "Unknown"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", rank+1),
			name,
			code,
			category,
			fmt.Sprintf("%.1f%%", s.Accuracy),
			fmt.Sprintf("%d/%d", s.CorrectPredictions, s.TotalSentences),
		})
	}

	headers := []string{"Rank", "Language", "Code", "Category", "Accuracy", "Correct/Total"}
	aligns := []text.Align{
		text.AlignRight, text.AlignLeft, text.AlignLeft,
		text.AlignLeft, text.AlignRight, text.AlignRight,
	}
	fmt.Fprintln(w, renderTable(headers, rows, aligns))
}

// PrintSummary writes the per-category accuracy roll-up.
func PrintSummary(w io.Writer, summary ComprehensiveSummary) {
	fmt.Fprintf(w, "\n=== SUMMARY STATISTICS ===\n")
	fmt.Fprintf(w, "Total languages tested: %d\n", summary.TotalLanguages)

	categories := make([]string, 0, len(summary.Categories))
	for category := range summary.Categories {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		s := summary.Categories[category]
		fmt.Fprintf(w, "\n%s (%d languages):\n", category, s.Count)
		fmt.Fprintf(w, "  Average accuracy: %.1f%%\n", s.AverageAccuracy)
		fmt.Fprintf(w, "  Median accuracy: %.1f%%\n", s.MedianAccuracy)
		fmt.Fprintf(w, "  Min accuracy: %.1f%%\n", s.MinAccuracy)
		fmt.Fprintf(w, "  Max accuracy: %.1f%%\n", s.MaxAccuracy)
	}
}

func renderTable(headers []string, rows [][]string, aligns []text.Align) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) {
			align = aligns[i]
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
