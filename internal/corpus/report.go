package corpus

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Report column layouts, one per pipeline stage.
var (
	dedupReportHeader  = []string{"lang", "input_total", "kept", "exact_dups", "near_dups", "sources"}
	scriptReportHeader = []string{"lang", "lines", "latin_majority", "romanized_est"}
	splitReportHeader  = []string{
		"lang", "total", "train", "dev", "test",
		"train_short", "train_medium", "train_long",
		"dev_short", "dev_medium", "dev_long",
		"test_short", "test_medium", "test_long",
		"train_dropped_romanized",
	}
)

// AppendReportRow appends one row to a CSV report, writing the header
// first when the file does not exist yet. Reports accumulate one row
// per language per run.
func AppendReportRow(path string, header []string, row []string) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	_, statErr := os.Stat(path)
	writeHeader := os.IsNotExist(statErr)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open report: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if writeHeader {
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("write report header: %w", err)
		}
	}
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("write report row: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

// AppendDedupReport appends one language's dedup counts to the summary.
func AppendDedupReport(path string, lang string, result DedupResult, sources []string) error {
	row := []string{
		lang,
		strconv.Itoa(result.Input),
		strconv.Itoa(len(result.Kept)),
		strconv.Itoa(result.ExactDups),
		strconv.Itoa(result.NearDups),
		strings.Join(sources, ","),
	}
	return AppendReportRow(path, dedupReportHeader, row)
}

// AppendScriptReport appends one language's tagging counts to the summary.
func AppendScriptReport(path string, lang string, result TagResult) error {
	row := []string{
		lang,
		strconv.Itoa(result.Lines),
		strconv.Itoa(result.LatinMajority),
		strconv.Itoa(result.RomanizedEst),
	}
	return AppendReportRow(path, scriptReportHeader, row)
}

// AppendSplitReport appends one language's split counts to the summary.
func AppendSplitReport(path string, lang string, result SplitResult) error {
	row := []string{
		lang,
		strconv.Itoa(result.Total),
		strconv.Itoa(len(result.Train)),
		strconv.Itoa(len(result.Dev)),
		strconv.Itoa(len(result.Test)),
	}
	for _, split := range []string{SplitTrain, SplitDev, SplitTest} {
		for _, bucket := range []string{BucketShort, BucketMedium, BucketLong} {
			row = append(row, strconv.Itoa(result.Buckets[split][bucket]))
		}
	}
	row = append(row, strconv.Itoa(result.TrainDroppedRomanized))
	return AppendReportRow(path, splitReportHeader, row)
}
