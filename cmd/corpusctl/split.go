package main

import (
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/oteomoura/klingon-lid-experiment/internal/corpus"
	"github.com/oteomoura/klingon-lid-experiment/internal/discovery"
	vlog "github.com/oteomoura/klingon-lid-experiment/internal/log"
)

// runSplit implements the "split" subcommand: partition tagged records
// into train/dev/test sets, stratified by source and length bucket.
func runSplit(args []string) error {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	var (
		langs          []string
		inPrefix       string
		inSuffix       string
		outPrefix      string
		trainR         float64
		devR           float64
		testR          float64
		seed           int64
		filterRomTrain bool
		reportPath     string
		configPath     string
		logDir         string
		verbose        bool
	)

	fs.StringSliceVar(&langs, "langs", nil, "Language codes to process (default: discover from input files)")
	fs.StringVar(&inPrefix, "in-prefix", "dataset/processed", "Directory holding input files")
	fs.StringVar(&inSuffix, "in-suffix", ".dedup.tagged.jsonl", "Suffix naming the per-language inputs")
	fs.StringVar(&outPrefix, "out-prefix", "dataset/splits", "Root directory for split outputs")
	fs.Float64Var(&trainR, "train-r", 0, "Train ratio")
	fs.Float64Var(&devR, "dev-r", 0, "Dev ratio")
	fs.Float64Var(&testR, "test-r", 0, "Test ratio")
	fs.Int64Var(&seed, "seed", 0, "Shuffle seed")
	fs.BoolVar(&filterRomTrain, "filter-romanized-train", false, "Drop romanized records from the train set")
	fs.StringVar(&reportPath, "report", "reports/split_summary.csv", "Summary CSV appended per language (empty = no report)")
	fs.StringVarP(&configPath, "config", "c", "", "Pipeline config YAML path")
	fs.StringVar(&logDir, "log-dir", "", "Directory for run log JSON files")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Show per-file progress on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: corpusctl split [flags]\n\n"+
			"Partition records into train/dev/test sets.\n\n"+
			"Records are stratified by (source, length bucket), shuffled with a\n"+
			"seeded generator, and apportioned per stratum, so the same inputs\n"+
			"and seed always yield the same partitions. Writes per-language\n"+
			"files under <out-prefix>/<split>/<lang>.jsonl plus concatenated\n"+
			"<out-prefix>/<split>.jsonl files.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	opts := cfg.SplitOptions()
	if fs.Changed("train-r") {
		opts.Ratios.Train = trainR
	}
	if fs.Changed("dev-r") {
		opts.Ratios.Dev = devR
	}
	if fs.Changed("test-r") {
		opts.Ratios.Test = testR
	}
	if fs.Changed("seed") {
		opts.Seed = seed
	}
	if fs.Changed("filter-romanized-train") {
		opts.FilterRomanizedTrain = filterRomTrain
	}
	if err := corpus.ValidateRatios(opts.Ratios); err != nil {
		return err
	}

	logger := (&vlog.Logger{Enabled: verbose, W: os.Stderr}).Stage("split")

	if len(langs) == 0 {
		files, err := discovery.Discover(discovery.Options{
			Patterns: []string{"*" + inSuffix},
			BaseDir:  inPrefix,
			Ignore:   cfg.Ignore,
		})
		if err != nil {
			return err
		}
		langs = discovery.Languages(files)
	}
	if len(langs) == 0 {
		fmt.Fprintln(os.Stderr, "[split] no languages discovered, nothing to do")
		return nil
	}

	runLog := corpus.NewRunLog("split", args)
	runLog.Languages = langs

	var allTrain, allDev, allTest []corpus.Record
	for _, lang := range langs {
		inPath := filepath.Join(inPrefix, lang+inSuffix)
		if _, err := os.Stat(inPath); err != nil {
			fmt.Printf("[split] %s: missing %s, skipping.\n", lang, inPath)
			continue
		}
		records, err := corpus.ReadRecords(inPath)
		if err != nil {
			return err
		}
		logger.Printf("%s: read %d records from %s", lang, len(records), inPath)

		result := corpus.SplitLanguage(records, opts)
		for _, part := range []struct {
			name    string
			records []corpus.Record
		}{
			{corpus.SplitTrain, result.Train},
			{corpus.SplitDev, result.Dev},
			{corpus.SplitTest, result.Test},
		} {
			outPath := filepath.Join(outPrefix, part.name, lang+".jsonl")
			if err := corpus.WriteRecords(outPath, part.records); err != nil {
				return err
			}
			runLog.AddOutput(outPath)
		}
		allTrain = append(allTrain, result.Train...)
		allDev = append(allDev, result.Dev...)
		allTest = append(allTest, result.Test...)

		if reportPath != "" {
			if err := corpus.AppendSplitReport(reportPath, lang, result); err != nil {
				return err
			}
		}
		fmt.Printf("[split] %s: total=%d -> train=%d dev=%d test=%d (dropped_rom_train=%d)\n",
			lang, result.Total, len(result.Train), len(result.Dev), len(result.Test),
			result.TrainDroppedRomanized)
	}

	for _, part := range []struct {
		name    string
		records []corpus.Record
	}{
		{corpus.SplitTrain, allTrain},
		{corpus.SplitDev, allDev},
		{corpus.SplitTest, allTest},
	} {
		outPath := filepath.Join(outPrefix, part.name+".jsonl")
		if err := corpus.WriteRecords(outPath, part.records); err != nil {
			return err
		}
		runLog.AddOutput(outPath)
	}

	fmt.Printf("[split] done. wrote %d examples across splits.\n",
		len(allTrain)+len(allDev)+len(allTest))
	return runLog.Close(logDir)
}
