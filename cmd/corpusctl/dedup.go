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

// runDedup implements the "dedup" subcommand: merge per-source files for
// each language and drop exact and near duplicates.
func runDedup(args []string) error {
	fs := flag.NewFlagSet("dedup", flag.ContinueOnError)
	var (
		langs         []string
		sources       []string
		inPrefix      string
		outPrefix     string
		nearDup       bool
		jaccardThresh float64
		ngram         int
		reportPath    string
		configPath    string
		logDir        string
		verbose       bool
	)

	fs.StringSliceVar(&langs, "langs", nil, "Language codes to process (default: discover from input files)")
	fs.StringSliceVar(&sources, "sources", nil, "Source names merged per language (default: config sources)")
	fs.StringVar(&inPrefix, "in-prefix", "dataset/processed", "Directory holding <lang>.<source>.jsonl inputs")
	fs.StringVar(&outPrefix, "out-prefix", "dataset/processed", "Directory for <lang>.dedup.jsonl outputs")
	fs.BoolVar(&nearDup, "near-dup", false, "Also drop near duplicates by n-gram Jaccard overlap")
	fs.Float64Var(&jaccardThresh, "jaccard-thresh", 0, "Jaccard similarity at or above which a record is a near duplicate")
	fs.IntVar(&ngram, "ngram", 0, "Character n-gram size for near-duplicate signatures")
	fs.StringVar(&reportPath, "report", "reports/dedup_summary.csv", "Summary CSV appended per language (empty = no report)")
	fs.StringVarP(&configPath, "config", "c", "", "Pipeline config YAML path")
	fs.StringVar(&logDir, "log-dir", "", "Directory for run log JSON files")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Show per-file progress on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: corpusctl dedup [flags]\n\n"+
			"Merge per-source files per language and drop duplicates.\n\n"+
			"Exact duplicates are matched by content fingerprint after inline\n"+
			"normalization. With --near-dup, records are also compared against\n"+
			"every kept record by character n-gram Jaccard similarity.\n\n"+
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

	opts := cfg.DedupOptions()
	if fs.Changed("near-dup") {
		opts.NearDup = nearDup
	}
	if fs.Changed("jaccard-thresh") {
		opts.JaccardThreshold = jaccardThresh
	}
	if fs.Changed("ngram") {
		opts.NGram = ngram
	}
	if len(sources) == 0 {
		sources = cfg.Sources
	}

	logger := (&vlog.Logger{Enabled: verbose, W: os.Stderr}).Stage("dedup")

	if len(langs) == 0 {
		patterns := make([]string, 0, len(sources))
		for _, source := range sources {
			patterns = append(patterns, "*."+source+".jsonl")
		}
		files, err := discovery.Discover(discovery.Options{
			Patterns: patterns,
			BaseDir:  inPrefix,
			Ignore:   cfg.Ignore,
		})
		if err != nil {
			return err
		}
		langs = discovery.Languages(files)
	}
	if len(langs) == 0 {
		fmt.Fprintln(os.Stderr, "[dedup] no languages discovered, nothing to do")
		return nil
	}

	runLog := corpus.NewRunLog("dedup", args)
	runLog.Languages = langs

	for _, lang := range langs {
		var records []corpus.Record
		found := false
		for _, source := range sources {
			path := filepath.Join(inPrefix, lang+"."+source+".jsonl")
			if _, err := os.Stat(path); err != nil {
				continue
			}
			recs, err := corpus.ReadRecords(path)
			if err != nil {
				return err
			}
			found = true
			records = append(records, recs...)
			logger.Printf("%s: read %d records from %s", lang, len(recs), path)
		}
		if !found {
			fmt.Printf("[dedup] %s: no input files, skipping.\n", lang)
			continue
		}

		result := corpus.Dedup(records, opts)
		outPath := filepath.Join(outPrefix, lang+".dedup.jsonl")
		if err := corpus.WriteRecords(outPath, result.Kept); err != nil {
			return err
		}
		if reportPath != "" {
			if err := corpus.AppendDedupReport(reportPath, lang, result, sources); err != nil {
				return err
			}
		}
		runLog.AddOutput(outPath)
		fmt.Printf("[dedup] %s: input=%d kept=%d exact_dups=%d near_dups=%d -> %s\n",
			lang, result.Input, len(result.Kept), result.ExactDups, result.NearDups, outPath)
	}
	return runLog.Close(logDir)
}
