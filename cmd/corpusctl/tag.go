package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/oteomoura/klingon-lid-experiment/internal/corpus"
	"github.com/oteomoura/klingon-lid-experiment/internal/discovery"
	vlog "github.com/oteomoura/klingon-lid-experiment/internal/log"
)

// runTag implements the "tag" subcommand: annotate each record with its
// script composition and a romanization estimate.
func runTag(args []string) error {
	fs := flag.NewFlagSet("tag", flag.ContinueOnError)
	var (
		langs      []string
		inPrefix   string
		inPattern  string
		outSuffix  string
		reportPath string
		configPath string
		logDir     string
		verbose    bool
	)

	fs.StringSliceVar(&langs, "langs", nil, "Language codes to process (default: discover from input files)")
	fs.StringVar(&inPrefix, "in-prefix", "dataset/processed", "Directory holding input files")
	fs.StringVar(&inPattern, "in-pattern", "*.dedup.jsonl", "Glob naming the per-language inputs")
	fs.StringVar(&outSuffix, "out-suffix", ".dedup.tagged.jsonl", "Suffix for per-language outputs")
	fs.StringVar(&reportPath, "report", "reports/script_summary.csv", "Summary CSV appended per language (empty = no report)")
	fs.StringVarP(&configPath, "config", "c", "", "Pipeline config YAML path")
	fs.StringVar(&logDir, "log-dir", "", "Directory for run log JSON files")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Show per-file progress on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: corpusctl tag [flags]\n\n"+
			"Annotate records with script composition and romanization.\n\n"+
			"Each record gains a script block (primary script, ratio, per-script\n"+
			"counts) and an is_romanized flag comparing the primary script against\n"+
			"the one expected for the language.\n\n"+
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
	opts := cfg.TagOptions()

	logger := (&vlog.Logger{Enabled: verbose, W: os.Stderr}).Stage("script")

	if len(langs) == 0 {
		files, err := discovery.Discover(discovery.Options{
			Patterns: []string{inPattern},
			BaseDir:  inPrefix,
			Ignore:   cfg.Ignore,
		})
		if err != nil {
			return err
		}
		langs = discovery.Languages(files)
	}
	if len(langs) == 0 {
		fmt.Fprintln(os.Stderr, "[script] no languages discovered, nothing to do")
		return nil
	}

	// The discovery glob doubles as the input naming scheme: stripping
	// the leading "*" leaves the per-language suffix.
	inSuffix := strings.TrimPrefix(inPattern, "*")

	runLog := corpus.NewRunLog("tag", args)
	runLog.Languages = langs

	for _, lang := range langs {
		inPath := filepath.Join(inPrefix, lang+inSuffix)
		if _, err := os.Stat(inPath); err != nil {
			fmt.Printf("[script] %s: missing %s, skipping.\n", lang, inPath)
			continue
		}
		records, err := corpus.ReadRecords(inPath)
		if err != nil {
			return err
		}
		logger.Printf("%s: read %d records from %s", lang, len(records), inPath)

		result := corpus.TagScripts(records, lang, opts)
		outPath := filepath.Join(inPrefix, lang+outSuffix)
		if err := corpus.WriteRecords(outPath, result.Tagged); err != nil {
			return err
		}
		if reportPath != "" {
			if err := corpus.AppendScriptReport(reportPath, lang, result); err != nil {
				return err
			}
		}
		runLog.AddOutput(outPath)
		fmt.Printf("[script] %s: lines=%d latin_majority=%d romanized_est=%d -> %s\n",
			lang, result.Lines, result.LatinMajority, result.RomanizedEst, outPath)
	}
	return runLog.Close(logDir)
}
