package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/oteomoura/klingon-lid-experiment/internal/corpus"
	vlog "github.com/oteomoura/klingon-lid-experiment/internal/log"
)

// runClean implements the "clean" subcommand: normalize raw snippets and
// filter them by length. It keeps an untouched raw copy next to the
// processed output so a pipeline run can always be traced back to its
// inputs.
func runClean(args []string) error {
	fs := flag.NewFlagSet("clean", flag.ContinueOnError)
	var (
		code       string
		inputPath  string
		source     string
		license    string
		domain     string
		formName   string
		minChars   int
		maxChars   int
		outPrefix  string
		configPath string
		logDir     string
		verbose    bool
	)

	fs.StringVar(&code, "code", "", "Language code stamped on every record")
	fs.StringVar(&inputPath, "input", "", "JSONL file with one text snippet per line")
	fs.StringVar(&source, "source", "wikipedia", "Source name stamped on every record")
	fs.StringVar(&license, "license", "", "License stamped on every record")
	fs.StringVar(&domain, "domain", "", "Domain stamped on every record")
	fs.StringVar(&formName, "normalize", "NFC", "Unicode normalization form: NFC, NFD, NFKC, NFKD")
	fs.IntVar(&minChars, "min-chars", 0, "Minimum snippet length in runes")
	fs.IntVar(&maxChars, "max-chars", 0, "Maximum snippet length in runes (0 = unlimited)")
	fs.StringVar(&outPrefix, "out-prefix", "dataset", "Root directory for raw/ and processed/ outputs")
	fs.StringVarP(&configPath, "config", "c", "", "Pipeline config YAML path")
	fs.StringVar(&logDir, "log-dir", "", "Directory for run log JSON files")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Show progress details on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: corpusctl clean --code <lang> --input <file> [flags]\n\n"+
			"Normalize raw JSONL snippets and filter them by length.\n\n"+
			"Writes an untouched copy to <out-prefix>/raw/<code>/<source>.<timestamp>.jsonl\n"+
			"and the cleaned records to <out-prefix>/processed/<code>.<source>.jsonl.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if code == "" || inputPath == "" {
		return errors.New("clean requires --code and --input")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	form, err := corpus.ParseForm(formName)
	if err != nil {
		return err
	}

	opts := corpus.CleanOptions{Form: form, MinChars: cfg.MinChars, MaxChars: cfg.MaxChars}
	if fs.Changed("min-chars") {
		opts.MinChars = minChars
	}
	if fs.Changed("max-chars") {
		opts.MaxChars = maxChars
	}

	logger := (&vlog.Logger{Enabled: verbose, W: os.Stderr}).Stage("clean")

	records, err := corpus.ReadRecords(inputPath)
	if err != nil {
		return err
	}
	logger.Printf("%s: read %d rows from %s", code, len(records), inputPath)

	for i := range records {
		records[i].License = license
		records[i].Source = source
		records[i].Domain = domain
		records[i].Code = code
		if records[i].Lang == "" {
			records[i].Lang = code
		}
	}

	rawPath := filepath.Join(outPrefix, "raw", code, source+"."+timestamp()+".jsonl")
	if err := corpus.WriteRecords(rawPath, records); err != nil {
		return err
	}
	fmt.Printf("[%s:%s] wrote RAW -> %s (%d rows)\n", code, source, rawPath, len(records))

	cleaned := corpus.Clean(records, opts)
	outPath := filepath.Join(outPrefix, "processed", code+"."+source+".jsonl")
	if err := corpus.WriteRecords(outPath, cleaned); err != nil {
		return err
	}
	fmt.Printf("[%s:%s] wrote CLEAN -> %s (%d rows)\n", code, source, outPath, len(cleaned))

	runLog := corpus.NewRunLog("clean", args)
	runLog.Languages = []string{code}
	runLog.AddOutput(rawPath)
	runLog.AddOutput(outPath)
	return runLog.Close(logDir)
}

func timestamp() string {
	return time.Now().UTC().Format("20060102T150405Z")
}
