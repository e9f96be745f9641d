package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/oteomoura/klingon-lid-experiment/internal/lid"
	vlog "github.com/oteomoura/klingon-lid-experiment/internal/log"
)

// runControl implements the "control" subcommand: score the Klingon
// control sentences that sanity-check the confounder tracking.
func runControl(args []string) error {
	fs := flag.NewFlagSet("control", flag.ContinueOnError)
	var (
		inputPath       string
		predictionsPath string
		outPath         string
		k               int
		configPath      string
		verbose         bool
	)

	fs.StringVar(&inputPath, "input", "", "Text file with candidate Klingon sentences")
	fs.StringVar(&predictionsPath, "predictions", "", "JSONL file of recorded predictions keyed by sentence text")
	fs.StringVar(&outPath, "out", "klingon_control_results.json", "Artifact JSON path")
	fs.IntVar(&k, "k", 1, "Labels to request per sentence (only the first is scored)")
	fs.StringVarP(&configPath, "config", "c", "", "Pipeline config YAML path")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Show progress on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lidbench control --input <file> --predictions <file> [flags]\n\n"+
			"Score recorded predictions for Klingon control sentences.\n\n"+
			"The input file is filtered to lines carrying Klingon orthography\n"+
			"markers; on lines of the form 'tlh = gloss' only the left side is\n"+
			"kept. The surviving sentences are scored as the language "+
			"\"klingon\".\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if inputPath == "" || predictionsPath == "" {
		return errors.New("control requires --input and --predictions")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	sentences, err := lid.LoadControlSentences(inputPath, cfg.Experiment.ControlMarkers)
	if err != nil {
		return err
	}
	if len(sentences) == 0 {
		return fmt.Errorf("no control sentences found in %s", inputPath)
	}

	oracle, err := lid.LoadReplayOracle(predictionsPath)
	if err != nil {
		return err
	}

	logger := (&vlog.Logger{Enabled: verbose, W: os.Stderr}).Stage("control")
	logger.Printf("%d control sentences from %s", len(sentences), inputPath)
	logger.Printf("replay oracle: %d recorded predictions from %s", oracle.Len(), predictionsPath)

	results := lid.Classify(oracle, []lid.Batch{{Lang: "klingon", Sentences: sentences}}, lid.Options{
		CodeMapping:     cfg.Experiment.CodeMapping,
		ConfounderLabel: cfg.Experiment.ConfounderLabel,
		K:               k,
		Logger:          logger,
	})
	stats := lid.Analyze(results)

	artifact := lid.NewArtifact(results, stats)
	if err := lid.SaveArtifact(outPath, artifact); err != nil {
		return err
	}

	lid.AccuracyTable(os.Stdout, "KLINGON CONTROL RESULTS", results.Order, stats, cfg.Experiment.Names)
	fmt.Printf("\nResults saved to %s\n", outPath)
	return nil
}
