package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/oteomoura/klingon-lid-experiment/internal/lid"
	vlog "github.com/oteomoura/klingon-lid-experiment/internal/log"
)

// runClassify implements the "classify" subcommand: score one experiment's
// sentence batches against recorded predictions and save the artifact.
func runClassify(args []string) error {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	var (
		sentencesPath   string
		predictionsPath string
		name            string
		outPath         string
		k               int
		configPath      string
		verbose         bool
	)

	fs.StringVar(&sentencesPath, "sentences", "", "JSON file mapping language codes to sentence lists")
	fs.StringVar(&predictionsPath, "predictions", "", "JSONL file of recorded predictions keyed by sentence text")
	fs.StringVar(&name, "name", "language identification", "Experiment name used in the results table title")
	fs.StringVar(&outPath, "out", "lid_results.json", "Artifact JSON path")
	fs.IntVar(&k, "k", 1, "Labels to request per sentence (only the first is scored)")
	fs.StringVarP(&configPath, "config", "c", "", "Pipeline config YAML path")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Show per-language progress on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lidbench classify --sentences <file> --predictions <file> [flags]\n\n"+
			"Score recorded predictions for a set of language batches.\n\n"+
			"A prediction counts as correct when it falls in the script-variant\n"+
			"closure of the expected code; hits on the Klingon confounder label\n"+
			"are tallied separately. Languages are processed in sorted code\n"+
			"order. Writes an artifact JSON with raw results, per-language\n"+
			"stats, and an accuracy summary.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if sentencesPath == "" || predictionsPath == "" {
		return errors.New("classify requires --sentences and --predictions")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	batches, err := loadSentenceBatches(sentencesPath)
	if err != nil {
		return err
	}
	oracle, err := lid.LoadReplayOracle(predictionsPath)
	if err != nil {
		return err
	}

	logger := (&vlog.Logger{Enabled: verbose, W: os.Stderr}).Stage("classify")
	logger.Printf("replay oracle: %d recorded predictions from %s", oracle.Len(), predictionsPath)

	results := lid.Classify(oracle, batches, lid.Options{
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

	title := strings.ToUpper(name) + " RESULTS"
	lid.AccuracyTable(os.Stdout, title, results.Order, stats, cfg.Experiment.Names)
	fmt.Printf("\nResults saved to %s\n", outPath)
	return nil
}

// loadSentenceBatches reads a JSON object mapping language codes to
// sentence lists. Codes are returned in sorted order so a run is
// deterministic regardless of map layout.
func loadSentenceBatches(path string) ([]lid.Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var byLang map[string][]string
	if err := json.Unmarshal(data, &byLang); err != nil {
		return nil, fmt.Errorf("parsing sentences %s: %w", path, err)
	}

	codes := make([]string, 0, len(byLang))
	for code := range byLang {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	batches := make([]lid.Batch, 0, len(codes))
	for _, code := range codes {
		batches = append(batches, lid.Batch{Lang: code, Sentences: byLang[code]})
	}
	return batches, nil
}
