package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/oteomoura/klingon-lid-experiment/internal/corpus"
	"github.com/oteomoura/klingon-lid-experiment/internal/lid"
)

// runReport implements the "report" subcommand: merge the experiment
// artifacts into one ranked table plus per-category summary statistics.
func runReport(args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	var (
		lowPath     string
		majorPath   string
		controlPath string
		outPath     string
		configPath  string
	)

	fs.StringVar(&lowPath, "low", "low_resource_lid_results.json", "Low-resource experiment artifact")
	fs.StringVar(&majorPath, "major", "major_language_lid_results.json", "Major-language experiment artifact")
	fs.StringVar(&controlPath, "control", "klingon_control_results.json", "Klingon control artifact")
	fs.StringVar(&outPath, "out", "comprehensive_lid_report.json", "Combined report JSON path")
	fs.StringVarP(&configPath, "config", "c", "", "Pipeline config YAML path")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lidbench report [flags]\n\n"+
			"Merge experiment artifacts into a comprehensive report.\n\n"+
			"Loads the low-resource, major-language, and control artifacts\n"+
			"(later artifacts win for repeated codes), renders the ranked\n"+
			"accuracy table and per-category summary, and writes the combined\n"+
			"report JSON. Missing artifacts are an error: run 'lidbench\n"+
			"classify' and 'lidbench control' first.\n\n"+
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

	low, err := lid.LoadArtifact(lowPath)
	if err != nil {
		return err
	}
	major, err := lid.LoadArtifact(majorPath)
	if err != nil {
		return err
	}
	control, err := lid.LoadArtifact(controlPath)
	if err != nil {
		return err
	}

	comp, order := lid.Merge(cfg.Experiment.Names, cfg.Experiment.Categories, low, major, control)
	lid.ComprehensiveTable(os.Stdout, comp, order)
	lid.PrintSummary(os.Stdout, comp.Summary)

	if err := corpus.WriteJSON(outPath, comp); err != nil {
		return err
	}
	fmt.Printf("\nComprehensive report saved to %s\n", outPath)
	return nil
}
