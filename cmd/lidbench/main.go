package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/oteomoura/klingon-lid-experiment/internal/corpus"
)

const usageText = `lidbench scores a language-ID model's recorded predictions, watching for
one specific failure: text drifting toward the Klingon confounder label.

Usage:
  lidbench <command> [flags]

Commands:
  classify   Score recorded predictions for a set of language batches
  control    Score recorded predictions for Klingon control sentences
  report     Merge experiment artifacts into a comprehensive report

Run 'lidbench <command> --help' for details on a command.
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "lidbench: %v\n", err)
		os.Exit(2)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return usageError()
	}

	switch args[0] {
	case "classify":
		return runClassify(args[1:])
	case "control":
		return runControl(args[1:])
	case "report":
		return runReport(args[1:])
	case "help", "-h", "--help":
		fmt.Print(usageText)
		return nil
	default:
		return usageError()
	}
}

func usageError() error {
	return errors.New("usage: lidbench <classify|control|report> [flags]")
}

// loadConfig returns the pipeline config at path, or the built-in
// defaults when no path was given.
func loadConfig(path string) (corpus.Config, error) {
	if path == "" {
		return corpus.DefaultConfig(), nil
	}
	return corpus.LoadConfig(path)
}
