package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/oteomoura/klingon-lid-experiment/internal/corpus"
)

const usageText = `corpusctl prepares multilingual text corpora for language-ID experiments.

Usage:
  corpusctl <command> [flags]

Commands:
  clean   Normalize raw JSONL snippets and filter them by length
  dedup   Merge per-source files and drop exact and near duplicates
  tag     Annotate records with script composition and romanization
  split   Partition tagged records into train/dev/test sets

Run 'corpusctl <command> --help' for details on a command.
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "corpusctl: %v\n", err)
		os.Exit(2)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return usageError()
	}

	switch args[0] {
	case "clean":
		return runClean(args[1:])
	case "dedup":
		return runDedup(args[1:])
	case "tag":
		return runTag(args[1:])
	case "split":
		return runSplit(args[1:])
	case "help", "-h", "--help":
		fmt.Print(usageText)
		return nil
	default:
		return usageError()
	}
}

func usageError() error {
	return errors.New("usage: corpusctl <clean|dedup|tag|split> [flags]")
}

// loadConfig returns the pipeline config at path, or the built-in
// defaults when no path was given.
func loadConfig(path string) (corpus.Config, error) {
	if path == "" {
		return corpus.DefaultConfig(), nil
	}
	return corpus.LoadConfig(path)
}
