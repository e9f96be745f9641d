package corpus

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestRunLog_CloseWritesLog(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	runLog := NewRunLog("dedup", []string{"--langs", "am"})
	runLog.Languages = []string{"am"}
	runLog.AddOutput("dataset/processed/am.dedup.jsonl")

	if err := runLog.Close(dir); err != nil {
		t.Fatalf("Close: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("log files = %d, want 1", len(entries))
	}
	name := entries[0].Name()
	if filepath.Ext(name) != ".json" {
		t.Fatalf("log file name = %q, want .json", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var got RunLog
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("parse log: %v", err)
	}
	if got.Stage != "dedup" || got.RunID == "" {
		t.Fatalf("unexpected log: %+v", got)
	}
	if got.FinishedAt.Before(got.StartedAt) {
		t.Fatalf("FinishedAt %v before StartedAt %v", got.FinishedAt, got.StartedAt)
	}
	if len(got.Outputs) != 1 || len(got.Languages) != 1 {
		t.Fatalf("outputs/languages = %v/%v", got.Outputs, got.Languages)
	}
}

func TestRunLog_EmptyDirDisablesLogging(t *testing.T) {
	t.Parallel()

	runLog := NewRunLog("tag", nil)
	if err := runLog.Close(""); err != nil {
		t.Fatalf("Close with empty dir: %v", err)
	}
}

func TestNewRunLog_UniqueIDs(t *testing.T) {
	t.Parallel()

	if NewRunLog("split", nil).RunID == NewRunLog("split", nil).RunID {
		t.Fatal("run IDs collide")
	}
}
