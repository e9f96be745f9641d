package log

import (
	"bytes"
	"testing"
)

func TestPrintf_Enabled(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Enabled: true, W: &buf}

	l.Printf("config: %s", "corpus.yml")

	want := "config: corpus.yml\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintf_Disabled(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Enabled: false, W: &buf}

	l.Printf("config: %s", "corpus.yml")

	if got := buf.String(); got != "" {
		t.Errorf("expected no output, got %q", got)
	}
}

func TestPrintf_MultipleMessages(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Enabled: true, W: &buf}

	l.Printf("lang: %s", "am")
	l.Printf("input=%d kept=%d", 240, 198)

	want := "lang: am\ninput=240 kept=198\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStage_PrefixesMessages(t *testing.T) {
	var buf bytes.Buffer
	l := (&Logger{Enabled: true, W: &buf}).Stage("dedup")

	l.Printf("am: input=%d kept=%d", 240, 198)

	want := "[dedup] am: input=240 kept=198\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStage_Disabled(t *testing.T) {
	var buf bytes.Buffer
	l := (&Logger{Enabled: false, W: &buf}).Stage("split")

	l.Printf("am: total=%d", 198)

	if got := buf.String(); got != "" {
		t.Errorf("expected no output, got %q", got)
	}
}
