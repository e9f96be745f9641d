package corpus

import "testing"

func TestStratumSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{name: "source wins", rec: Record{Source: "tatoeba", Domain: "news"}, want: "tatoeba"},
		{name: "domain fallback", rec: Record{Domain: "news"}, want: "news"},
		{name: "unknown fallback", rec: Record{}, want: "unknown"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.rec.StratumSource(); got != tt.want {
				t.Fatalf("StratumSource = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithTrace_DoesNotMutateOriginal(t *testing.T) {
	t.Parallel()

	original := Record{Text: "x", Trace: map[string]string{"clean": "ok"}}
	updated := original.WithTrace("dedup", "kept")

	if len(original.Trace) != 1 {
		t.Fatalf("original trace mutated: %v", original.Trace)
	}
	if updated.Trace["clean"] != "ok" || updated.Trace["dedup"] != "kept" {
		t.Fatalf("updated trace = %v", updated.Trace)
	}
}

func TestRomanized_NilSafe(t *testing.T) {
	t.Parallel()

	if (Record{}).Romanized() {
		t.Fatal("untagged record reported romanized")
	}
	flag := true
	if !(Record{IsRomanized: &flag}).Romanized() {
		t.Fatal("tagged record not reported romanized")
	}
}

func TestLengthBucket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "short", text: "ab", want: BucketShort},
		{name: "short boundary", text: str(50), want: BucketShort},
		{name: "medium", text: str(51), want: BucketMedium},
		{name: "medium boundary", text: str(150), want: BucketMedium},
		{name: "long", text: str(151), want: BucketLong},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := lengthBucket(tt.text, 50, 150); got != tt.want {
				t.Fatalf("lengthBucket(%d runes) = %q, want %q", len([]rune(tt.text)), got, tt.want)
			}
		})
	}
}

func str(n int) string {
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = 'ሀ'
	}
	return string(runes)
}
