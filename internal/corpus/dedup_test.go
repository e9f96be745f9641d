package corpus

import "testing"

func TestDedup_RemovesExactDuplicates(t *testing.T) {
	t.Parallel()

	records := []Record{
		{Text: "qaStaHvIS wa' ram", Source: "wikipedia"},
		{Text: "qaStaHvIS  wa' ram", Source: "tatoeba"},
		{Text: "Heghlu'meH QaQ jajvam", Source: "wikipedia"},
	}

	result := Dedup(records, DedupOptions{})
	if len(result.Kept) != 2 {
		t.Fatalf("len(Kept) = %d, want 2", len(result.Kept))
	}
	if result.Input != 3 || result.ExactDups != 1 || result.NearDups != 0 {
		t.Fatalf("counts = %d/%d/%d, want 3/1/0", result.Input, result.ExactDups, result.NearDups)
	}
	// First occurrence wins, so the wikipedia copy survives.
	if result.Kept[0].Source != "wikipedia" {
		t.Fatalf("kept source = %q, want wikipedia", result.Kept[0].Source)
	}
}

func TestDedup_FlattensKeptText(t *testing.T) {
	t.Parallel()

	records := []Record{{Text: "  two \n lines  "}}
	result := Dedup(records, DedupOptions{})
	if len(result.Kept) != 1 {
		t.Fatalf("len(Kept) = %d, want 1", len(result.Kept))
	}
	if result.Kept[0].Text != "two lines" {
		t.Fatalf("Text = %q, want %q", result.Kept[0].Text, "two lines")
	}
	if result.Kept[0].Trace["dedup"] != "kept" {
		t.Fatalf("Trace = %v, want dedup=kept", result.Kept[0].Trace)
	}
}

func TestDedup_DropsEmptyWithoutCounting(t *testing.T) {
	t.Parallel()

	records := []Record{{Text: " \t "}, {Text: "kept"}}
	result := Dedup(records, DedupOptions{})
	if len(result.Kept) != 1 {
		t.Fatalf("len(Kept) = %d, want 1", len(result.Kept))
	}
	if result.Input != 2 || result.ExactDups != 0 || result.NearDups != 0 {
		t.Fatalf("counts = %d/%d/%d, want 2/0/0", result.Input, result.ExactDups, result.NearDups)
	}
}

func TestDedup_NearDuplicates(t *testing.T) {
	t.Parallel()

	records := []Record{
		{Text: "the quick brown fox jumps over the lazy dog"},
		{Text: "the quick brown fox jumps over the lazy dog!"},
		{Text: " например все люди рождаются свободными"},
	}

	result := Dedup(records, DedupOptions{NearDup: true, JaccardThreshold: 0.85, NGram: 5})
	if len(result.Kept) != 2 {
		t.Fatalf("len(Kept) = %d, want 2", len(result.Kept))
	}
	if result.NearDups != 1 {
		t.Fatalf("NearDups = %d, want 1", result.NearDups)
	}
}

func TestDedup_NearDuplicateAgainstFirstKept(t *testing.T) {
	t.Parallel()

	// The very first kept record's signature must join the comparison
	// set, otherwise its near duplicates slip through.
	records := []Record{
		{Text: "the quick brown fox jumps over the lazy dog"},
		{Text: "a quick brown fox jumps over the lazy dog"},
	}

	result := Dedup(records, DedupOptions{NearDup: true, JaccardThreshold: 0.7, NGram: 5})
	if len(result.Kept) != 1 {
		t.Fatalf("len(Kept) = %d, want 1", len(result.Kept))
	}
	if result.NearDups != 1 {
		t.Fatalf("NearDups = %d, want 1", result.NearDups)
	}
}

func TestDedup_ThresholdIsInclusive(t *testing.T) {
	t.Parallel()

	records := []Record{{Text: "abcdef"}, {Text: "abcdeg"}}
	// 2-grams: {ab bc cd de ef} vs {ab bc cd de eg} -> Jaccard 4/6.
	result := Dedup(records, DedupOptions{NearDup: true, JaccardThreshold: 4.0 / 6.0, NGram: 2})
	if result.NearDups != 1 {
		t.Fatalf("NearDups = %d, want 1 at exact threshold", result.NearDups)
	}

	result = Dedup([]Record{{Text: "abcdef"}, {Text: "abcdeg"}},
		DedupOptions{NearDup: true, JaccardThreshold: 0.7, NGram: 2})
	if result.NearDups != 0 {
		t.Fatalf("NearDups = %d, want 0 above threshold", result.NearDups)
	}
}

func TestDedup_NearDupDisabledKeepsNearMatches(t *testing.T) {
	t.Parallel()

	records := []Record{
		{Text: "the quick brown fox jumps over the lazy dog"},
		{Text: "the quick brown fox jumps over the lazy dog!"},
	}
	result := Dedup(records, DedupOptions{NearDup: false})
	if len(result.Kept) != 2 {
		t.Fatalf("len(Kept) = %d, want 2", len(result.Kept))
	}
}

func TestDedup_EmptyInput(t *testing.T) {
	t.Parallel()

	result := Dedup(nil, DedupOptions{})
	if len(result.Kept) != 0 || result.Input != 0 {
		t.Fatalf("unexpected result for nil input: %+v", result)
	}
}
