package corpus

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// SplitRatios defines the train/dev/test proportions.
type SplitRatios struct {
	Train float64
	Dev   float64
	Test  float64
}

// ValidateRatios checks that each ratio lies within [0, 1] and that the
// three together sum to at most 1.0.
func ValidateRatios(ratios SplitRatios) error {
	for _, entry := range []struct {
		name  string
		value float64
	}{
		{"split.train_ratio", ratios.Train},
		{"split.dev_ratio", ratios.Dev},
		{"split.test_ratio", ratios.Test},
	} {
		if entry.value < 0 || entry.value > 1 {
			return fmt.Errorf("%s must be between 0 and 1", entry.name)
		}
	}
	if sum := ratios.Train + ratios.Dev + ratios.Test; sum > 1+1e-9 {
		return fmt.Errorf("split ratios must sum to at most 1.0, got %.4f", sum)
	}
	return nil
}

// SplitOptions controls the stratified splitter for one language.
type SplitOptions struct {
	Ratios               SplitRatios
	Seed                 int64
	ShortMax             int
	MediumMax            int
	FilterRomanizedTrain bool
}

// SplitResult carries the three partitions plus per-bucket tallies.
type SplitResult struct {
	Train []Record
	Dev   []Record
	Test  []Record

	Total                 int
	Buckets               map[string]map[string]int
	TrainDroppedRomanized int
}

type stratum struct {
	source string
	bucket string
}

// SplitLanguage stratifies records by (source, length bucket), shuffles
// each stratum with a generator seeded from opts.Seed, and apportions
// round(n*train) and round(n*dev) records with test absorbing the
// remainder. Strata are visited in sorted key order, so the same input
// and seed always produce the same partitions. When enabled, romanized
// records are dropped from the train slice after apportionment.
func SplitLanguage(records []Record, opts SplitOptions) SplitResult {
	result := SplitResult{
		Train:   make([]Record, 0, len(records)),
		Dev:     make([]Record, 0),
		Test:    make([]Record, 0),
		Total:   len(records),
		Buckets: emptyBuckets(),
	}

	strata := make(map[stratum][]Record)
	for _, rec := range records {
		key := stratum{
			source: rec.StratumSource(),
			bucket: lengthBucket(rec.Text, opts.ShortMax, opts.MediumMax),
		}
		strata[key] = append(strata[key], rec)
	}

	keys := make([]stratum, 0, len(strata))
	for key := range strata {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i int, j int) bool {
		if keys[i].source != keys[j].source {
			return keys[i].source < keys[j].source
		}
		return keys[i].bucket < keys[j].bucket
	})

	rng := rand.New(rand.NewSource(opts.Seed))
	for _, key := range keys {
		items := strata[key]
		rng.Shuffle(len(items), func(i int, j int) {
			items[i], items[j] = items[j], items[i]
		})

		nTrain, nDev := apportion(len(items), opts.Ratios)
		train := items[:nTrain]
		dev := items[nTrain : nTrain+nDev]
		test := items[nTrain+nDev:]

		if opts.FilterRomanizedTrain {
			kept := make([]Record, 0, len(train))
			for _, rec := range train {
				if rec.Romanized() {
					result.TrainDroppedRomanized++
					continue
				}
				kept = append(kept, rec)
			}
			train = kept
		}

		result.Train = append(result.Train, train...)
		result.Dev = append(result.Dev, dev...)
		result.Test = append(result.Test, test...)
		result.Buckets[SplitTrain][key.bucket] += len(train)
		result.Buckets[SplitDev][key.bucket] += len(dev)
		result.Buckets[SplitTest][key.bucket] += len(test)
	}
	return result
}

// apportion computes integer train and dev counts for a stratum of size
// n. Counts are clamped so train+dev never exceeds n; the remainder is
// the test count.
func apportion(n int, ratios SplitRatios) (int, int) {
	nTrain := int(math.Round(float64(n) * ratios.Train))
	nDev := int(math.Round(float64(n) * ratios.Dev))
	if nTrain > n {
		nTrain = n
	}
	if nTrain+nDev > n {
		nDev = n - nTrain
	}
	return nTrain, nDev
}

func emptyBuckets() map[string]map[string]int {
	return map[string]map[string]int{
		SplitTrain: {BucketShort: 0, BucketMedium: 0, BucketLong: 0},
		SplitDev:   {BucketShort: 0, BucketMedium: 0, BucketLong: 0},
		SplitTest:  {BucketShort: 0, BucketMedium: 0, BucketLong: 0},
	}
}
