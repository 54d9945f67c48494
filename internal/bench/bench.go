// Package bench is the timing harness spec.md treats as an external
// caller: it drives a constructed filter through a batch of inserts and
// lookups and reports elapsed time, never touching the filter's internals.
package bench

import (
	"time"

	"github.com/v-brkic/bamboo-filter"
)

// Result is one timed run against a single filter instance.
type Result struct {
	Label         string
	Inserted      int
	Overflowed    int
	InsertElapsed time.Duration
	HitLookups    int
	HitElapsed    time.Duration
	MissLookups   int
	MissFalsePos  int
	MissElapsed   time.Duration
	Stats         bamboo.Stats
}

// Run inserts every key in keys, then looks each of them up again (hits)
// and looks up every key in misses (expected absent — any positive is a
// false positive), timing each phase separately.
func Run(label string, f *bamboo.Filter, keys [][]byte, misses [][]byte) Result {
	res := Result{Label: label}

	start := time.Now()
	for _, k := range keys {
		if err := f.Insert(k); err != nil {
			res.Overflowed++
			continue
		}
		res.Inserted++
	}
	res.InsertElapsed = time.Since(start)

	start = time.Now()
	for _, k := range keys {
		if f.Contains(k) {
			res.HitLookups++
		}
	}
	res.HitElapsed = time.Since(start)

	start = time.Now()
	for _, k := range misses {
		res.MissLookups++
		if f.Contains(k) {
			res.MissFalsePos++
		}
	}
	res.MissElapsed = time.Since(start)

	res.Stats = f.Stats()
	return res
}

// FalsePositiveRate is the empirical rate observed in the miss phase.
func (r Result) FalsePositiveRate() float64 {
	if r.MissLookups == 0 {
		return 0
	}
	return float64(r.MissFalsePos) / float64(r.MissLookups)
}
