package bamboo

import (
	"math/rand"
	"time"
)

// randSource is the minimal interface the cuckoo placer needs from a
// random number generator. *rand.Rand satisfies it; tests can substitute
// a deterministic stub.
type randSource interface {
	Intn(n int) int
}

// newRand returns the filter's own PRNG, seeded from Config.Seed when
// Config.Deterministic is true (for tests) or from the wall clock otherwise. Owning the
// source per-instance rather than reaching for the global math/rand
// default keeps mutation isolated to the calling context, as §5 and §9
// require.
func newRand(seed int64, deterministic bool) *rand.Rand {
	if !deterministic {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
