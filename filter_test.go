package bamboo

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detConfig(initialCapacity uint64, bucketSize uint16, loadThreshold float64, maxEvict uint32, segmentSize uint64) Config {
	return Config{
		InitialCapacity: initialCapacity,
		BucketSize:      bucketSize,
		LoadThreshold:   loadThreshold,
		MaxEvict:        maxEvict,
		SegmentSize:     segmentSize,
		Seed:            1,
		Deterministic:   true,
	}
}

// Scenario 1: tiny filter, no expansion.
func TestTinyFilterNoExpansion(t *testing.T) {
	f, err := New(detConfig(8, 2, 0.9, 100, 1))
	require.NoError(t, err)

	keys := [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")}
	for _, k := range keys {
		require.NoError(t, f.Insert(k))
	}

	for _, k := range keys {
		assert.True(t, f.Contains(k))
	}
	assert.Equal(t, uint64(4), f.Size())
}

// Scenario 2: triggered expansion.
func TestTriggeredExpansion(t *testing.T) {
	f, err := New(detConfig(4, 2, 0.5, 50, 2))
	require.NoError(t, err)

	keys := make([][]byte, 8)
	for i := range keys {
		keys[i] = []byte(strconv.Itoa(i))
	}
	for _, k := range keys {
		require.NoError(t, f.Insert(k))
	}

	assert.Equal(t, uint64(8), f.Capacity())
	assert.False(t, f.Expanding())
	for _, k := range keys {
		assert.True(t, f.Contains(k))
	}
}

// Scenario 3: dedup via contains.
func TestDedupViaContains(t *testing.T) {
	f, err := New(detConfig(64, 4, 0.9, 100, 1))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		require.NoError(t, f.Insert([]byte("x")))
	}
	assert.Equal(t, uint64(1), f.Size())
}

// Scenario 4: false positive rate for non-inserted keys is bounded.
func TestFalsePositiveRateBound(t *testing.T) {
	f, err := New(detConfig(2048, 4, 0.9, 500, 4))
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		key := make([]byte, 16)
		for j := range key {
			key[j] = byte((i*31 + j*7) % 256)
		}
		require.NoError(t, f.Insert(key))
	}

	falsePositives := 0
	const probes = 100000
	for i := 0; i < probes; i++ {
		key := make([]byte, 16)
		for j := range key {
			key[j] = byte((i*131+1)*7 + j*13)
		}
		if f.Contains(key) {
			falsePositives++
		}
	}
	assert.Less(t, falsePositives, 2000)
}

// Scenario 6: migration mid-state query — every previously inserted key
// must still hit Contains at every intermediate drain step (P4).
func TestMigrationMidStateQuery(t *testing.T) {
	f, err := New(detConfig(8, 4, 0.3, 100, 1))
	require.NoError(t, err)

	var inserted [][]byte
	for i := 0; i < 24; i++ {
		k := []byte(strconv.Itoa(i))
		err := f.Insert(k)
		if err == nil {
			inserted = append(inserted, k)
		}
		for _, prev := range inserted {
			assert.True(t, f.Contains(prev), "key %q must remain visible mid-migration", prev)
		}
	}
}

func TestConstructionValidation(t *testing.T) {
	cases := []Config{
		{InitialCapacity: 0, BucketSize: 4, LoadThreshold: 0.9, SegmentSize: 1},
		{InitialCapacity: 8, BucketSize: 0, LoadThreshold: 0.9, SegmentSize: 1},
		{InitialCapacity: 8, BucketSize: 4, LoadThreshold: 0, SegmentSize: 1},
		{InitialCapacity: 8, BucketSize: 4, LoadThreshold: 1.5, SegmentSize: 1},
		{InitialCapacity: 8, BucketSize: 4, LoadThreshold: 0.9, SegmentSize: 0},
		{InitialCapacity: 8, BucketSize: 4, LoadThreshold: 0.9, SegmentSize: 9},
	}
	for _, cfg := range cases {
		_, err := New(cfg)
		require.Error(t, err)
		var constructionErr *ConstructionError
		assert.ErrorAs(t, err, &constructionErr)
	}
}

func TestOverflowLeavesFilterConsistent(t *testing.T) {
	// Two buckets of one slot each, no eviction budget: at most two keys
	// can be placed, so a later distinct key hashing into an
	// already-occupied pair of buckets should overflow rather than
	// corrupt filter state.
	f, err := New(detConfig(2, 1, 1.0, 0, 1))
	require.NoError(t, err)

	inserted := 0
	overflowed := false
	for i := 0; i < 20 && !overflowed; i++ {
		err := f.Insert([]byte(strconv.Itoa(i)))
		if err == ErrOverflow {
			overflowed = true
			continue
		}
		require.NoError(t, err)
		inserted++
	}
	assert.True(t, overflowed)
	assert.Equal(t, uint64(inserted), f.Size())
}

// A failed cuckoo chain must roll back every swap it performed: otherwise
// the fingerprint displaced right before exhaustion is left in place,
// silently evicting whatever key used to occupy that slot (§7).
func TestOverflowRollbackPreservesEarlierKeys(t *testing.T) {
	f, err := New(detConfig(2, 1, 1.0, 1, 1))
	require.NoError(t, err)

	var placed [][]byte
	for i := 0; i < 2; i++ {
		k := []byte(strconv.Itoa(i))
		require.NoError(t, f.Insert(k))
		placed = append(placed, k)
	}
	require.Equal(t, uint64(2), f.Size(), "both buckets (capacity=2, bucketSize=1) should now be full")

	overflowed := false
	for i := 2; i < 40 && !overflowed; i++ {
		if err := f.Insert([]byte(strconv.Itoa(i))); err == ErrOverflow {
			overflowed = true
		}
	}
	require.True(t, overflowed, "with no free slots left a further distinct key must overflow")

	for _, k := range placed {
		assert.True(t, f.Contains(k), "a failed eviction chain must not erase a previously placed key")
	}
	assert.Equal(t, uint64(2), f.Size())
}

func TestCapacityRoundsUpToPowerOfTwo(t *testing.T) {
	f, err := New(detConfig(5, 4, 0.9, 100, 1))
	require.NoError(t, err)
	assert.Equal(t, uint64(8), f.Capacity())
}

func TestStatsReflectOverflowsAndExpansions(t *testing.T) {
	f, err := New(detConfig(4, 2, 0.5, 50, 4))
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		_ = f.Insert([]byte(strconv.Itoa(i)))
	}

	stats := f.Stats()
	assert.Equal(t, f.Size(), stats.Size)
	assert.Equal(t, f.Capacity(), stats.Capacity)
	assert.GreaterOrEqual(t, stats.Expansions, uint64(1))
}
