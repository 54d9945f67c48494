package bamboo

// Config is the construction parameter set from spec.md §6.
type Config struct {
	// InitialCapacity is C0, the number of buckets the filter starts
	// with. Rounded up to the next power of two if it isn't one already.
	InitialCapacity uint64

	// BucketSize is B, the number of fingerprint slots per bucket.
	BucketSize uint16

	// LoadThreshold triggers expansion once size/(C*B) exceeds it.
	// Must be in (0, 1].
	LoadThreshold float64

	// MaxEvict bounds the cuckoo eviction chain depth.
	MaxEvict uint32

	// SegmentSize is the number of old-table buckets drained per Insert
	// while a migration is in progress. Must be in (0, InitialCapacity].
	SegmentSize uint64

	// Hash selects the digest function. Defaults to MurmurDigest.
	Hash HashFunc

	// Seed, when Deterministic is true, seeds the filter's own random
	// source instead of the wall clock. Tests should set Deterministic.
	Seed          int64
	Deterministic bool
}

const defaultBucketSize = 4

// DefaultConfig returns a Config with the paper's commonly recommended
// defaults (B=4 slots/bucket) plus the caller-supplied capacity.
func DefaultConfig(initialCapacity uint64) Config {
	return Config{
		InitialCapacity: initialCapacity,
		BucketSize:      defaultBucketSize,
		LoadThreshold:   0.95,
		MaxEvict:        500,
		SegmentSize:     1,
	}
}

func (c Config) validate() error {
	if c.InitialCapacity == 0 {
		return newConstructionError("InitialCapacity", "must be positive")
	}
	if c.BucketSize == 0 {
		return newConstructionError("BucketSize", "must be positive")
	}
	if c.LoadThreshold <= 0 || c.LoadThreshold > 1 {
		return newConstructionError("LoadThreshold", "must be in (0, 1]")
	}
	if c.SegmentSize == 0 {
		return newConstructionError("SegmentSize", "must be positive")
	}
	if c.SegmentSize > c.InitialCapacity {
		return newConstructionError("SegmentSize", "must not exceed the initial capacity")
	}
	return nil
}

// nextPow2 rounds n up to the next power of two, matching the teacher's
// next2N (fukua95-pds/cuckoofilter.go) and the paper's power-of-two
// capacity requirement (§9: non-power-of-two capacities break the
// alt_index involution).
func nextPow2(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n++
	return n
}
