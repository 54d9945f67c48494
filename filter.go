// Package bamboo implements an approximate set-membership filter with
// dynamic growth: cuckoo hashing over short fingerprints, with smooth,
// segment-by-segment expansion instead of a stop-the-world rebuild
// (a "Bamboo filter").
//
// Insert has no false negatives for any key whose placement succeeded;
// Contains is total. The filter is not safe for concurrent mutation — a
// single logical writer is assumed (§5).
package bamboo

import "math/rand"

// Filter is a Bamboo-style cuckoo filter. The zero value is not usable;
// construct one with New.
type Filter struct {
	old      *table
	newTable *table // non-nil only while expanding

	expanding     bool
	migrateCursor uint64
	size          uint64

	cfg Config
	rng *rand.Rand

	migrationDrops uint64
	overflows      uint64
	expansions     uint64
}

// New constructs a Filter. It fails with a *ConstructionError (wrapping
// ErrConstruction) if any parameter in cfg is invalid.
func New(cfg Config) (*Filter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Hash == nil {
		cfg.Hash = MurmurDigest
	}

	capacity := nextPow2(cfg.InitialCapacity)
	return &Filter{
		old: newTable(capacity, cfg.BucketSize),
		cfg: cfg,
		rng: newRand(cfg.Seed, cfg.Deterministic),
	}, nil
}

// Insert adds key to the filter. It returns nil on success and
// ErrOverflow if cuckoo placement failed on both candidate buckets within
// Config.MaxEvict steps. In that case the failed placement is rolled back,
// so no stored fingerprint is displaced; the expansion step that Insert runs
// before placement (which may start a migration or drain a segment) is not
// undone.
//
// Insert is idempotent: if Contains(key) is already true, Insert returns
// nil without incrementing Size (§4.3 "Tie-breaks", P2).
func (f *Filter) Insert(key []byte) error {
	if f.Contains(key) {
		return nil
	}

	f.maybeExpand()

	h := f.cfg.Hash(key)
	fp := deriveFingerprint(h)
	i1 := primaryIndex(h, f.old.capacity)
	i2 := altIndex(i1, fp, f.old.capacity)

	if placeInsert(f.old, f.rng, i1, i2, fp, f.cfg.MaxEvict) {
		f.size++
		return nil
	}

	f.overflows++
	return ErrOverflow
}

// Contains reports whether key may have been inserted. It never produces
// a false negative for a key whose Insert returned nil and was not later
// dropped during migration (§4.5, P1, P4).
func (f *Filter) Contains(key []byte) bool {
	h := f.cfg.Hash(key)
	fp := deriveFingerprint(h)
	i1 := primaryIndex(h, f.old.capacity)
	i2 := altIndex(i1, fp, f.old.capacity)

	if f.old.has(i1, fp) || f.old.has(i2, fp) {
		return true
	}

	if !f.expanding {
		return false
	}

	// Mirror the migration-time indexing rule exactly (§4.5, §9): the new
	// table's primary index is the *old* primary index modulo the new
	// capacity, not a fresh digest mod C_new.
	ni1 := i1 % f.newTable.capacity
	ni2 := altIndex(ni1, fp, f.newTable.capacity)
	return f.newTable.has(ni1, fp) || f.newTable.has(ni2, fp)
}

// Size returns the number of successful inserts since construction.
func (f *Filter) Size() uint64 {
	return f.size
}

// Capacity returns C_old + C_new while a migration is in progress, else
// just C_old.
func (f *Filter) Capacity() uint64 {
	if f.expanding {
		return f.old.capacity + f.newTable.capacity
	}
	return f.old.capacity
}

// Expanding reports whether a migration is currently in progress.
func (f *Filter) Expanding() bool {
	return f.expanding
}

// Stats is an observability-only snapshot (§3.1); none of its fields
// affect Insert/Contains/Size/Capacity semantics.
type Stats struct {
	Size           uint64
	Capacity       uint64
	Expanding      bool
	MigrateCursor  uint64
	MigrationDrops uint64
	Overflows      uint64
	Expansions     uint64
	LoadFactor     float64
}

// Stats returns a snapshot of the filter's counters and current state.
func (f *Filter) Stats() Stats {
	return Stats{
		Size:           f.size,
		Capacity:       f.Capacity(),
		Expanding:      f.expanding,
		MigrateCursor:  f.migrateCursor,
		MigrationDrops: f.migrationDrops,
		Overflows:      f.overflows,
		Expansions:     f.expansions,
		LoadFactor:     float64(f.size) / float64(f.old.capacity*uint64(f.cfg.BucketSize)),
	}
}

// Drops returns the number of fingerprints lost during segment migration
// because no slot could be found even with cuckoo relocation (internal
// MigrationDrop, §7).
func (f *Filter) Drops() uint64 {
	return f.migrationDrops
}

// Overflows returns the number of Insert calls that returned ErrOverflow.
func (f *Filter) Overflows() uint64 {
	return f.overflows
}
