package bamboo

// maybeExpand is the expansion controller entry point, called at the start
// of every Insert after dedupe (§4.4). It may start a new migration, and
// unconditionally drains one segment if a migration is already underway.
func (f *Filter) maybeExpand() {
	if !f.expanding {
		loadFactor := float64(f.size) / float64(f.old.capacity*uint64(f.cfg.BucketSize))
		if loadFactor > f.cfg.LoadThreshold {
			f.startExpansion()
		}
	}

	if f.expanding {
		f.drainSegment()
	}
}

// startExpansion allocates a new table at twice the current capacity and
// begins the migration cursor at bucket 0 (I3/I5's "present only during
// migration" new_table).
func (f *Filter) startExpansion() {
	f.newTable = newTable(f.old.capacity*2, f.cfg.BucketSize)
	f.migrateCursor = 0
	f.expanding = true
}

// drainSegment moves up to SegmentSize old-table buckets into the new
// table, advances migrateCursor, and finalizes the migration once every
// old bucket has been drained (I5).
func (f *Filter) drainSegment() {
	end := f.migrateCursor + f.cfg.SegmentSize
	if end > f.old.capacity {
		end = f.old.capacity
	}

	for b := f.migrateCursor; b < end; b++ {
		src := &f.old.buckets[b]
		for i, fp := range src.slots {
			if fp == nullFp {
				continue
			}
			// §4.4: the new-table primary index is the old bucket number
			// modulo the new capacity, not a rehash from the key (the
			// filter stores no keys). This is a deliberate, lossy
			// approximation — see SPEC_FULL.md §9 and §4.4.
			ni := b % f.newTable.capacity
			if !placeMigrate(f.newTable, f.rng, ni, fp, f.cfg.MaxEvict) {
				f.migrationDrops++
			}
			src.slots[i] = nullFp
		}
	}

	f.migrateCursor = end
	if f.migrateCursor == f.old.capacity {
		f.finalizeExpansion()
	}
}

// finalizeExpansion completes a migration: the new table becomes
// authoritative, the old one is released, and capacity has doubled (I5).
func (f *Filter) finalizeExpansion() {
	f.old = f.newTable
	f.newTable = nil
	f.expanding = false
	f.migrateCursor = 0
	f.expansions++
}
