package bamboo

// swapStep records one displacement performed by cuckooPlace, enough to
// undo it: bucket and slot that were written, and the fingerprint that had
// occupied that slot beforehand.
type swapStep struct {
	bucket uint64
	slot   int
	fp     fingerprint
}

// cuckooPlace tries to find fp a home in t starting from bucket i, which
// the caller has already found full (tryPut(i, fp) failed). It displaces a
// uniformly random occupant at each step and chases the displaced
// fingerprint to its alternate bucket, up to maxEvict steps (§4.3).
//
// Written iteratively rather than recursively (§9): maxEvict can run into
// the thousands, and a recursive random walk would grow the stack
// proportionally.
//
// If the chain runs out of steps without finding a free slot, every swap
// performed along the way is rolled back before returning false, mirroring
// _examples/fukua95-pds/cuckoofilter.go's evictAndInsert rollback: a failed
// placement must leave the table exactly as it found it (§7), or the
// fingerprint displaced at the point of exhaustion is silently lost.
func cuckooPlace(t *table, rng randSource, i uint64, fp fingerprint, maxEvict uint32) bool {
	steps := make([]swapStep, 0, maxEvict)

	for step := uint32(0); step < maxEvict; step++ {
		evicted, slot := t.swapRandom(rng, i, fp)
		steps = append(steps, swapStep{bucket: i, slot: slot, fp: evicted})

		// If the evicted fingerprint equals the incoming one, the swap was
		// a no-op on bucket contents, but the chain still advances: the
		// "incoming" item has conceptually moved to evicted's alternate
		// bucket. Equality is not special-cased; the maxEvict bound on the
		// loop is what keeps such a chain from spinning forever.
		ni := altIndex(i, evicted, t.capacity)
		if t.tryPut(ni, evicted) {
			return true
		}

		i, fp = ni, evicted
	}

	for k := len(steps) - 1; k >= 0; k-- {
		s := steps[k]
		t.setSlot(s.bucket, s.slot, s.fp)
	}
	return false
}

// placeInsert is the §4.3 caller-side insert policy: try_put(i1),
// cuckoo(i1), try_put(i2), cuckoo(i2) — four attempts, in that order.
func placeInsert(t *table, rng randSource, i1, i2 uint64, fp fingerprint, maxEvict uint32) bool {
	if t.tryPut(i1, fp) {
		return true
	}
	if cuckooPlace(t, rng, i1, fp, maxEvict) {
		return true
	}
	if t.tryPut(i2, fp) {
		return true
	}
	return cuckooPlace(t, rng, i2, fp, maxEvict)
}

// placeMigrate is the §4.4 migration-time placement policy: try_put on the
// approximated primary index, then cuckoo from it, then cuckoo from its
// alternate. Each cuckoo attempt starts with a plain try_put on its bucket,
// since cuckooPlace itself only handles a bucket already found full.
func placeMigrate(t *table, rng randSource, i uint64, fp fingerprint, maxEvict uint32) bool {
	if t.tryPut(i, fp) {
		return true
	}
	if cuckooPlace(t, rng, i, fp, maxEvict) {
		return true
	}
	alt := altIndex(i, fp, t.capacity)
	if t.tryPut(alt, fp) {
		return true
	}
	return cuckooPlace(t, rng, alt, fp, maxEvict)
}
