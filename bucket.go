package bamboo

// bucket is an unordered, fixed-capacity container of fingerprints.
// |bucket| <= len(slots); empty slots hold nullFp. Duplicates of the same
// fingerprint are permitted (§3).
type bucket struct {
	slots []fingerprint
}

func makeBucket(size uint16) bucket {
	return bucket{slots: make([]fingerprint, size)}
}

// has reports whether fp is present anywhere in the bucket. O(B).
func (b *bucket) has(fp fingerprint) bool {
	for _, v := range b.slots {
		if v == fp {
			return true
		}
	}
	return false
}

// tryPut appends fp into the first empty slot, enforcing the |bucket| <= B
// bound (§4.2). It is the only operation that may grow occupancy.
func (b *bucket) tryPut(fp fingerprint) bool {
	for i, v := range b.slots {
		if v == nullFp {
			b.slots[i] = fp
			return true
		}
	}
	return false
}

// swapRandom swaps fp into a uniformly random occupied slot and returns the
// fingerprint that was displaced along with the slot index used, so a
// caller that later has to unwind the swap can put the displaced
// fingerprint back into the exact slot it came from. Requires the bucket
// to be non-empty (callers only reach here after tryPut has already
// failed, i.e. the bucket is full).
func (b *bucket) swapRandom(rng randSource, fp fingerprint) (fingerprint, int) {
	i := rng.Intn(len(b.slots))
	old := b.slots[i]
	b.slots[i] = fp
	return old, i
}

// setSlot restores a specific slot to fp. Used only to unwind a swapRandom
// whose chain ultimately failed to find a home (§7 consistency).
func (b *bucket) setSlot(i int, fp fingerprint) {
	b.slots[i] = fp
}

// clear empties the bucket, used by the expansion controller once a
// bucket's fingerprints have been relocated to the new table (I3).
func (b *bucket) clear() {
	for i := range b.slots {
		b.slots[i] = nullFp
	}
}
