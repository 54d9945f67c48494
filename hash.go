package bamboo

import (
	"github.com/aviddiviner/go-murmur"
	"github.com/cespare/xxhash/v2"
)

// fingerprint is the 16-bit non-zero tag stored in place of a key.
// Zero is reserved as the empty-slot sentinel (§3, §9).
type fingerprint uint16

const nullFp fingerprint = 0

// altIndexMixer is the odd 32-bit constant from the teacher's altHash,
// the conventional MurmurHash2 multiplier. Any odd constant preserves
// the alt_index involution under a power-of-two capacity; this is the
// one spec.md §4.1/§9 names explicitly.
const altIndexMixer = 0x5bd1e995

// HashFunc computes a 64-bit digest over a key. Implementations must mix
// both index and fingerprint bits; any fast, well-distributed hash works.
type HashFunc func(key []byte) uint64

// MurmurDigest is the default HashFunc, matching the teacher's choice
// (fukua95-pds's buildParams uses the same MurmurHash64A call).
func MurmurDigest(key []byte) uint64 {
	return murmur.MurmurHash64A(key, 0)
}

// XXHashDigest is a selectable alternate HashFunc, grounded on
// rishabhverma17-HyperCache's cuckoo filter (xxhash.Sum64).
func XXHashDigest(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// deriveFingerprint takes the low 16 bits of a digest, remapping 0 to 1
// so the zero value can keep meaning "empty slot" (§9).
func deriveFingerprint(h uint64) fingerprint {
	fp := fingerprint(h & 0xffff)
	if fp == nullFp {
		fp = 1
	}
	return fp
}

// primaryIndex is digest mod C.
func primaryIndex(h uint64, capacity uint64) uint64 {
	return h % capacity
}

// altIndex is (i XOR (fp * M)) mod C. For any power-of-two C and any i < C,
// altIndex(altIndex(i, fp, C), fp, C) == i (P3): masking to C's bit width
// via "mod C" on a power of two behaves like AND, so XOR-ing the same
// low-bit mixer twice cancels out.
func altIndex(i uint64, fp fingerprint, capacity uint64) uint64 {
	return (i ^ (uint64(fp) * altIndexMixer)) % capacity
}
