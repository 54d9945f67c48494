package bamboo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// P3: alt_index must be involutive for any power-of-two capacity.
func TestAltIndexInvolution(t *testing.T) {
	const capacity = 1024
	rng := rand.New(rand.NewSource(42))

	for n := 0; n < 10000; n++ {
		i := uint64(rng.Intn(capacity))
		fp := fingerprint(rng.Intn(1 << 16))

		alt := altIndex(i, fp, capacity)
		back := altIndex(alt, fp, capacity)

		assert.Equal(t, i, back, "alt_index must be its own inverse")
	}
}

func TestDeriveFingerprintNeverZero(t *testing.T) {
	for _, h := range []uint64{0, 1, 0xffff, 0x10000, 0xffffffffffffffff} {
		fp := deriveFingerprint(h)
		assert.NotEqual(t, nullFp, fp)
	}
}

func TestPrimaryIndexWithinCapacity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const capacity = 256
	for n := 0; n < 1000; n++ {
		h := rng.Uint64()
		i := primaryIndex(h, capacity)
		assert.Less(t, i, uint64(capacity))
	}
}

func TestMurmurAndXXHashDiffer(t *testing.T) {
	key := []byte("bamboo-filter-key")
	assert.NotEqual(t, MurmurDigest(key), XXHashDigest(key))
}
