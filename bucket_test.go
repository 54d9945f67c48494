package bamboo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedRand struct{ n int }

func (r fixedRand) Intn(int) int { return r.n }

func TestBucketTryPutRespectsCapacity(t *testing.T) {
	b := makeBucket(2)
	assert.True(t, b.tryPut(11))
	assert.True(t, b.tryPut(22))
	assert.False(t, b.tryPut(33), "bucket must not exceed B slots (I1)")
}

func TestBucketHas(t *testing.T) {
	b := makeBucket(4)
	b.tryPut(7)
	assert.True(t, b.has(7))
	assert.False(t, b.has(8))
}

func TestBucketSwapRandom(t *testing.T) {
	b := makeBucket(3)
	b.tryPut(1)
	b.tryPut(2)
	b.tryPut(3)

	evicted, slot := b.swapRandom(fixedRand{1}, 99)
	assert.Equal(t, fingerprint(2), evicted)
	assert.Equal(t, 1, slot)
	assert.True(t, b.has(99))
	assert.False(t, b.has(2))

	b.setSlot(slot, evicted)
	assert.True(t, b.has(2))
	assert.False(t, b.has(99))
}

func TestBucketClear(t *testing.T) {
	b := makeBucket(2)
	b.tryPut(5)
	b.clear()
	assert.False(t, b.has(5))
	assert.True(t, b.tryPut(5))
}
