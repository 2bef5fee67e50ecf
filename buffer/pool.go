// Package buffer provides pooled, power-of-two sized typed buffers.
//
// Every dense array in the storage core is backed by a slice handed out by a
// Pool. Capacities always come from the power-of-two size sequence so that a
// buffer returned to the pool can be reused for any later request that rounds
// to the same bucket.
package buffer

import (
	"fmt"
	"math/bits"
)

// maxBuckets covers every power of two representable in an int slice length.
const maxBuckets = 48

// ContainingCapacity returns the smallest power of two >= count, with a floor
// of 1. This is the only capacity sequence the pools speak.
func ContainingCapacity(count int) int {
	if count <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(count-1))
}

// Pool is a free-list allocator for slices of T. Buffers taken from a Pool
// must be returned to the same Pool; the pool tracks the number of
// outstanding buffers so owners can verify they leaked nothing on disposal.
//
// A Pool is not safe for concurrent use.
type Pool[T any] struct {
	free        [maxBuckets][][]T
	outstanding int
}

// NewPool creates an empty pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

func bucketIndex(capacity int) int {
	return bits.TrailingZeros(uint(capacity))
}

// Take returns a zeroed buffer whose length is the containing capacity of
// count, reusing a previously returned buffer when one is available.
func (p *Pool[T]) Take(count int) []T {
	capacity := ContainingCapacity(count)
	bucket := bucketIndex(capacity)

	list := p.free[bucket]
	if n := len(list); n > 0 {
		buf := list[n-1]
		p.free[bucket] = list[:n-1]
		p.outstanding++
		clear(buf)
		return buf
	}

	p.outstanding++
	return make([]T, capacity)
}

// Return hands a buffer back to the pool for reuse. The buffer must have been
// taken from this pool, so its length is always a power of two.
func (p *Pool[T]) Return(buf []T) {
	capacity := len(buf)
	if capacity&(capacity-1) != 0 || capacity == 0 {
		panic(fmt.Sprintf("buffer: returned a buffer of length %d, which is not a pool capacity", capacity))
	}
	bucket := bucketIndex(capacity)
	p.free[bucket] = append(p.free[bucket], buf)
	p.outstanding--
}

// Resize takes a buffer of the containing capacity of targetCount, copies the
// first copyCount elements of buf into it, and returns buf to the pool. A nil
// buf behaves like Take with copyCount zero.
func (p *Pool[T]) Resize(buf []T, targetCount, copyCount int) []T {
	if buf == nil {
		return p.Take(targetCount)
	}
	if copyCount > len(buf) {
		panic(fmt.Sprintf("buffer: copy count %d exceeds source capacity %d", copyCount, len(buf)))
	}
	resized := p.Take(targetCount)
	copy(resized, buf[:copyCount])
	p.Return(buf)
	return resized
}

// Outstanding reports how many taken buffers have not yet been returned.
func (p *Pool[T]) Outstanding() int {
	return p.outstanding
}
