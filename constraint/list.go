// Package constraint defines constraint handles and the per-body list of
// constraints attached to a body, the edge set of the body graph.
package constraint

import (
	"fmt"

	"github.com/akmonengine/plume/buffer"
)

// Handle is a stable identifier for a constraint, owned by the solver.
type Handle int32

// InvalidHandle marks the absence of a constraint.
const InvalidHandle Handle = -1

// Ref records that a body participates in a constraint, together with the
// body's position within that constraint's body list.
type Ref struct {
	Constraint        Handle
	IndexInConstraint int32
}

// List is a body's ordered sequence of constraint references, backed by
// pooled storage. Order carries no meaning; removal swaps with the last
// element. Lists are value types moved between slots by ownership transfer.
type List struct {
	Count int
	Refs  []Ref
}

// NewList creates a list with room for at least initialCapacity references.
func NewList(pool *buffer.Pool[Ref], initialCapacity int) List {
	return List{Refs: pool.Take(initialCapacity)}
}

// Add appends a reference, doubling the backing buffer when it is full.
func (l *List) Add(ref Ref, pool *buffer.Pool[Ref]) {
	if l.Count == len(l.Refs) {
		l.Refs = pool.Resize(l.Refs, l.Count*2, l.Count)
	}
	l.Refs[l.Count] = ref
	l.Count++
}

// Remove deletes the reference to the given constraint by swapping the last
// element into its place, then shrinks the backing buffer if occupancy has
// fallen to half or less of its capacity and the capacity still exceeds
// minimumCapacity. Removing a constraint that is not in the list is a
// contract violation.
func (l *List) Remove(handle Handle, pool *buffer.Pool[Ref], minimumCapacity int) {
	for i := 0; i < l.Count; i++ {
		if l.Refs[i].Constraint != handle {
			continue
		}
		l.Count--
		l.Refs[i] = l.Refs[l.Count]
		l.shrink(pool, minimumCapacity)
		return
	}
	panic(fmt.Sprintf("constraint: removing constraint %d that is not attached to this body", handle))
}

func (l *List) shrink(pool *buffer.Pool[Ref], minimumCapacity int) {
	minimum := buffer.ContainingCapacity(minimumCapacity)
	if l.Count > len(l.Refs)/2 || len(l.Refs) <= minimum {
		return
	}
	target := l.Count
	if target < minimum {
		target = minimum
	}
	l.Refs = pool.Resize(l.Refs, target, l.Count)
}

// IndexOf returns the position of the given constraint in the list, or -1.
func (l *List) IndexOf(handle Handle) int {
	for i := 0; i < l.Count; i++ {
		if l.Refs[i].Constraint == handle {
			return i
		}
	}
	return -1
}

// EnsureCapacity grows the backing buffer to hold at least capacity
// references. It never shrinks.
func (l *List) EnsureCapacity(capacity int, pool *buffer.Pool[Ref]) {
	if buffer.ContainingCapacity(capacity) <= len(l.Refs) {
		return
	}
	l.Refs = pool.Resize(l.Refs, capacity, l.Count)
}

// ResizeCapacity sets the backing buffer to the containing capacity of
// max(capacity, Count), growing or shrinking as needed.
func (l *List) ResizeCapacity(capacity int, pool *buffer.Pool[Ref]) {
	if capacity < l.Count {
		capacity = l.Count
	}
	if buffer.ContainingCapacity(capacity) == len(l.Refs) {
		return
	}
	l.Refs = pool.Resize(l.Refs, capacity, l.Count)
}

// Dispose returns the backing buffer to the pool and empties the list.
func (l *List) Dispose(pool *buffer.Pool[Ref]) {
	if l.Refs != nil {
		pool.Return(l.Refs)
	}
	*l = List{}
}
