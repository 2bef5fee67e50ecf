package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akmonengine/plume/buffer"
)

func TestListAddGrows(t *testing.T) {
	pool := buffer.NewPool[Ref]()
	list := NewList(pool, 2)

	for i := 0; i < 5; i++ {
		list.Add(Ref{Constraint: Handle(i)}, pool)
	}

	assert.Equal(t, 5, list.Count)
	assert.Len(t, list.Refs, 8, "capacity doubles as the list fills")
	for i := 0; i < 5; i++ {
		assert.Equal(t, Handle(i), list.Refs[i].Constraint)
	}
}

func TestListRemoveSwapsWithLast(t *testing.T) {
	pool := buffer.NewPool[Ref]()
	list := NewList(pool, 4)
	for i := 0; i < 4; i++ {
		list.Add(Ref{Constraint: Handle(i), IndexInConstraint: 1}, pool)
	}

	list.Remove(0, pool, 1)

	assert.Equal(t, 3, list.Count)
	assert.Equal(t, Handle(3), list.Refs[0].Constraint, "last element swapped into the hole")
	assert.Equal(t, -1, list.IndexOf(0))
}

func TestListRemoveMissingPanics(t *testing.T) {
	pool := buffer.NewPool[Ref]()
	list := NewList(pool, 2)
	list.Add(Ref{Constraint: 7}, pool)

	assert.Panics(t, func() {
		list.Remove(8, pool, 1)
	})
}

// Shrink policy: capacity K=8, minimum M=2. Removing down to occupancy 4
// (= K/2) shrinks to max(count, M) = 4; removing one more element leaves the
// new capacity alone because occupancy has not crossed half of it again.
func TestListShrinkPolicy(t *testing.T) {
	pool := buffer.NewPool[Ref]()
	list := NewList(pool, 8)
	for i := 0; i < 8; i++ {
		list.Add(Ref{Constraint: Handle(i)}, pool)
	}
	require.Len(t, list.Refs, 8)

	for i := 0; i < 4; i++ {
		list.Remove(Handle(i), pool, 2)
	}
	assert.Equal(t, 4, list.Count)
	assert.Len(t, list.Refs, 4, "occupancy reached half of capacity")

	list.Remove(list.Refs[0].Constraint, pool, 2)
	assert.Equal(t, 3, list.Count)
	assert.Len(t, list.Refs, 4, "3 of 4 is above the half threshold")

	list.Remove(list.Refs[0].Constraint, pool, 2)
	assert.Len(t, list.Refs, 2, "2 of 4 shrinks again, clamped to the minimum")

	list.Remove(list.Refs[0].Constraint, pool, 2)
	assert.Len(t, list.Refs, 2, "capacity never drops below the minimum")
}

func TestListEnsureAndResizeCapacity(t *testing.T) {
	pool := buffer.NewPool[Ref]()
	list := NewList(pool, 2)
	list.Add(Ref{Constraint: 1}, pool)
	list.Add(Ref{Constraint: 2}, pool)

	list.EnsureCapacity(5, pool)
	assert.Len(t, list.Refs, 8)
	list.EnsureCapacity(3, pool)
	assert.Len(t, list.Refs, 8, "ensure never shrinks")

	list.ResizeCapacity(1, pool)
	assert.Len(t, list.Refs, 2, "resize clamps to the live count")
	assert.Equal(t, Handle(1), list.Refs[0].Constraint)
	assert.Equal(t, Handle(2), list.Refs[1].Constraint)
}

func TestListDisposeReturnsBuffer(t *testing.T) {
	pool := buffer.NewPool[Ref]()
	list := NewList(pool, 4)
	list.Add(Ref{Constraint: 1}, pool)

	list.Dispose(pool)

	assert.Zero(t, list.Count)
	assert.Nil(t, list.Refs)
	assert.Equal(t, 0, pool.Outstanding())
}
