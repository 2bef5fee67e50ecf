// Package plume implements the dense body storage core of a rigid-body
// simulation: the per-body state arrays, the constraint adjacency between
// bodies, and the traversals built on top of them.
//
// Slots [0, Count) always hold live bodies with no holes so integration,
// collision and solving stages can batch over contiguous memory. Removal
// compacts by moving the last live body into the vacated slot; callers see
// stable handles, resolved through an external indirection table that the
// set updates on every move.
//
// No operation here is internally synchronized. Structural mutations (Add,
// RemoveAt, Swap, Resize, Clear) must be confined to a single maintenance
// phase; concurrent read passes are safe only between such phases.
package plume

import (
	"fmt"

	"github.com/akmonengine/plume/body"
	"github.com/akmonengine/plume/buffer"
	"github.com/akmonengine/plume/constraint"
)

// DefaultMinimumConstraintCapacity is the starting capacity of each body's
// constraint list, and the floor below which the lists never shrink.
const DefaultMinimumConstraintCapacity = 4

// Pools bundles the typed arena pools backing a set's parallel arrays.
// A simulation creates one bundle and shares it across its sets.
type Pools struct {
	Handles     *buffer.Pool[BodyHandle]
	Poses       *buffer.Pool[body.Pose]
	Velocities  *buffer.Pool[body.Velocity]
	Inertias    *buffer.Pool[body.Inertia]
	Collidables *buffer.Pool[body.Collidable]
	Activities  *buffer.Pool[body.Activity]
	Lists       *buffer.Pool[constraint.List]
	Refs        *buffer.Pool[constraint.Ref]
	Flags       *buffer.Pool[bool]
}

// NewPools creates an empty pool bundle.
func NewPools() *Pools {
	return &Pools{
		Handles:     buffer.NewPool[BodyHandle](),
		Poses:       buffer.NewPool[body.Pose](),
		Velocities:  buffer.NewPool[body.Velocity](),
		Inertias:    buffer.NewPool[body.Inertia](),
		Collidables: buffer.NewPool[body.Collidable](),
		Activities:  buffer.NewPool[body.Activity](),
		Lists:       buffer.NewPool[constraint.List](),
		Refs:        buffer.NewPool[constraint.Ref](),
		Flags:       buffer.NewPool[bool](),
	}
}

// Outstanding reports the total number of unreturned buffers across the
// bundle, for leak checks on disposal.
func (p *Pools) Outstanding() int {
	return p.Handles.Outstanding() +
		p.Poses.Outstanding() +
		p.Velocities.Outstanding() +
		p.Inertias.Outstanding() +
		p.Collidables.Outstanding() +
		p.Activities.Outstanding() +
		p.Lists.Outstanding() +
		p.Refs.Outstanding() +
		p.Flags.Outstanding()
}

// Set is the dense table of body slots. All arrays are parallel: index i of
// each one belongs to the body in slot i. The arrays are exported so batch
// stages can walk them directly; their layout (live prefix, invalid tail)
// must only be changed through the set's operations.
type Set struct {
	// Count is the number of live bodies; slots [Count, Capacity) are empty.
	Count int

	IndexToHandle []BodyHandle
	Poses         []body.Pose
	Velocities    []body.Velocity
	LocalInertias []body.Inertia
	Collidables   []body.Collidable
	Activities    []body.Activity
	Constraints   []constraint.List

	// MinimumConstraintCapacity floors every body's constraint list capacity.
	MinimumConstraintCapacity int

	pools *Pools
}

// NewSet creates a set with room for initialCapacity bodies, rounded up to
// the containing capacity. The pools are borrowed; Dispose returns every
// buffer to them.
func NewSet(pools *Pools, initialCapacity int) *Set {
	s := &Set{
		IndexToHandle:             pools.Handles.Take(initialCapacity),
		Poses:                     pools.Poses.Take(initialCapacity),
		Velocities:                pools.Velocities.Take(initialCapacity),
		LocalInertias:             pools.Inertias.Take(initialCapacity),
		Collidables:               pools.Collidables.Take(initialCapacity),
		Activities:                pools.Activities.Take(initialCapacity),
		Constraints:               pools.Lists.Take(initialCapacity),
		MinimumConstraintCapacity: DefaultMinimumConstraintCapacity,
		pools:                     pools,
	}
	s.initializeTail(0)
	return s
}

// Capacity is the number of slots currently allocated.
func (s *Set) Capacity() int {
	return len(s.IndexToHandle)
}

// initializeTail resets slots [from, Capacity) to the empty-slot reading:
// invalid handle, no collision shape, empty constraint list. Other components
// rely on the tail reading that way, so it is reestablished after every
// structural change that exposes new tail slots rather than depending on the
// pool having zeroed the buffers.
func (s *Set) initializeTail(from int) {
	for i := from; i < len(s.IndexToHandle); i++ {
		s.IndexToHandle[i] = InvalidBodyHandle
		s.Collidables[i] = body.Collidable{Shape: body.ShapeNone}
		s.Constraints[i] = constraint.List{}
	}
}

func (s *Set) validateSlot(slot int) {
	if slot < 0 || slot >= s.Count {
		panic(fmt.Sprintf("plume: slot %d out of live range [0, %d)", slot, s.Count))
	}
}

// Add claims the slot at Count for a new body, copies the description into
// it and records its handle. It returns the new slot index.
//
// Add never grows the set: the caller must Resize beforehand when
// Count == Capacity, which keeps batch insertion costs predictable. The
// collidable's broad phase index is left for the owning broad phase to fill
// in afterward.
func (s *Set) Add(desc body.Description, handle BodyHandle) int {
	if s.Count == s.Capacity() {
		panic("plume: set is full; Resize before adding")
	}
	slot := s.Count
	s.Count++
	s.IndexToHandle[slot] = handle
	s.Constraints[slot] = constraint.NewList(s.pools.Refs, s.MinimumConstraintCapacity)
	s.ApplyDescription(slot, desc)
	return slot
}

// ApplyDescription overwrites a live slot's state from a description. The
// set performs no broad phase bookkeeping: changing the collidable between
// "has a shape" and "no shape" is only valid if the caller adds or removes
// the broad phase entry itself around this call. The broad phase index and
// the constraint list are untouched; the sleep progress counter restarts.
func (s *Set) ApplyDescription(slot int, desc body.Description) {
	s.validateSlot(slot)
	s.Poses[slot] = desc.Pose
	s.Velocities[slot] = desc.Velocity
	s.LocalInertias[slot] = desc.LocalInertia

	collidable := &s.Collidables[slot]
	collidable.Shape = desc.Collidable.Shape
	collidable.Continuity = desc.Collidable.Continuity
	collidable.SpeculativeMargin = desc.Collidable.SpeculativeMargin

	s.Activities[slot] = body.Activity{
		SleepThreshold:                 desc.Activity.SleepThreshold,
		MinimumTimestepsBelowThreshold: desc.Activity.MinimumTimestepsBelowThreshold,
	}
}

// GetDescription reads a live slot's state back into a description,
// the inverse of ApplyDescription.
func (s *Set) GetDescription(slot int) body.Description {
	s.validateSlot(slot)
	collidable := s.Collidables[slot]
	activity := s.Activities[slot]
	return body.Description{
		Pose:         s.Poses[slot],
		Velocity:     s.Velocities[slot],
		LocalInertia: s.LocalInertias[slot],
		Collidable: body.CollidableDescription{
			Shape:             collidable.Shape,
			Continuity:        collidable.Continuity,
			SpeculativeMargin: collidable.SpeculativeMargin,
		},
		Activity: body.ActivityDescription{
			SleepThreshold:                 activity.SleepThreshold,
			MinimumTimestepsBelowThreshold: activity.MinimumTimestepsBelowThreshold,
		},
	}
}

// RemoveAt vacates a slot and compacts the live prefix by moving the last
// live body into it. It returns the removed body's handle; if a move
// occurred, moved is the moved body's handle and movedFrom its previous
// slot (the body now lives at the removed slot), so the caller can update
// the indirection table. Without a move, moved is InvalidBodyHandle.
//
// The slot's constraint list must be empty: removing a body that still has
// constraints attached would leave dangling references in the solver.
func (s *Set) RemoveAt(slot int) (removed, moved BodyHandle, movedFrom int) {
	s.validateSlot(slot)
	if s.Constraints[slot].Count != 0 {
		panic(fmt.Sprintf("plume: removing slot %d with %d constraints still attached", slot, s.Constraints[slot].Count))
	}
	removed = s.IndexToHandle[slot]
	s.Constraints[slot].Dispose(s.pools.Refs)

	s.Count--
	last := s.Count
	moved, movedFrom = InvalidBodyHandle, -1
	if slot != last {
		moved, movedFrom = s.IndexToHandle[last], last
		s.Poses[slot] = s.Poses[last]
		s.Velocities[slot] = s.Velocities[last]
		s.LocalInertias[slot] = s.LocalInertias[last]
		s.Collidables[slot] = s.Collidables[last]
		s.Activities[slot] = s.Activities[last]
		// Ownership of the backing buffer transfers with the value.
		s.Constraints[slot] = s.Constraints[last]
		s.IndexToHandle[slot] = moved
	}

	s.IndexToHandle[last] = InvalidBodyHandle
	s.Collidables[last] = body.Collidable{Shape: body.ShapeNone}
	s.Constraints[last] = constraint.List{}
	return removed, moved, movedFrom
}

// Swap exchanges every field of two live slots, constraint lists included,
// and repoints both handles in the indirection table. Layout optimization
// passes use it to reorder bodies; nothing in the set calls it implicitly.
func (s *Set) Swap(a, b int, handles HandleMap) {
	s.validateSlot(a)
	s.validateSlot(b)

	s.IndexToHandle[a], s.IndexToHandle[b] = s.IndexToHandle[b], s.IndexToHandle[a]
	s.Poses[a], s.Poses[b] = s.Poses[b], s.Poses[a]
	s.Velocities[a], s.Velocities[b] = s.Velocities[b], s.Velocities[a]
	s.LocalInertias[a], s.LocalInertias[b] = s.LocalInertias[b], s.LocalInertias[a]
	s.Collidables[a], s.Collidables[b] = s.Collidables[b], s.Collidables[a]
	s.Activities[a], s.Activities[b] = s.Activities[b], s.Activities[a]
	s.Constraints[a], s.Constraints[b] = s.Constraints[b], s.Constraints[a]

	handles.SetSlot(s.IndexToHandle[a], a)
	handles.SetSlot(s.IndexToHandle[b], b)
}

// Resize reallocates every parallel array to the containing capacity of
// max(targetCapacity, Count), preserving the live prefix. Calling it with a
// target that resolves to the current capacity is a contract violation;
// callers are expected to check first.
func (s *Set) Resize(targetCapacity int) {
	if targetCapacity < s.Count {
		targetCapacity = s.Count
	}
	capacity := buffer.ContainingCapacity(targetCapacity)
	if capacity == s.Capacity() {
		panic(fmt.Sprintf("plume: Resize target %d resolves to the current capacity %d", targetCapacity, capacity))
	}

	s.IndexToHandle = s.pools.Handles.Resize(s.IndexToHandle, capacity, s.Count)
	s.Poses = s.pools.Poses.Resize(s.Poses, capacity, s.Count)
	s.Velocities = s.pools.Velocities.Resize(s.Velocities, capacity, s.Count)
	s.LocalInertias = s.pools.Inertias.Resize(s.LocalInertias, capacity, s.Count)
	s.Collidables = s.pools.Collidables.Resize(s.Collidables, capacity, s.Count)
	s.Activities = s.pools.Activities.Resize(s.Activities, capacity, s.Count)
	s.Constraints = s.pools.Lists.Resize(s.Constraints, capacity, s.Count)

	s.initializeTail(s.Count)
}

// Clear removes every body, returning each slot's constraint list storage to
// the pool. Unlike RemoveAt's tail-only reset, clearing resets the whole
// slot→handle map and every collidable to the empty-slot reading.
func (s *Set) Clear() {
	for i := 0; i < s.Count; i++ {
		s.Constraints[i].Dispose(s.pools.Refs)
	}
	s.Count = 0
	s.initializeTail(0)
}

// Dispose returns every buffer, including each live body's constraint list
// storage, to the pools. The set must not be used afterwards.
func (s *Set) Dispose() {
	s.Clear()
	s.pools.Handles.Return(s.IndexToHandle)
	s.pools.Poses.Return(s.Poses)
	s.pools.Velocities.Return(s.Velocities)
	s.pools.Inertias.Return(s.LocalInertias)
	s.pools.Collidables.Return(s.Collidables)
	s.pools.Activities.Return(s.Activities)
	s.pools.Lists.Return(s.Constraints)
	*s = Set{}
}

// AddConstraint records that the body in the given slot participates in a
// constraint, at the given position within the constraint's body list.
func (s *Set) AddConstraint(slot int, handle constraint.Handle, indexInConstraint int32) {
	s.validateSlot(slot)
	s.Constraints[slot].Add(constraint.Ref{
		Constraint:        handle,
		IndexInConstraint: indexInConstraint,
	}, s.pools.Refs)
}

// RemoveConstraint detaches a constraint from the body in the given slot.
func (s *Set) RemoveConstraint(slot int, handle constraint.Handle) {
	s.validateSlot(slot)
	s.Constraints[slot].Remove(handle, s.pools.Refs, s.MinimumConstraintCapacity)
}

// EnsureConstraintCapacities grows every live body's constraint list to hold
// at least minimumPerBody references, for callers that know how many
// constraints bodies are about to accumulate.
func (s *Set) EnsureConstraintCapacities(minimumPerBody int) {
	for i := 0; i < s.Count; i++ {
		s.Constraints[i].EnsureCapacity(minimumPerBody, s.pools.Refs)
	}
}

// ResizeConstraintCapacities sets every live body's constraint list capacity
// to the containing capacity of max(targetPerBody, its count), shrinking
// oversized lists as well as growing undersized ones.
func (s *Set) ResizeConstraintCapacities(targetPerBody int) {
	for i := 0; i < s.Count; i++ {
		s.Constraints[i].ResizeCapacity(targetPerBody, s.pools.Refs)
	}
}
