package plume

import "github.com/akmonengine/plume/constraint"

// Solver resolves constraint handles to the bodies they connect. The solver
// owns the constraint definitions; the set only stores the adjacency.
type Solver interface {
	// EnumerateConnectedBodies invokes fn with the slot index of every body
	// the constraint connects, including the body the caller started from.
	EnumerateConnectedBodies(handle constraint.Handle, fn func(slot int))
}

// EnumerateConnectedBodies invokes visit with the slot of every body
// connected to the given slot through a constraint. The source slot itself
// is filtered out, so self-loop constraints report nothing; a neighbor
// connected through several constraints is reported once per connection.
//
// The constraint list is walked tail to head. Visitors commonly detach the
// constraint they are being shown, which removes it by swap-with-last;
// under reverse iteration the swapped-in element is one that has already
// been visited, so nothing is skipped.
func (s *Set) EnumerateConnectedBodies(slot int, solver Solver, visit func(connected int)) {
	s.validateSlot(slot)
	list := &s.Constraints[slot]
	for i := list.Count - 1; i >= 0; i-- {
		solver.EnumerateConnectedBodies(list.Refs[i].Constraint, func(connected int) {
			if connected != slot {
				visit(connected)
			}
		})
	}
}
