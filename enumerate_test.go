package plume

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akmonengine/plume/constraint"
)

// tableSolver is a minimal stand-in for the constraint solver: a table from
// constraint handle to the slots of the bodies it connects.
type tableSolver struct {
	bodies map[constraint.Handle][]int
}

func newTableSolver() *tableSolver {
	return &tableSolver{bodies: make(map[constraint.Handle][]int)}
}

// connect registers a constraint in the table and attaches it to every
// participating body's constraint list.
func (ts *tableSolver) connect(s *Set, handle constraint.Handle, slots ...int) {
	ts.bodies[handle] = slots
	for i, slot := range slots {
		s.AddConstraint(slot, handle, int32(i))
	}
}

func (ts *tableSolver) EnumerateConnectedBodies(handle constraint.Handle, fn func(slot int)) {
	for _, slot := range ts.bodies[handle] {
		fn(slot)
	}
}

func addBodies(t *testing.T, s *Set, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		s.Add(testDescription(float64(i)), BodyHandle(i))
	}
}

// C1 connects body 0 to X=1; C2 connects 0 to X=1 and Y=2. Enumerating from
// 0 must report X twice (once per connection), Y once, and never 0 itself.
func TestEnumerateReportsEachConnection(t *testing.T) {
	pools := NewPools()
	s := NewSet(pools, 4)
	addBodies(t, s, 3)

	solver := newTableSolver()
	solver.connect(s, 1, 0, 1)
	solver.connect(s, 2, 0, 1, 2)

	counts := map[int]int{}
	s.EnumerateConnectedBodies(0, solver, func(connected int) {
		counts[connected]++
	})

	assert.Equal(t, map[int]int{1: 2, 2: 1}, counts)
}

func TestEnumerateFiltersSelfLoop(t *testing.T) {
	pools := NewPools()
	s := NewSet(pools, 2)
	addBodies(t, s, 1)

	solver := newTableSolver()
	solver.bodies[7] = []int{0, 0}
	s.AddConstraint(0, 7, 0)

	visited := 0
	s.EnumerateConnectedBodies(0, solver, func(int) {
		visited++
	})
	assert.Zero(t, visited, "a self-loop constraint connects the body to nothing else")
}

// Visitors may detach the connection they are shown. Reverse iteration
// guarantees the swap-with-last removal never hides an unvisited entry.
func TestEnumerateSurvivesRemovalDuringTraversal(t *testing.T) {
	pools := NewPools()
	s := NewSet(pools, 8)
	addBodies(t, s, 5)

	solver := newTableSolver()
	for c := 1; c <= 4; c++ {
		solver.connect(s, constraint.Handle(c), 0, c)
	}

	var seen []int
	s.EnumerateConnectedBodies(0, solver, func(connected int) {
		seen = append(seen, connected)
		// Detach the constraint joining 0 and connected from both bodies.
		handle := constraint.Handle(connected)
		s.RemoveConstraint(0, handle)
		s.RemoveConstraint(connected, handle)
	})

	assert.ElementsMatch(t, []int{1, 2, 3, 4}, seen, "every neighbor visited exactly once")
	assert.Zero(t, s.Constraints[0].Count)
}

func TestEnumerateWalksTailToHead(t *testing.T) {
	pools := NewPools()
	s := NewSet(pools, 8)
	addBodies(t, s, 4)

	solver := newTableSolver()
	solver.connect(s, 10, 0, 1)
	solver.connect(s, 11, 0, 2)
	solver.connect(s, 12, 0, 3)

	var order []int
	s.EnumerateConnectedBodies(0, solver, func(connected int) {
		order = append(order, connected)
	})
	assert.Equal(t, []int{3, 2, 1}, order)
}
