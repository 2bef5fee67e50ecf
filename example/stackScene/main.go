package main

import (
	"fmt"

	"github.com/akmonengine/plume"
	"github.com/akmonengine/plume/body"
	"github.com/akmonengine/plume/constraint"
	"github.com/akmonengine/plume/scene"
)

const stackScene = `
capacity: 8
bodies:
  - name: ground
    position: [0, -1, 0]
    shape: 0
  - name: crate A
    position: [0, 0.5, 0]
    mass: 10
    shape: 1
  - name: crate B
    position: [0, 1.5, 0]
    mass: 10
    shape: 1
  - name: crate C
    position: [2, 0.5, 0]
    mass: 10
    shape: 1
`

// demoSolver is a toy constraint authority: it hands out handles and
// remembers which slots each constraint connects.
type demoSolver struct {
	next   constraint.Handle
	bodies map[constraint.Handle][]int
}

func (ds *demoSolver) connect(set *plume.Set, slots ...int) constraint.Handle {
	handle := ds.next
	ds.next++
	ds.bodies[handle] = slots
	for i, slot := range slots {
		set.AddConstraint(slot, handle, int32(i))
	}
	return handle
}

func (ds *demoSolver) EnumerateConnectedBodies(handle constraint.Handle, fn func(slot int)) {
	for _, slot := range ds.bodies[handle] {
		fn(slot)
	}
}

func main() {
	sc, err := scene.Parse([]byte(stackScene))
	if err != nil {
		panic(err)
	}

	pools := plume.NewPools()
	set := plume.NewSet(pools, 4)
	handles := plume.NewSlotMap()

	allocated, err := sc.Populate(set, handles)
	if err != nil {
		panic(err)
	}
	fmt.Printf("scene loaded: %d bodies, capacity %d\n", set.Count, set.Capacity())

	solver := &demoSolver{bodies: map[constraint.Handle][]int{}}
	// Stack contacts: ground-crateA, crateA-crateB, ground-crateC.
	solver.connect(set, 0, 1)
	weld := solver.connect(set, 1, 2)
	solver.connect(set, 0, 3)

	island := set.CollectIsland(handles.Slot(allocated[1]), solver)
	fmt.Printf("crate A's island: %v\n", island)

	fmt.Println("bodies connected to the ground:")
	set.EnumerateConnectedBodies(0, solver, func(connected int) {
		desc := set.GetDescription(connected)
		fmt.Printf("  slot %d (handle %d) at %v\n",
			connected, set.IndexToHandle[connected], desc.Pose.Position)
	})

	// Tearing a body down: detach its constraints first, then remove. The
	// set reports the compaction move so the handle table stays accurate.
	set.RemoveConstraint(1, weld)
	set.RemoveConstraint(2, weld)
	set.RemoveConstraint(1, 0)
	set.RemoveConstraint(0, 0)
	delete(solver.bodies, weld)
	delete(solver.bodies, 0)

	removed, moved, movedFrom := set.RemoveAt(1)
	handles.Release(removed)
	if moved != plume.InvalidBodyHandle {
		handles.SetSlot(moved, 1)
		fmt.Printf("removed handle %d; handle %d moved from slot %d to 1\n", removed, moved, movedFrom)
	}

	kinematic := body.NewKinematic(body.NewPose(set.Poses[0].Position), body.ShapeNone)
	set.Add(kinematic, handles.Allocate(set.Count))
	fmt.Printf("final count: %d\n", set.Count)

	set.Dispose()
	fmt.Printf("buffers still outstanding after dispose: %d\n", pools.Outstanding())
}
