package body

// ShapeIndex references a collision shape owned by an external shape
// registry. Bodies are allowed to have no shape at all.
type ShapeIndex int32

// ShapeNone marks a collidable without any collision shape.
const ShapeNone ShapeIndex = -1

// Exists reports whether the index references an actual shape.
func (index ShapeIndex) Exists() bool {
	return index >= 0
}

// ContinuityMode selects how a body's motion is handled between timesteps.
type ContinuityMode uint8

const (
	// ContinuityDiscrete bodies only generate contacts at their discrete
	// poses, within the speculative margin.
	ContinuityDiscrete ContinuityMode = iota
	// ContinuityPassive bodies use an unbounded speculative margin but do
	// not sweep; fast objects may still miss them.
	ContinuityPassive
	// ContinuityContinuous bodies are swept against other collidables to
	// find the time of impact.
	ContinuityContinuous
)

// Continuity holds the continuous collision detection settings of a
// collidable.
type Continuity struct {
	Mode ContinuityMode
	// SweepConvergenceThreshold bounds the time-of-impact search error for
	// continuous bodies; ignored in other modes.
	SweepConvergenceThreshold float64
	// MinimumSweepTimestep stops sweep recursion below this duration.
	MinimumSweepTimestep float64
}

// Collidable is the per-body collision state stored in the set.
//
// BroadPhaseIndex is owned by the broad phase, never by the body storage:
// adding a body leaves it unset and the caller must fill it in after
// registering the collidable.
type Collidable struct {
	Shape             ShapeIndex
	Continuity        Continuity
	SpeculativeMargin float64
	BroadPhaseIndex   int32
}

// CollidableDescription is the caller-facing subset of Collidable; it
// deliberately has no broad phase index.
type CollidableDescription struct {
	Shape             ShapeIndex
	Continuity        Continuity
	SpeculativeMargin float64
}
