package body

// Description is the value object used to add a body to a set and to read a
// body's state back out.
type Description struct {
	Pose         Pose
	Velocity     Velocity
	LocalInertia Inertia
	Collidable   CollidableDescription
	Activity     ActivityDescription
}

// DefaultSpeculativeMargin bounds speculative contact generation for bodies
// created through the convenience constructors.
const DefaultSpeculativeMargin = 0.1

// DefaultSleepThreshold is the squared-velocity heuristic used by the
// convenience constructors.
const DefaultSleepThreshold = 0.01

// NewDynamic creates a description for a body with finite mass.
func NewDynamic(pose Pose, inertia Inertia, shape ShapeIndex) Description {
	return Description{
		Pose:         pose,
		LocalInertia: inertia,
		Collidable: CollidableDescription{
			Shape:             shape,
			SpeculativeMargin: DefaultSpeculativeMargin,
		},
		Activity: ActivityDescription{
			SleepThreshold:                 DefaultSleepThreshold,
			MinimumTimestepsBelowThreshold: 32,
		},
	}
}

// NewKinematic creates a description for a body that moves but does not
// respond to impulses. Kinematic bodies never sleep on their own.
func NewKinematic(pose Pose, shape ShapeIndex) Description {
	return Description{
		Pose:         pose,
		LocalInertia: Kinematic(),
		Collidable: CollidableDescription{
			Shape:             shape,
			SpeculativeMargin: DefaultSpeculativeMargin,
		},
		Activity: ActivityDescription{
			SleepThreshold:                 -1,
			MinimumTimestepsBelowThreshold: 32,
		},
	}
}
