package body

import "github.com/go-gl/mathgl/mgl64"

// Inertia holds a body's local inverse mass and inverse inertia tensor.
// Zeroed fields express locked degrees of freedom: a zero inverse mass means
// infinite translational inertia, a zero inverse tensor row means the body
// cannot be rotated about that axis. A fully zero Inertia is kinematic.
type Inertia struct {
	InverseInertiaTensor mgl64.Mat3
	InverseMass          float64
}

// NewInertia builds an Inertia from a mass and a local inertia tensor
// diagonal. Mass must be positive; use Kinematic for immovable bodies.
func NewInertia(mass float64, tensorDiagonal mgl64.Vec3) Inertia {
	return Inertia{
		InverseMass: 1.0 / mass,
		InverseInertiaTensor: mgl64.Mat3{
			1.0 / tensorDiagonal.X(), 0, 0,
			0, 1.0 / tensorDiagonal.Y(), 0,
			0, 0, 1.0 / tensorDiagonal.Z(),
		},
	}
}

// NewSphereInertia builds the inertia of a solid sphere of the given mass
// and radius, I = 2/5 * m * r² about every axis.
func NewSphereInertia(mass, radius float64) Inertia {
	i := 2.0 / 5.0 * mass * radius * radius
	return NewInertia(mass, mgl64.Vec3{i, i, i})
}

// Kinematic returns the inertia of a body with infinite effective mass and
// rotational inertia, unaffected by any impulse.
func Kinematic() Inertia {
	return Inertia{}
}

// IsKinematic reports whether every degree of freedom is locked.
func (inertia Inertia) IsKinematic() bool {
	return inertia.InverseMass == 0 && inertia.InverseInertiaTensor == (mgl64.Mat3{})
}

// LockRotation zeroes the inverse inertia tensor, leaving translation free.
func (inertia Inertia) LockRotation() Inertia {
	inertia.InverseInertiaTensor = mgl64.Mat3{}
	return inertia
}
