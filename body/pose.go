// Package body defines the per-body value types stored by the dense body set
// and exchanged with callers through descriptions.
package body

import "github.com/go-gl/mathgl/mgl64"

// Pose represents a position and orientation in 3D space.
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// NewPose creates a pose at the given position with identity orientation.
func NewPose(position mgl64.Vec3) Pose {
	return Pose{
		Position:    position,
		Orientation: mgl64.QuatIdent(),
	}
}

// Velocity represents the linear and angular velocity of a body.
type Velocity struct {
	Linear  mgl64.Vec3 // m/s
	Angular mgl64.Vec3 // rad/s
}
