package body

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestShapeIndexExists(t *testing.T) {
	tests := []struct {
		name     string
		index    ShapeIndex
		expected bool
	}{
		{"none", ShapeNone, false},
		{"zero", 0, true},
		{"positive", 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.index.Exists(); got != tt.expected {
				t.Errorf("ShapeIndex(%d).Exists() = %v, want %v", tt.index, got, tt.expected)
			}
		})
	}
}

func TestInertiaKinematic(t *testing.T) {
	assert.True(t, Kinematic().IsKinematic())

	dynamic := NewInertia(2.0, mgl64.Vec3{1, 1, 1})
	assert.False(t, dynamic.IsKinematic())
	assert.InDelta(t, 0.5, dynamic.InverseMass, 1e-12)

	rotationLocked := dynamic.LockRotation()
	assert.False(t, rotationLocked.IsKinematic(), "translation is still free")
	assert.Equal(t, mgl64.Mat3{}, rotationLocked.InverseInertiaTensor)
}

func TestNewSphereInertia(t *testing.T) {
	inertia := NewSphereInertia(5, 2)

	// I = 2/5 * 5 * 4 = 8 about every axis.
	assert.InDelta(t, 0.2, inertia.InverseMass, 1e-12)
	for axis := 0; axis < 3; axis++ {
		assert.InDelta(t, 1.0/8.0, inertia.InverseInertiaTensor.At(axis, axis), 1e-12)
	}
}

func TestNewDynamicDefaults(t *testing.T) {
	desc := NewDynamic(NewPose(mgl64.Vec3{1, 2, 3}), NewInertia(1, mgl64.Vec3{1, 1, 1}), 4)

	assert.Equal(t, mgl64.Vec3{1, 2, 3}, desc.Pose.Position)
	assert.Equal(t, mgl64.QuatIdent(), desc.Pose.Orientation)
	assert.Equal(t, ShapeIndex(4), desc.Collidable.Shape)
	assert.Equal(t, DefaultSpeculativeMargin, desc.Collidable.SpeculativeMargin)
	assert.Equal(t, DefaultSleepThreshold, desc.Activity.SleepThreshold)
}

func TestNewKinematicNeverSleeps(t *testing.T) {
	desc := NewKinematic(NewPose(mgl64.Vec3{}), ShapeNone)

	assert.True(t, desc.LocalInertia.IsKinematic())
	assert.Negative(t, desc.Activity.SleepThreshold)
	assert.False(t, desc.Collidable.Shape.Exists())
}
