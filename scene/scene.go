// Package scene loads body descriptions from YAML documents and feeds them
// into a body set, for building simulation content and test fixtures without
// hand-writing construction code.
package scene

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/akmonengine/plume"
	"github.com/akmonengine/plume/body"
)

// BodyDef is the YAML shape of one body. Zero mass means kinematic; the
// inertia diagonal defaults to that of a solid unit sphere of the given mass
// when omitted.
type BodyDef struct {
	Name                  string      `yaml:"name,omitempty"`
	Position              [3]float64  `yaml:"position"`
	Orientation           *[4]float64 `yaml:"orientation,omitempty"` // w, x, y, z
	LinearVelocity        [3]float64  `yaml:"linear_velocity,omitempty"`
	AngularVelocity       [3]float64  `yaml:"angular_velocity,omitempty"`
	Mass                  float64     `yaml:"mass,omitempty"`
	InertiaDiagonal       *[3]float64 `yaml:"inertia_diagonal,omitempty"`
	Shape                 *int32      `yaml:"shape,omitempty"`
	SpeculativeMargin     *float64    `yaml:"speculative_margin,omitempty"`
	Continuity            string      `yaml:"continuity,omitempty"`
	SleepThreshold        *float64    `yaml:"sleep_threshold,omitempty"`
	MinimumSleepTimesteps uint8       `yaml:"minimum_sleep_timesteps,omitempty"`
}

// Scene is a YAML document describing a set of bodies.
type Scene struct {
	Capacity int       `yaml:"capacity,omitempty"`
	Bodies   []BodyDef `yaml:"bodies"`
}

// Parse decodes a scene from YAML bytes.
func Parse(data []byte) (Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scene{}, fmt.Errorf("scene: decoding: %w", err)
	}
	return sc, nil
}

// Load reads and decodes a scene file.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Description converts the definition to a body description.
func (def BodyDef) Description() (body.Description, error) {
	if def.Mass < 0 {
		return body.Description{}, fmt.Errorf("scene: body %q has negative mass %v", def.Name, def.Mass)
	}

	shape := body.ShapeNone
	if def.Shape != nil {
		shape = body.ShapeIndex(*def.Shape)
	}

	pose := body.NewPose(mgl64.Vec3(def.Position))
	if def.Orientation != nil {
		q := mgl64.Quat{
			W: def.Orientation[0],
			V: mgl64.Vec3{def.Orientation[1], def.Orientation[2], def.Orientation[3]},
		}
		if q.Len() == 0 {
			return body.Description{}, fmt.Errorf("scene: body %q has a zero orientation", def.Name)
		}
		pose.Orientation = q.Normalize()
	}

	var desc body.Description
	if def.Mass == 0 {
		desc = body.NewKinematic(pose, shape)
	} else {
		inertia := body.NewSphereInertia(def.Mass, 1)
		if def.InertiaDiagonal != nil {
			diagonal := mgl64.Vec3(*def.InertiaDiagonal)
			for axis, value := range diagonal {
				if value <= 0 {
					return body.Description{}, fmt.Errorf("scene: body %q inertia diagonal axis %d must be positive, got %v", def.Name, axis, value)
				}
			}
			inertia = body.NewInertia(def.Mass, diagonal)
		}
		desc = body.NewDynamic(pose, inertia, shape)
	}

	desc.Velocity = body.Velocity{
		Linear:  mgl64.Vec3(def.LinearVelocity),
		Angular: mgl64.Vec3(def.AngularVelocity),
	}

	switch def.Continuity {
	case "", "discrete":
		desc.Collidable.Continuity.Mode = body.ContinuityDiscrete
	case "passive":
		desc.Collidable.Continuity.Mode = body.ContinuityPassive
	case "continuous":
		desc.Collidable.Continuity.Mode = body.ContinuityContinuous
	default:
		return body.Description{}, fmt.Errorf("scene: body %q has unknown continuity mode %q", def.Name, def.Continuity)
	}

	if def.SpeculativeMargin != nil {
		desc.Collidable.SpeculativeMargin = *def.SpeculativeMargin
	}
	if def.SleepThreshold != nil {
		desc.Activity.SleepThreshold = *def.SleepThreshold
	}
	if def.MinimumSleepTimesteps != 0 {
		desc.Activity.MinimumTimestepsBelowThreshold = def.MinimumSleepTimesteps
	}

	return desc, nil
}

// Populate adds every body in the scene to the set, allocating handles from
// the map. The set is resized first if the scene does not fit. On error the
// set keeps the bodies added so far; the returned handles cover exactly
// those.
func (sc Scene) Populate(set *plume.Set, handles *plume.SlotMap) ([]plume.BodyHandle, error) {
	needed := set.Count + len(sc.Bodies)
	if sc.Capacity > needed {
		needed = sc.Capacity
	}
	if needed > set.Capacity() {
		set.Resize(needed)
	}

	allocated := make([]plume.BodyHandle, 0, len(sc.Bodies))
	for i, def := range sc.Bodies {
		desc, err := def.Description()
		if err != nil {
			return allocated, fmt.Errorf("scene: body %d: %w", i, err)
		}
		handle := handles.Allocate(set.Count)
		set.Add(desc, handle)
		allocated = append(allocated, handle)
	}
	return allocated, nil
}
