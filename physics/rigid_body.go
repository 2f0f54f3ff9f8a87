package physics

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// RigidBody is a minimal host-side dynamic body. Instantaneous modes change Velocity on the spot;
// continuous modes accumulate into a force the host's integrator drains with TakeAccumulatedForce.
// It is not safe for concurrent use; hosts serialize collision callbacks.
type RigidBody struct {
	mass      float64
	velocity  r3.Vector
	force     r3.Vector
	kinematic bool
}

// NewRigidBody returns a body at rest with the given mass.
func NewRigidBody(mass float64) (*RigidBody, error) {
	if math.IsNaN(mass) || math.IsInf(mass, 0) || mass <= 0 {
		return nil, errors.Errorf("rigid body mass must be positive and finite, got %v", mass)
	}
	return &RigidBody{mass: mass}, nil
}

// Velocity returns the body's current linear velocity.
func (rb *RigidBody) Velocity() r3.Vector {
	return rb.velocity
}

// SetVelocity overwrites the body's linear velocity.
func (rb *RigidBody) SetVelocity(v r3.Vector) {
	rb.velocity = v
}

// Kinematic reports whether the body is driven by its owner rather than by forces.
func (rb *RigidBody) Kinematic() bool {
	return rb.kinematic
}

// SetKinematic toggles kinematic mode. Kinematic bodies ignore AddForce.
func (rb *RigidBody) SetKinematic(kinematic bool) {
	rb.kinematic = kinematic
}

// AddForce applies force according to mode.
func (rb *RigidBody) AddForce(force r3.Vector, mode ForceMode) {
	if rb.kinematic {
		return
	}
	switch mode {
	case ForceModeImpulse:
		rb.velocity = rb.velocity.Add(force.Mul(1 / rb.mass))
	case ForceModeVelocityChange:
		rb.velocity = rb.velocity.Add(force)
	case ForceModeForce:
		rb.force = rb.force.Add(force)
	case ForceModeAcceleration:
		rb.force = rb.force.Add(force.Mul(rb.mass))
	}
}

// TakeAccumulatedForce returns the continuous force gathered since the last call and resets it.
func (rb *RigidBody) TakeAccumulatedForce() r3.Vector {
	force := rb.force
	rb.force = r3.Vector{}
	return force
}

// Entity is a scene object with a world position and an optional rigid body.
type Entity struct {
	Name string
	Pose r3.Vector
	Body *RigidBody
}

// Position returns the entity's world position.
func (e *Entity) Position() r3.Vector {
	return e.Pose
}

// DynamicBody returns the entity's rigid body unless it has none or it is kinematic. A nil
// entity has no dynamic body.
func (e *Entity) DynamicBody() (Body, bool) {
	if e == nil || e.Body == nil || e.Body.Kinematic() {
		return nil, false
	}
	return e.Body, true
}
