// Package physics defines the boundary between springbounce and a host physics engine: the
// collision event a host hands to a callback, the dynamic-body capability it may expose, and the
// force application modes it understands.
package physics

import (
	"github.com/golang/geo/r3"
)

// Contact is a single point where two colliders touch, in world coordinates.
type Contact struct {
	Point  r3.Vector
	Normal r3.Vector
}

// Collision is the transient event a host engine passes to collision callbacks. Contacts is
// ordered and non-empty for every event the host dispatches.
type Collision struct {
	Collider Collider
	Contacts []Contact
}

// Collider is the other participant of a collision.
type Collider interface {
	// DynamicBody returns the collider's dynamic body, if it has one. Static scenery and
	// kinematic-only objects report false.
	DynamicBody() (Body, bool)
}

// Body is a mutable dynamic rigid body owned by the host engine.
type Body interface {
	Velocity() r3.Vector
	AddForce(force r3.Vector, mode ForceMode)
}

// Transform supplies an object's current world-space position.
type Transform interface {
	Position() r3.Vector
}

// CollisionHandler receives collision-enter callbacks from the host engine.
type CollisionHandler interface {
	OnCollisionEnter(collision Collision)
}

// CollisionHandlerFunc adapts a plain function to a CollisionHandler.
type CollisionHandlerFunc func(collision Collision)

// OnCollisionEnter calls f(collision).
func (f CollisionHandlerFunc) OnCollisionEnter(collision Collision) {
	f(collision)
}
