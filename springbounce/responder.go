// Package springbounce implements a spring-damper collision response. On contact, the colliding
// dynamic body receives an impulse following Hooke's Law with damping, F = -k*x - d*v, where x is
// the displacement from the contact point to the responder's anchor and v is the body's velocity.
// The force magnitude is capped before it is applied.
package springbounce

import (
	"github.com/golang/geo/r3"

	"go.viam.com/springbounce/logging"
	"go.viam.com/springbounce/physics"
	"go.viam.com/springbounce/spatialmath"
)

// Responder converts collision events into spring-damper impulses. It holds only its immutable
// parameters, so every event is handled independently of the ones before it.
type Responder struct {
	params Params
	logger logging.Logger
}

// NewResponder validates conf and returns a Responder using its resolved parameters. A nil conf
// uses DefaultParams.
func NewResponder(conf *Config, logger logging.Logger) (*Responder, error) {
	if conf != nil {
		if err := conf.Validate("springbounce"); err != nil {
			return nil, err
		}
	}
	return &Responder{params: conf.Resolved(), logger: logger}, nil
}

// Params returns the responder's resolved parameters.
func (r *Responder) Params() Params {
	return r.params
}

// SpringForce returns the unclamped force -k*(anchor-contact) - d*velocity.
func SpringForce(params Params, anchor, contact, velocity r3.Vector) r3.Vector {
	displacement := anchor.Sub(contact)
	return displacement.Mul(-params.K).Sub(velocity.Mul(params.D))
}

// Force returns the spring force for the given anchor, contact point and collider velocity,
// clamped to the responder's maximum magnitude.
func (r *Responder) Force(anchor, contact, velocity r3.Vector) r3.Vector {
	return spatialmath.ClampMagnitude(SpringForce(r.params, anchor, contact, velocity), r.params.M)
}

// OnCollision applies the spring force to the colliding body as an impulse. anchor is the
// responder owner's current world position. Only the first contact point is used. Colliders
// without a dynamic body are ignored.
func (r *Responder) OnCollision(anchor r3.Vector, collision physics.Collision) {
	if collision.Collider == nil {
		r.logger.Debug("ignoring collision without a collider")
		return
	}
	body, ok := collision.Collider.DynamicBody()
	if !ok || body == nil {
		r.logger.Debug("ignoring collision with a collider that has no dynamic body")
		return
	}
	if len(collision.Contacts) == 0 {
		r.logger.Warn("ignoring collision without contact points")
		return
	}

	contact := collision.Contacts[0].Point
	velocity := body.Velocity()
	force := r.Force(anchor, contact, velocity)
	body.AddForce(force, physics.ForceModeImpulse)

	r.logger.Debugw("applied spring impulse",
		"anchor", anchor,
		"contact", contact,
		"velocity", velocity,
		"force", force,
	)
}

// Attach binds a responder to the object that owns it. The returned handler reads the owner's
// position on every event and uses it as the anchor.
func Attach(owner physics.Transform, responder *Responder) physics.CollisionHandler {
	return physics.CollisionHandlerFunc(func(collision physics.Collision) {
		responder.OnCollision(owner.Position(), collision)
	})
}
