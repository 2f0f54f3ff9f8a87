package inject

import (
	"github.com/golang/geo/r3"

	"go.viam.com/springbounce/physics"
)

// Body is an injected dynamic body.
type Body struct {
	physics.Body
	VelocityFunc func() r3.Vector
	AddForceFunc func(force r3.Vector, mode physics.ForceMode)
}

// Velocity calls the injected Velocity or the real version.
func (b *Body) Velocity() r3.Vector {
	if b.VelocityFunc == nil {
		return b.Body.Velocity()
	}
	return b.VelocityFunc()
}

// AddForce calls the injected AddForce or the real version.
func (b *Body) AddForce(force r3.Vector, mode physics.ForceMode) {
	if b.AddForceFunc == nil {
		b.Body.AddForce(force, mode)
		return
	}
	b.AddForceFunc(force, mode)
}
