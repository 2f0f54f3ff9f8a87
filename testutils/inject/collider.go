package inject

import (
	"github.com/golang/geo/r3"

	"go.viam.com/springbounce/physics"
)

// Collider is an injected collider.
type Collider struct {
	physics.Collider
	DynamicBodyFunc func() (physics.Body, bool)
}

// DynamicBody calls the injected DynamicBody or the real version.
func (c *Collider) DynamicBody() (physics.Body, bool) {
	if c.DynamicBodyFunc == nil {
		return c.Collider.DynamicBody()
	}
	return c.DynamicBodyFunc()
}

// Transform is an injected transform.
type Transform struct {
	physics.Transform
	PositionFunc func() r3.Vector
}

// Position calls the injected Position or the real version.
func (tf *Transform) Position() r3.Vector {
	if tf.PositionFunc == nil {
		return tf.Transform.Position()
	}
	return tf.PositionFunc()
}
