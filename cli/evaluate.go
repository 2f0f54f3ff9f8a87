package cli

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/springbounce/physics"
	"go.viam.com/springbounce/spatialmath"
	"go.viam.com/springbounce/springbounce"
)

// recordingBody forwards to a real body and remembers the last force it was handed.
type recordingBody struct {
	physics.Body
	applied *r3.Vector
	mode    physics.ForceMode
}

func (rb *recordingBody) AddForce(force r3.Vector, mode physics.ForceMode) {
	rb.applied = &force
	rb.mode = mode
	rb.Body.AddForce(force, mode)
}

// recordingCollider exposes a recordingBody as its dynamic body.
type recordingCollider struct {
	entity *physics.Entity
	body   *recordingBody
}

func (rc *recordingCollider) DynamicBody() (physics.Body, bool) {
	if _, ok := rc.entity.DynamicBody(); !ok {
		return nil, false
	}
	return rc.body, true
}

// configFromContext loads the optional config file and applies flag overrides.
func configFromContext(c *cli.Context) (*springbounce.Config, error) {
	conf := &springbounce.Config{}
	if path := c.String(generalFlagConfig); path != "" {
		var err error
		if conf, err = springbounce.ReadConfig(path); err != nil {
			return nil, err
		}
	}
	if c.IsSet(generalFlagSpringConstant) {
		v := c.Float64(generalFlagSpringConstant)
		conf.SpringConstant = &v
	}
	if c.IsSet(generalFlagDampingFactor) {
		v := c.Float64(generalFlagDampingFactor)
		conf.DampingFactor = &v
	}
	if c.IsSet(generalFlagMaxForceMagnitude) {
		v := c.Float64(generalFlagMaxForceMagnitude)
		conf.MaxForceMagnitude = &v
	}
	if err := conf.Validate("flags"); err != nil {
		return nil, err
	}
	return conf, nil
}

func parseVectorFlag(name, value string) (r3.Vector, error) {
	v, err := spatialmath.ParseR3Vector(value)
	if err != nil {
		return r3.Vector{}, errors.Wrapf(err, "invalid --%s", name)
	}
	if !spatialmath.R3VectorIsFinite(v) {
		return r3.Vector{}, errors.Errorf("invalid --%s: %q must have finite components", name, value)
	}
	return v, nil
}

// formatVector prints v as "x,y,z" with negative zeros folded to zero.
func formatVector(v r3.Vector) string {
	return fmt.Sprintf("%g,%g,%g", v.X+0, v.Y+0, v.Z+0)
}

func printParams(c *cli.Context, params springbounce.Params) {
	fmt.Fprintf(c.App.Writer, "params: k=%g d=%g m=%g\n", params.K, params.D, params.M)
}

// ValidateAction is the corresponding Action for 'validate'.
func ValidateAction(c *cli.Context) error {
	conf, err := configFromContext(c)
	if err != nil {
		return err
	}
	printParams(c, conf.Resolved())
	return nil
}

// EvaluateAction is the corresponding Action for 'evaluate'.
func EvaluateAction(c *cli.Context) error {
	logger := loggerFromContext(c)
	conf, err := configFromContext(c)
	if err != nil {
		return err
	}

	anchor, err := parseVectorFlag(evaluateFlagAnchor, c.String(evaluateFlagAnchor))
	if err != nil {
		return err
	}
	var contacts []physics.Contact
	for _, raw := range c.StringSlice(evaluateFlagContact) {
		point, err := parseVectorFlag(evaluateFlagContact, raw)
		if err != nil {
			return err
		}
		contacts = append(contacts, physics.Contact{Point: point})
	}
	if len(contacts) == 0 {
		return errors.New("at least one --contact is required")
	}
	velocity, err := parseVectorFlag(evaluateFlagVelocity, c.String(evaluateFlagVelocity))
	if err != nil {
		return err
	}

	entity := &physics.Entity{Name: "collider"}
	if !c.Bool(evaluateFlagStatic) {
		rigidBody, err := physics.NewRigidBody(c.Float64(evaluateFlagMass))
		if err != nil {
			return err
		}
		rigidBody.SetVelocity(velocity)
		rigidBody.SetKinematic(c.Bool(evaluateFlagKinematic))
		entity.Body = rigidBody
	}
	collider := &recordingCollider{entity: entity}
	if entity.Body != nil {
		collider.body = &recordingBody{Body: entity.Body}
	}

	responder, err := springbounce.NewResponder(conf, logger.Sublogger("responder"))
	if err != nil {
		return err
	}
	owner := &physics.Entity{Name: "owner", Pose: anchor}
	handler := springbounce.Attach(owner, responder)
	handler.OnCollisionEnter(physics.Collision{Collider: collider, Contacts: contacts})

	raw := springbounce.SpringForce(responder.Params(), anchor, contacts[0].Point, velocity)
	applied := collider.body != nil && collider.body.applied != nil
	logger.Infow("evaluated collision",
		"anchor", formatVector(anchor),
		"contact", formatVector(contacts[0].Point),
		"contacts", len(contacts),
		"raw_force", formatVector(raw),
		"applied", applied,
	)

	printParams(c, responder.Params())
	fmt.Fprintf(c.App.Writer, "raw force: %s\n", formatVector(raw))
	if !applied {
		fmt.Fprintln(c.App.Writer, "no dynamic body; no impulse applied")
		return nil
	}
	fmt.Fprintf(c.App.Writer, "applied %s: %s\n", collider.body.mode, formatVector(*collider.body.applied))
	fmt.Fprintf(c.App.Writer, "velocity: %s -> %s\n", formatVector(velocity), formatVector(entity.Body.Velocity()))
	return nil
}
