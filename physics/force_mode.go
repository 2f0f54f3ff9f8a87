package physics

import "fmt"

// ForceMode selects how a force vector handed to Body.AddForce changes a body's motion.
type ForceMode int

const (
	// ForceModeForce is a continuous force, integrated by the host over the step and divided by mass.
	ForceModeForce ForceMode = iota
	// ForceModeAcceleration is a continuous acceleration, integrated by the host and independent of mass.
	ForceModeAcceleration
	// ForceModeImpulse is an instantaneous velocity change of force/mass, applied once.
	ForceModeImpulse
	// ForceModeVelocityChange is an instantaneous velocity change independent of mass, applied once.
	ForceModeVelocityChange
)

func (mode ForceMode) String() string {
	switch mode {
	case ForceModeForce:
		return "force"
	case ForceModeAcceleration:
		return "acceleration"
	case ForceModeImpulse:
		return "impulse"
	case ForceModeVelocityChange:
		return "velocity_change"
	default:
		return fmt.Sprintf("ForceMode(%d)", int(mode))
	}
}
