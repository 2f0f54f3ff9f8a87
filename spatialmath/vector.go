// Package spatialmath defines the r3 vector helpers shared by springbounce and its hosts.
package spatialmath

import (
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ClampMagnitude returns v rescaled to magnitude |max| when |v| exceeds |max|, along v scaled by
// the sign of max. Otherwise v is returned unchanged, so a zero vector stays zero and a vector
// exactly at the ceiling is not touched. A zero ceiling maps every vector to the zero vector.
func ClampMagnitude(v r3.Vector, max float64) r3.Vector {
	norm2 := v.Norm2()
	if !math.IsInf(norm2, 1) && (norm2 != 0 || v == (r3.Vector{})) {
		if norm2 > max*max {
			return v.Normalize().Mul(max)
		}
		return v
	}

	// |v|^2 overflowed or underflowed; compare and normalize in units of the largest component.
	scale := math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
	unit := r3.Vector{X: v.X / scale, Y: v.Y / scale, Z: v.Z / scale}
	if unit.Norm() > math.Abs(max)/scale {
		return unit.Normalize().Mul(max)
	}
	return v
}

// R3VectorAlmostEqual compares two r3.Vector objects and returns if the all elementwise differences are less than epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon && math.Abs(a.Z-b.Z) < epsilon
}

// R3VectorIsFinite reports whether no component of v is NaN or infinite.
func R3VectorIsFinite(v r3.Vector) bool {
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ParseR3Vector parses a comma or space delimited "x,y,z" triple.
func ParseR3Vector(s string) (r3.Vector, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return r3.Vector{}, errors.Errorf("expected 3 components in %q, got %d", s, len(fields))
	}
	var parsed [3]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return r3.Vector{}, errors.Wrapf(err, "component %d of %q", i, s)
		}
		parsed[i] = value
	}
	return r3.Vector{X: parsed[0], Y: parsed[1], Z: parsed[2]}, nil
}
