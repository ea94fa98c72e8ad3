package kinematics

import "github.com/golang/geo/r3"

// InertiaModel computes a body's principal moments of inertia as a pure
// function of its current mass. Geometry is fixed at construction; only the
// mass varies over a run.
type InertiaModel interface {
	MomentsOfInertia(mass float64) r3.Vector
}

// Cylinder models the vehicle as a uniform solid cylinder with its long axis
// along body Z. Dimensions are in metres.
type Cylinder struct {
	Radius float64
	Height float64
}

// MomentsOfInertia returns the principal moments of a uniform solid cylinder:
// Ixx = Iyy = (m/12)(3r^2 + h^2), Izz = m r^2 / 2.
func (c Cylinder) MomentsOfInertia(mass float64) r3.Vector {
	transverse := (mass / 12.0) * (3*c.Radius*c.Radius + c.Height*c.Height)
	return r3.Vector{
		X: transverse,
		Y: transverse,
		Z: mass * c.Radius * c.Radius / 2.0,
	}
}
