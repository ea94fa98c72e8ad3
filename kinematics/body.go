// Package kinematics simulates the trajectory and attitude of a mass-varying
// vehicle during powered ascent. A Simulation advances a Body one fixed time
// step at a time; the caller supplies body-frame forces, torques and the motor
// mass-flow rate each step, typically taken from CFD or thrust-curve data.
package kinematics

import "github.com/golang/geo/r3"

// Body holds the current physical state of the simulated vehicle. A body is
// owned by a single Simulation for the duration of a run and its fields are
// mutated only by Simulation.Step.
type Body struct {
	// Mass is the current vehicle mass in kilograms.
	Mass float64
	// MomentsOfInertia holds the principal moments Ixx, Iyy, Izz in kg m^2,
	// stored in the X, Y and Z components respectively.
	MomentsOfInertia r3.Vector
	// Velocity is the translational velocity in the global frame, m/s.
	Velocity r3.Vector
	// RotationRate is the body-fixed angular rate in rad/s.
	RotationRate r3.Vector

	model InertiaModel
}

// NewBody returns a body with the given initial mass and principal moments of
// inertia and zero velocity and rotation rate. The inertia vector may be a
// placeholder since it is recomputed from the model before first use. A nil
// model leaves the moments of inertia constant.
func NewBody(mass float64, inertia r3.Vector, model InertiaModel) *Body {
	return &Body{Mass: mass, MomentsOfInertia: inertia, model: model}
}

// RecomputeInertia updates MomentsOfInertia from the current mass. The update
// is a pure function of mass, so repeated calls with an unchanged mass yield
// identical moments. Bodies without an inertia model keep their constructed
// moments.
func (b *Body) RecomputeInertia() {
	if b.model == nil {
		return
	}
	b.MomentsOfInertia = b.model.MomentsOfInertia(b.Mass)
}
