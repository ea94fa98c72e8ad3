package kinematics

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/cusfsim/firefish/spatialmath"
)

// Simulation owns the time grid, the recorded position and attitude history,
// and the time stepping of a single Body. It is advanced one Step call at a
// time by an external driver and is not safe for concurrent use; independent
// trajectories need independent Body/Simulation pairs.
type Simulation struct {
	body    *Body
	gravity float64
	dt      float64

	times     []float64
	positions []r3.Vector
	angles    []r3.Vector

	// stepIndex is the next history row Step will write; row 0 holds the
	// initial condition.
	stepIndex int

	logger golog.Logger
}

// NewSimulation creates a simulation of the given body under constant gravity
// (m/s^2) with a fixed time step dt over the given duration (both in seconds).
// The history arrays hold floor(duration/dt)+1 rows, evenly spaced from t=0 to
// t=duration inclusive, and are allocated up front.
func NewSimulation(body *Body, gravity, duration, dt float64, logger golog.Logger) (*Simulation, error) {
	if body == nil {
		return nil, errors.New("body cannot be nil")
	}
	if dt <= 0 {
		return nil, errors.Errorf("time step must be positive, got %g", dt)
	}
	if duration < dt {
		return nil, errors.Errorf("duration %g must cover at least one time step of %g", duration, dt)
	}
	n := int(math.Floor(duration/dt)) + 1
	times := make([]float64, n)
	floats.Span(times, 0, duration)
	logger.Debugf("simulation grid: %d samples over %gs at dt=%gs", n, duration, dt)
	return &Simulation{
		body:      body,
		gravity:   gravity,
		dt:        dt,
		times:     times,
		positions: make([]r3.Vector, n),
		angles:    make([]r3.Vector, n),
		stepIndex: 1,
		logger:    logger,
	}, nil
}

// Step advances the simulation by one time step under the given body-frame
// force (N) and torque (N m) vectors and motor mass-flow rate (kg/s, positive
// meaning mass loss).
//
// Half of the step's mass loss is applied before integrating and half after,
// so inertia and acceleration are evaluated at the mid-step mass while the net
// mass change over the step is exactly mdot*dt. Rotation rate and angle, then
// velocity and position, are integrated trapezoidally; the body-to-global
// rotation for the whole step is fixed by the pitch angle carried forward from
// the previous step. Only the pitch component feeds the rotation matrix; yaw
// and roll are integrated but do not affect any transform.
//
// On error no state has been mutated.
func (s *Simulation) Step(forces, torques r3.Vector, mdot float64) error {
	if s.stepIndex >= len(s.times) {
		return errors.Wrapf(ErrSimulationComplete, "%d steps taken", s.stepIndex-1)
	}
	halfLoss := 0.5 * mdot * s.dt
	midMass := s.body.Mass - halfLoss
	if midMass <= 0 {
		return errors.Wrapf(ErrMassDepleted, "mid-step mass %g kg", midMass)
	}
	moi := s.body.MomentsOfInertia
	if s.body.model != nil {
		moi = s.body.model.MomentsOfInertia(midMass)
	}
	rotAccelBody, err := angularAccel(torques, moi)
	if err != nil {
		return err
	}

	// All preconditions hold; commit.
	i := s.stepIndex
	s.positions[i] = s.positions[i-1]
	s.angles[i] = s.angles[i-1]
	s.body.Mass = midMass
	s.body.MomentsOfInertia = moi

	rm := spatialmath.NewPitchRotation(s.angles[i].X)
	rotAccelGlobal := rm.MulVec(rotAccelBody)

	rot0 := s.body.RotationRate
	s.body.RotationRate = rot0.Add(rotAccelGlobal.Mul(s.dt))
	s.angles[i] = s.angles[i].Add(rot0.Add(s.body.RotationRate).Mul(0.5 * s.dt))

	accelBody := r3.Vector{X: forces.X / midMass, Y: forces.Y / midMass, Z: forces.Z / midMass}
	accelGlobal := rm.MulVec(accelBody)
	accelGlobal.Z -= s.gravity

	vel0 := s.body.Velocity
	s.body.Velocity = vel0.Add(accelGlobal.Mul(s.dt))
	s.positions[i] = s.positions[i].Add(vel0.Add(s.body.Velocity).Mul(0.5 * s.dt))

	s.body.Mass -= halfLoss
	s.stepIndex++
	return nil
}

// angularAccel divides torque by inertia componentwise. A zero-inertia axis
// with zero torque contributes no angular acceleration; a nonzero torque about
// such an axis has no finite solution.
func angularAccel(torques, moi r3.Vector) (r3.Vector, error) {
	var out r3.Vector
	for _, c := range []struct {
		torque, inertia float64
		dst             *float64
		axis            string
	}{
		{torques.X, moi.X, &out.X, "x"},
		{torques.Y, moi.Y, &out.Y, "y"},
		{torques.Z, moi.Z, &out.Z, "z"},
	} {
		switch {
		case c.inertia != 0:
			*c.dst = c.torque / c.inertia
		case c.torque != 0:
			return r3.Vector{}, errors.Wrapf(ErrDegenerateInertia, "%s axis", c.axis)
		}
	}
	return out, nil
}

// Body returns the body being simulated.
func (s *Simulation) Body() *Body {
	return s.body
}

// Times returns the simulation time grid, inclusive of t=0 and the final time.
func (s *Simulation) Times() []float64 {
	return s.times
}

// Positions returns the global-frame position history in metres. Row 0 is the
// initial condition; rows at and beyond StepIndex have not been written yet.
func (s *Simulation) Positions() []r3.Vector {
	return s.positions
}

// Angles returns the attitude history in radians: pitch (down from global Z),
// yaw (about global Z) and roll (about body Z) in the X, Y and Z components
// respectively. Indexing matches Positions.
func (s *Simulation) Angles() []r3.Vector {
	return s.angles
}

// StepIndex returns the index of the next history row Step will write. It
// starts at 1 and the simulation is complete once it reaches len(Times()).
func (s *Simulation) StepIndex() int {
	return s.stepIndex
}
