package kinematics

import "github.com/pkg/errors"

var (
	// ErrSimulationComplete is returned by Step once every row of the history
	// has been written.
	ErrSimulationComplete = errors.New("simulation complete: all time steps have been taken")

	// ErrMassDepleted is returned by Step when the requested mass flow would
	// deplete the vehicle mass to zero or below.
	ErrMassDepleted = errors.New("vehicle mass depleted to zero or below")

	// ErrDegenerateInertia is returned by Step when a torque is applied about
	// an axis whose moment of inertia is zero.
	ErrDegenerateInertia = errors.New("torque applied about an axis with zero moment of inertia")
)
