// Package config describes runnable ascent scenarios.
package config

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

// A Scenario configures a powered-ascent run of the kinematics simulation:
// the vehicle geometry, the environment, the time grid and a simple
// constant-thrust burn.
type Scenario struct {
	// InitialMass is the vehicle mass on the pad, kg.
	InitialMass float64 `json:"initial_mass_kg"`
	// Radius and Height describe the uniform-cylinder vehicle model, m.
	Radius float64 `json:"radius_m"`
	Height float64 `json:"height_m"`
	// Gravity is the constant gravitational acceleration, m/s^2.
	Gravity float64 `json:"gravity_ms2"`
	// Duration and TimeStep fix the simulation grid, s.
	Duration float64 `json:"duration_s"`
	TimeStep float64 `json:"time_step_s"`
	// BurnTime is how long the motor produces Thrust, s.
	BurnTime float64 `json:"burn_time_s"`
	// Thrust is the body-Z motor force while burning, N.
	Thrust float64 `json:"thrust_n"`
	// LateralDrag is a constant body-X force applied every step, N.
	LateralDrag float64 `json:"lateral_drag_n"`
	// MassFlowRate is the motor mass loss, kg/s.
	MassFlowRate float64 `json:"mass_flow_rate_kgs"`
}

// DefaultScenario returns the reference cylinder-rocket flight: a 100 kg
// cylinder of radius 0.3 m and height 2 m burning 2000 N for 50 s of a 100 s
// run at one-second steps.
func DefaultScenario() Scenario {
	return Scenario{
		InitialMass:  100,
		Radius:       0.3,
		Height:       2,
		Gravity:      9.81,
		Duration:     100,
		TimeStep:     1,
		BurnTime:     50,
		Thrust:       2000,
		LateralDrag:  2,
		MassFlowRate: 0.1,
	}
}

// Validate ensures all parts of the config are valid.
func (s *Scenario) Validate(path string) error {
	if s.InitialMass <= 0 {
		return goutils.NewConfigValidationError(path, errors.New("initial_mass_kg must be positive"))
	}
	if s.Radius <= 0 || s.Height <= 0 {
		return goutils.NewConfigValidationError(path, errors.New("radius_m and height_m must be positive"))
	}
	if s.TimeStep <= 0 {
		return goutils.NewConfigValidationError(path, errors.New("time_step_s must be positive"))
	}
	if s.Duration < s.TimeStep {
		return goutils.NewConfigValidationError(path, errors.New("duration_s must cover at least one time step"))
	}
	if s.BurnTime < 0 {
		return goutils.NewConfigValidationError(path, errors.New("burn_time_s cannot be negative"))
	}
	if s.MassFlowRate < 0 {
		return goutils.NewConfigValidationError(path, errors.New("mass_flow_rate_kgs cannot be negative"))
	}
	if s.MassFlowRate*s.Duration >= s.InitialMass {
		return goutils.NewConfigValidationError(path, errors.New("motor would deplete the vehicle mass before the run ends"))
	}
	return nil
}

// Read loads and validates a scenario from a JSON file. Fields omitted from
// the file keep their DefaultScenario values.
func Read(filePath string) (Scenario, error) {
	f, err := os.Open(filePath) //nolint:gosec
	if err != nil {
		return Scenario{}, err
	}
	defer goutils.UncheckedErrorFunc(f.Close)
	return FromReader(f)
}

// FromReader loads and validates a scenario from r.
func FromReader(r io.Reader) (Scenario, error) {
	cfg := DefaultScenario()
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return Scenario{}, errors.Wrap(err, "cannot parse scenario as json")
	}
	if err := cfg.Validate("scenario"); err != nil {
		return Scenario{}, err
	}
	return cfg, nil
}
