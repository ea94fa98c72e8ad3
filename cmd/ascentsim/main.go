// The ascentsim command runs the cylinder-rocket ascent scenario and reports
// the resulting trajectory, with optional altitude and fin-flutter plots.
package main

import (
	"os"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/cusfsim/firefish/config"
	"github.com/cusfsim/firefish/finflutter"
	"github.com/cusfsim/firefish/kinematics"
)

var logger = golog.NewDevelopmentLogger("ascentsim")

func main() {
	app := &cli.App{
		Name:            "ascentsim",
		Usage:           "simulate a powered ascent",
		HideHelpCommand: true,
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run an ascent scenario",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "load scenario from `FILE` instead of the reference flight",
					},
					&cli.StringFlag{
						Name:  "plot",
						Usage: "write an altitude plot to `FILE` (PNG)",
					},
				},
				Action: runAction,
			},
			{
				Name:  "flutter",
				Usage: "plot fin-flutter velocity against altitude",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: "root-chord", Value: 20, Usage: "fin root chord (cm)"},
					&cli.Float64Flag{Name: "tip-chord", Value: 10, Usage: "fin tip chord (cm)"},
					&cli.Float64Flag{Name: "semi-span", Value: 10, Usage: "fin semi-span (cm)"},
					&cli.Float64Flag{Name: "thickness", Value: 0.2, Usage: "fin thickness (cm)"},
					&cli.Float64Flag{Name: "max-altitude", Value: 50000, Usage: "top of the altitude range (m)"},
					&cli.StringFlag{Name: "plot", Value: "flutter.png", Usage: "write the plot to `FILE` (PNG)"},
				},
				Action: flutterAction,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}

func runAction(c *cli.Context) error {
	scenario := config.DefaultScenario()
	if path := c.String("config"); path != "" {
		var err error
		if scenario, err = config.Read(path); err != nil {
			return err
		}
	}

	body := kinematics.NewBody(scenario.InitialMass, r3.Vector{}, kinematics.Cylinder{
		Radius: scenario.Radius,
		Height: scenario.Height,
	})
	sim, err := kinematics.NewSimulation(body, scenario.Gravity, scenario.Duration, scenario.TimeStep, logger)
	if err != nil {
		return err
	}

	for float64(sim.StepIndex())*scenario.TimeStep <= scenario.Duration {
		thrust := 0.0
		if float64(sim.StepIndex())*scenario.TimeStep <= scenario.BurnTime {
			thrust = scenario.Thrust
		}
		step := r3.Vector{X: scenario.LateralDrag, Z: thrust}
		if err := sim.Step(step, r3.Vector{}, scenario.MassFlowRate); err != nil {
			return err
		}
	}

	final := sim.Positions()[sim.StepIndex()-1]
	logger.Infow("simulation finished",
		"steps", sim.StepIndex()-1,
		"final_altitude_m", final.Z,
		"final_mass_kg", body.Mass,
	)

	if path := c.String("plot"); path != "" {
		if err := writeAltitudePlot(path, sim.Times(), sim.Positions()); err != nil {
			return err
		}
		logger.Infof("altitude plot written to %s", path)
	}
	return nil
}

func flutterAction(c *cli.Context) error {
	zs := make([]float64, 200)
	floats.Span(zs, 0, c.Float64("max-altitude"))
	ps, _, ss := finflutter.ModelAtmosphere(zs)

	vfs, err := finflutter.FlutterVelocityTransonic(ps, ss, finflutter.FinGeometry{
		RootChord: c.Float64("root-chord"),
		TipChord:  c.Float64("tip-chord"),
		SemiSpan:  c.Float64("semi-span"),
		Thickness: c.Float64("thickness"),
	})
	if err != nil {
		return err
	}

	path := c.String("plot")
	if err := writeFlutterPlot(path, zs, vfs); err != nil {
		return err
	}
	logger.Infof("flutter plot written to %s", path)
	return nil
}
