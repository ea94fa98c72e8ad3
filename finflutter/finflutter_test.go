package finflutter

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/floats"
)

func TestModelAtmosphere(t *testing.T) {
	zs := make([]float64, 100)
	floats.Span(zs, 0, 30000)
	ps, ts, ss := ModelAtmosphere(zs)
	test.That(t, len(ps), test.ShouldEqual, len(zs))
	test.That(t, len(ts), test.ShouldEqual, len(zs))
	test.That(t, len(ss), test.ShouldEqual, len(zs))

	// sea level
	test.That(t, ts[0], test.ShouldEqual, 15.04)
	test.That(t, ps[0], test.ShouldAlmostEqual, 101401, 5)
	test.That(t, ss[0], test.ShouldAlmostEqual, 340.3, 0.1)

	// pressure decreases monotonically with altitude
	for i := 1; i < len(ps); i++ {
		test.That(t, ps[i], test.ShouldBeLessThan, ps[i-1])
	}

	// lower stratosphere is isothermal
	ps2, ts2, _ := ModelAtmosphere([]float64{12000, 20000})
	test.That(t, ts2[0], test.ShouldEqual, -56.46)
	test.That(t, ts2[1], test.ShouldEqual, -56.46)
	test.That(t, ps2[1], test.ShouldBeLessThan, ps2[0])
}

func TestAirDensities(t *testing.T) {
	ps, ts, _ := ModelAtmosphere([]float64{0, 10000, 30000})
	rhos, err := AirDensities(ps, ts)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(rhos), test.ShouldEqual, 3)
	// sea-level density is about 1.225 kg/m^3
	test.That(t, rhos[0], test.ShouldAlmostEqual, 1.225, 0.01)
	test.That(t, rhos[1], test.ShouldBeLessThan, rhos[0])

	_, err = AirDensities(ps, ts[:2])
	test.That(t, err, test.ShouldNotBeNil)
}

func TestFlutterVelocityTransonic(t *testing.T) {
	zs := make([]float64, 100)
	floats.Span(zs, 0, 30000)
	ps, _, ss := ModelAtmosphere(zs)

	fin := FinGeometry{RootChord: 20, TipChord: 10, SemiSpan: 10, Thickness: 0.2}
	vfs, err := FlutterVelocityTransonic(ps, ss, fin)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(vfs), test.ShouldEqual, len(ps))
	for _, vf := range vfs {
		test.That(t, vf, test.ShouldBeGreaterThan, 0)
	}

	// a stiffer fin flutters later: velocity scales with sqrt of shear modulus
	stiff := fin
	stiff.ShearModulus = 2 * defaultShearModulus
	stiffVfs, err := FlutterVelocityTransonic(ps, ss, stiff)
	test.That(t, err, test.ShouldBeNil)
	for i := range vfs {
		test.That(t, stiffVfs[i]/vfs[i], test.ShouldAlmostEqual, math.Sqrt2, 1e-9)
	}

	_, err = FlutterVelocityTransonic(ps[:10], ss, fin)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = FlutterVelocityTransonic(ps, ss, FinGeometry{})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestFlutterVelocitySupersonic(t *testing.T) {
	ps, ts, _ := ModelAtmosphere([]float64{0, 15000, 30000})
	rhos, err := AirDensities(ps, ts)
	test.That(t, err, test.ShouldBeNil)

	fin := SupersonicFin{
		SemiSpan:           0.1,
		Mass:               1,
		RadiusOfGyration:   0.2,
		DistanceToCOG:      0.1,
		TorsionalFrequency: 380,
		BendingFrequency:   104,
		MachNumber:         3,
	}
	vfs := FlutterVelocitySupersonic(rhos, fin)
	test.That(t, len(vfs), test.ShouldEqual, len(rhos))
	for i, vf := range vfs {
		test.That(t, math.IsNaN(vf), test.ShouldBeFalse)
		test.That(t, vf, test.ShouldBeGreaterThan, 0)
		if i > 0 {
			// thinner air raises the flutter boundary
			test.That(t, vf, test.ShouldBeGreaterThan, vfs[i-1])
		}
	}
}
