// Package finflutter computes fin-flutter velocity as a function of altitude.
//
// The transonic flutter velocity comes from "Peak of Flight" newsletter issue
// 291, itself a modified version of the equation in NACA technical note 4197.
// The supersonic flutter criterion is from J. Simmons' AFIT thesis
// (AFIT/GSS/ENY/09-J02); its torsional and bending mode frequencies have to be
// obtained separately from finite element analysis.
package finflutter

import (
	"math"

	"github.com/pkg/errors"
)

// defaultShearModulus is the shear modulus of G10 fibreglass in Pascals.
const defaultShearModulus = 26.2e9

// ModelAtmosphere estimates pressure, temperature and speed of sound at each
// of the given geopotential altitudes (metres). It models three regimes:
// troposphere, lower stratosphere and upper stratosphere. Units are Pascals,
// Celsius and m/s respectively.
func ModelAtmosphere(altitudes []float64) (ps, ts, ss []float64) {
	ps = make([]float64, len(altitudes))
	ts = make([]float64, len(altitudes))
	ss = make([]float64, len(altitudes))
	for i, z := range altitudes {
		var temp, press float64
		switch {
		case z <= 11000: // troposphere
			temp = 15.04 - 0.00649*z
			press = 1000 * 101.29 * math.Pow((temp+273.1)/288.08, 5.256)
		case z < 25000: // lower stratosphere
			temp = -56.46
			press = 1000 * 22.65 * math.Exp(1.73-0.000157*z)
		default: // upper stratosphere
			temp = -131.21 + 0.00299*z
			press = 1000 * 2.488 * math.Pow((temp+273.1)/216.6, -11.388)
		}
		ps[i] = press
		ts[i] = temp
		ss[i] = 331.3 * math.Sqrt(1+temp/273.15)
	}
	return ps, ts, ss
}

// AirDensities converts modelled pressures (Pa) and temperatures (Celsius)
// into air densities in kg/m^3 via the specific gas constant for air.
func AirDensities(ps, ts []float64) ([]float64, error) {
	if len(ps) != len(ts) {
		return nil, errors.Errorf("got %d pressures but %d temperatures", len(ps), len(ts))
	}
	rhos := make([]float64, len(ps))
	for i := range ps {
		rhos[i] = (ps[i] / 1000) / (0.2869 * (ts[i] + 273.1))
	}
	return rhos, nil
}

// FinGeometry describes a trapezoidal fin for the transonic flutter model.
// Dimensions are in centimetres; the shear modulus of the fin material is in
// Pascals and defaults to G10 fibreglass when zero.
type FinGeometry struct {
	RootChord    float64
	TipChord     float64
	SemiSpan     float64
	Thickness    float64
	ShearModulus float64
}

// FlutterVelocityTransonic calculates the flutter velocity (m/s) of the fin at
// each altitude sample, given the modelled pressures (Pa) and speeds of sound
// (m/s) there. The equation is valid below roughly Mach 2.5.
func FlutterVelocityTransonic(ps, ss []float64, fin FinGeometry) ([]float64, error) {
	if len(ps) != len(ss) {
		return nil, errors.Errorf("got %d pressures but %d speeds of sound", len(ps), len(ss))
	}
	if fin.RootChord <= 0 {
		return nil, errors.New("fin root chord must be positive")
	}
	shear := fin.ShearModulus
	if shear == 0 {
		shear = defaultShearModulus
	}

	area := 0.5 * (fin.RootChord + fin.TipChord) * fin.SemiSpan
	aspect := fin.SemiSpan * fin.SemiSpan / area
	taper := fin.TipChord / fin.RootChord

	vfs := make([]float64, len(ps))
	b := 2 * (aspect + 2) * math.Pow(fin.Thickness/fin.RootChord, 3)
	for i := range ps {
		a := 1.337 * math.Pow(aspect, 3) * ps[i] * (taper + 1)
		vfs[i] = ss[i] * math.Sqrt(shear*b/a)
	}
	return vfs, nil
}

// SupersonicFin describes a fin for the supersonic flutter criterion. Lengths
// are in metres, mode frequencies in rad/s.
type SupersonicFin struct {
	SemiSpan float64
	Mass     float64
	// RadiusOfGyration is the distance at which all the fin's mass can be
	// thought to be concentrated, sqrt(I/m).
	RadiusOfGyration float64
	// DistanceToCOG is the distance of the centre of gravity from the axis of
	// rotation.
	DistanceToCOG      float64
	TorsionalFrequency float64
	BendingFrequency   float64
	MachNumber         float64
}

// FlutterVelocitySupersonic calculates the flutter velocity (m/s) of the fin
// at each air-density sample (kg/m^3). The criterion is valid for freestream
// flow above roughly Mach 2.5.
func FlutterVelocitySupersonic(rhos []float64, fin SupersonicFin) []float64 {
	fr2 := math.Pow(fin.BendingFrequency/fin.TorsionalFrequency, 2)
	b := math.Pow(1-fr2, 2) + 4*math.Pow(fin.DistanceToCOG/fin.RadiusOfGyration, 2)*fr2
	c := 2 * (1 + fr2)

	vfs := make([]float64, len(rhos))
	for i, rho := range rhos {
		massRatio := fin.Mass / (rho * fin.SemiSpan * fin.SemiSpan)
		a := massRatio * fin.RadiusOfGyration * fin.RadiusOfGyration *
			math.Sqrt(fin.MachNumber*fin.MachNumber-1) / (fin.DistanceToCOG * fin.SemiSpan)
		vfs[i] = fin.SemiSpan * fin.TorsionalFrequency * math.Sqrt(a*b/c)
	}
	return vfs
}
