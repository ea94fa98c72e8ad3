// Package forces parses the output of the OpenFOAM forces function object.
// Each sample line carries the pressure, viscous and porous force and moment
// contributions acting on the body, which drive the kinematics integrator as
// its per-step force and torque inputs.
package forces

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

// Sample is one line of a forces file. Vectors are in body coordinates; forces
// are in Newtons and moments in Newton metres.
type Sample struct {
	Time           float64
	Pressure       r3.Vector
	Viscous        r3.Vector
	Porous         r3.Vector
	MomentPressure r3.Vector
	MomentViscous  r3.Vector
	MomentPorous   r3.Vector
}

// TotalForce returns the sum of the pressure, viscous and porous forces.
func (s Sample) TotalForce() r3.Vector {
	return s.Pressure.Add(s.Viscous).Add(s.Porous)
}

// TotalMoment returns the sum of the pressure, viscous and porous moments.
func (s Sample) TotalMoment() r3.Vector {
	return s.MomentPressure.Add(s.MomentViscous).Add(s.MomentPorous)
}

// sampleFields is the field count of one sample line: a time value followed by
// six parenthesised vectors.
const sampleFields = 19

var parens = strings.NewReplacer("(", " ", ")", " ")

// ParseFile reads an OpenFOAM forces file from disk.
func ParseFile(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer goutils.UncheckedErrorFunc(f.Close)
	return Parse(f)
}

// Parse reads forces samples from r. Blank lines and '#' header comments are
// skipped; any other malformed line is an error.
func Parse(r io.Reader) ([]Sample, error) {
	var samples []Sample
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(parens.Replace(line))
		if len(fields) != sampleFields {
			return nil, errors.Errorf("line %d: expected %d fields, got %d", lineNo, sampleFields, len(fields))
		}
		vals := make([]float64, sampleFields)
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: field %d", lineNo, i+1)
			}
			vals[i] = v
		}
		samples = append(samples, Sample{
			Time:           vals[0],
			Pressure:       vec(vals[1:4]),
			Viscous:        vec(vals[4:7]),
			Porous:         vec(vals[7:10]),
			MomentPressure: vec(vals[10:13]),
			MomentViscous:  vec(vals[13:16]),
			MomentPorous:   vec(vals[16:19]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

func vec(v []float64) r3.Vector {
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}
