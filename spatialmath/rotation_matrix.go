// Package spatialmath defines the spatial math used by the kinematics
// integrator: 3x3 rotation matrices applied to r3 vectors.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// RotationMatrix is a 3x3 matrix in row major order representing a rotation
// of the body frame into the global frame.
type RotationMatrix struct {
	mat *mat.Dense
}

// NewRotationMatrix creates a rotation matrix from a slice of 9 floats in row
// major order.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, errors.Errorf("input slice has %d elements, need exactly 9", len(m))
	}
	return &RotationMatrix{mat.NewDense(3, 3, m)}, nil
}

// NewPitchRotation returns the rotation matrix for a rotation by theta radians
// about the global Y axis:
//
//	[ cos(theta)  0  sin(theta)]
//	[     0       1      0     ]
//	[-sin(theta)  0  cos(theta)]
func NewPitchRotation(theta float64) *RotationMatrix {
	c, s := math.Cos(theta), math.Sin(theta)
	return &RotationMatrix{mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})}
}

// MulVec returns the matrix-vector product R * v.
func (rm *RotationMatrix) MulVec(v r3.Vector) r3.Vector {
	var out mat.VecDense
	out.MulVec(rm.mat, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return r3.Vector{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// At returns the float corresponding to the i, j entry of the matrix.
func (rm *RotationMatrix) At(i, j int) float64 {
	return rm.mat.At(i, j)
}

// Det returns the determinant of the matrix; it is 1 for a proper rotation.
func (rm *RotationMatrix) Det() float64 {
	return mat.Det(rm.mat)
}
