package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestNewRotationMatrix(t *testing.T) {
	_, err := NewRotationMatrix([]float64{1, 0, 0, 0, 1, 0})
	test.That(t, err, test.ShouldNotBeNil)

	rm, err := NewRotationMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rm.MulVec(r3.Vector{X: 2, Y: -3, Z: 5}), test.ShouldResemble, r3.Vector{X: 2, Y: -3, Z: 5})
}

func TestNewPitchRotation(t *testing.T) {
	t.Run("zero angle is identity", func(t *testing.T) {
		rm := NewPitchRotation(0)
		v := r3.Vector{X: 1.5, Y: 2.5, Z: -3.5}
		test.That(t, rm.MulVec(v), test.ShouldResemble, v)
		test.That(t, rm.Det(), test.ShouldAlmostEqual, 1)
	})

	t.Run("quarter turn", func(t *testing.T) {
		rm := NewPitchRotation(math.Pi / 2)

		got := rm.MulVec(r3.Vector{X: 1})
		test.That(t, got.X, test.ShouldAlmostEqual, 0)
		test.That(t, got.Y, test.ShouldAlmostEqual, 0)
		test.That(t, got.Z, test.ShouldAlmostEqual, -1)

		got = rm.MulVec(r3.Vector{Z: 1})
		test.That(t, got.X, test.ShouldAlmostEqual, 1)
		test.That(t, got.Y, test.ShouldAlmostEqual, 0)
		test.That(t, got.Z, test.ShouldAlmostEqual, 0)

		// the rotation axis is untouched
		got = rm.MulVec(r3.Vector{Y: 1})
		test.That(t, got, test.ShouldResemble, r3.Vector{Y: 1})
	})

	t.Run("norm preserved", func(t *testing.T) {
		v := r3.Vector{X: 3, Y: -4, Z: 12}
		for _, theta := range []float64{-2.1, -0.3, 0.7, 1.9, 3.3} {
			rm := NewPitchRotation(theta)
			test.That(t, rm.MulVec(v).Norm(), test.ShouldAlmostEqual, v.Norm())
			test.That(t, rm.Det(), test.ShouldAlmostEqual, 1)
		}
	})

	t.Run("entries", func(t *testing.T) {
		theta := 0.42
		rm := NewPitchRotation(theta)
		test.That(t, rm.At(0, 0), test.ShouldAlmostEqual, math.Cos(theta))
		test.That(t, rm.At(0, 2), test.ShouldAlmostEqual, math.Sin(theta))
		test.That(t, rm.At(2, 0), test.ShouldAlmostEqual, -math.Sin(theta))
		test.That(t, rm.At(2, 2), test.ShouldAlmostEqual, math.Cos(theta))
		test.That(t, rm.At(1, 1), test.ShouldEqual, 1)
	})
}
