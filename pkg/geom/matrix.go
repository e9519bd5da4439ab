package geom

import "math"

// Matrix is a 2D affine transform, stored row-major as:
//
//	[ A  B  Tx ]
//	[ C  D  Ty ]
//	[ 0  0  1  ]
//
// This is the form every render-tree transform node (Transform, Offset,
// Scale, Rotate layers) composes into, and is the value captured per
// HitTestResult entry so dispatch can map an incoming event into each
// target's local coordinates (spec.md §4.5, scenario D).
type Matrix struct {
	A, B, C, D, Tx, Ty float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translation returns a pure-translation transform.
func Translation(dx, dy float64) Matrix {
	return Matrix{A: 1, D: 1, Tx: dx, Ty: dy}
}

// ScaleMatrix returns a pure-scale transform about the origin.
func ScaleMatrix(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotation returns a rotation transform (radians) about the origin.
func Rotation(radians float64) Matrix {
	s, c := math.Sin(radians), math.Cos(radians)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// Concat returns m composed with other, applied as m, then other (other ∘ m):
// a point is first transformed by m, then by other.
func (m Matrix) Concat(other Matrix) Matrix {
	return Matrix{
		A:  m.A*other.A + m.B*other.C,
		B:  m.A*other.B + m.B*other.D,
		C:  m.C*other.A + m.D*other.C,
		D:  m.C*other.B + m.D*other.D,
		Tx: m.Tx*other.A + m.Ty*other.C + other.Tx,
		Ty: m.Tx*other.B + m.Ty*other.D + other.Ty,
	}
}

// Apply transforms a point by this matrix.
func (m Matrix) Apply(p Offset) Offset {
	return Offset{
		X: m.A*p.X + m.C*p.Y + m.Tx,
		Y: m.B*p.X + m.D*p.Y + m.Ty,
	}
}

// ApplyVector transforms a direction by this matrix's linear part only,
// ignoring translation (Tx, Ty). Used to map a pointer delta into a target's
// local space, where only rotation/scale apply, not the target's position.
func (m Matrix) ApplyVector(v Offset) Offset {
	return Offset{
		X: m.A*v.X + m.C*v.Y,
		Y: m.B*v.X + m.D*v.Y,
	}
}

// Determinant returns the determinant of the linear part of the matrix.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// IsInvertible reports whether the matrix has a well-defined inverse. Spec.md
// §8 invariant 10 requires hit-test dispatch to skip non-invertible
// transforms rather than apply them.
func (m Matrix) IsInvertible() bool {
	return math.Abs(m.Determinant()) > epsilon
}

// Invert returns the inverse transform and true, or the zero Matrix and
// false if the matrix is not invertible.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if math.Abs(det) <= epsilon {
		return Matrix{}, false
	}
	invDet := 1 / det
	a := m.D * invDet
	b := -m.B * invDet
	c := -m.C * invDet
	d := m.A * invDet
	tx := -(m.Tx*a + m.Ty*c)
	ty := -(m.Tx*b + m.Ty*d)
	return Matrix{A: a, B: b, C: c, D: d, Tx: tx, Ty: ty}, true
}
