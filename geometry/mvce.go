package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// MVCE2D computes the minimum-volume ellipse concentric with B (semi-axes
// b, orientation thetaB) that contains the ellipse A (semi-axes a,
// orientation thetaA). It follows the shrink/fit/stretch-back construction
// from the reference planner's getMVCE2D: shrink to a sphere under B's
// frame, SVD-fit in the shrunk space, then stretch back. The result's
// semi-axes are labelled in B's frame: A0 is the axis nearer B's first axis.
func MVCE2D(a, b [2]float64, thetaA, thetaB float64) *Superellipse {
	ra := rotation2D(thetaA)
	rb := rotation2D(thetaB)

	r := math.Min(b[0], b[1])
	diag := mat.NewDiagDense(2, []float64{r / b[0], r / b[1]})
	diagA := mat.NewDiagDense(2, []float64{1 / (a[0] * a[0]), 1 / (a[1] * a[1])})

	// Shrinking affine transform T = Rb * diag * Rb^T.
	var t mat.Dense
	t.Mul(rb, diag)
	t.Mul(&t, rb.T())

	var tInv mat.Dense
	if err := tInv.Inverse(&t); err != nil {
		// T is a product of rotations and a positive diagonal, always
		// invertible for positive semi-axes; this path is unreachable
		// for valid shapes but kept total rather than panicking.
		return &Superellipse{A0: b[0], A1: b[1], Eps: 1, Theta: thetaB}
	}

	// Ap = T^-1 (Ra diagA Ra^T) T^-1, fit ellipsoid Cp to sphere and Ap.
	var raDiagA, ap mat.Dense
	raDiagA.Mul(ra, diagA)
	raDiagA.Mul(&raDiagA, ra.T())
	ap.Mul(&tInv, &raDiagA)
	ap.Mul(&ap, &tInv)

	var svd mat.SVD
	svd.Factorize(&ap, mat.SVDFull)
	sv := svd.Values(nil)
	var u mat.Dense
	svd.UTo(&u)

	cp := [2]float64{
		math.Max(math.Pow(sv[0], -0.5), r),
		math.Max(math.Pow(sv[1], -0.5), r),
	}

	diagC := mat.NewDiagDense(2, []float64{1 / (cp[0] * cp[0]), 1 / (cp[1] * cp[1])})
	var c mat.Dense
	c.Mul(&t, &u)
	c.Mul(&c, diagC)
	c.Mul(&c, u.T())
	c.Mul(&c, &t)

	var svd2 mat.SVD
	svd2.Factorize(&c, mat.SVDFull)
	sv2 := svd2.Values(nil)
	var u2 mat.Dense
	svd2.UTo(&u2)
	a0, a1 := math.Pow(sv2[0], -0.5), math.Pow(sv2[1], -0.5)
	angC := math.Atan2(u2.At(1, 0), u2.At(0, 0))
	// Label the axes in B's frame: swapping the semi-axes and turning the
	// angle by pi/2 describes the same ellipse.
	if math.Abs(math.Remainder(angC-thetaB, math.Pi)) > math.Pi/4 {
		a0, a1 = a1, a0
		angC += math.Pi / 2
	}

	return &Superellipse{
		A0:    a0,
		A1:    a1,
		Eps:   1,
		Pos:   r2.Point{},
		Theta: angC,
	}
}

// MVCE3D is the 3D analogue of MVCE2D, operating on quaternion orientations
// instead of 2D rotation angles (getMVCE3D in the reference planner). The
// semi-axes are returned shortest first, as an SVD orders its singular
// values, with Quat's rotation columns the matching axes.
func MVCE3D(a, b [3]float64, quatA, quatB mgl64.Quat) *Superquadric {
	ra := quatA.Mat4().Mat3()
	rb := quatB.Mat4().Mat3()

	rMin := math.Min(b[0], math.Min(b[1], b[2]))

	diag := mgl64.Diag3(mgl64.Vec3{rMin / b[0], rMin / b[1], rMin / b[2]})
	diagA := mgl64.Diag3(mgl64.Vec3{1 / (a[0] * a[0]), 1 / (a[1] * a[1]), 1 / (a[2] * a[2])})

	t := rb.Mul3(diag).Mul3(rb.Transpose())
	tInv := t.Inverse()

	ap := tInv.Mul3(ra.Mul3(diagA).Mul3(ra.Transpose())).Mul3(tInv)

	u, sv := symEigSorted(ap)
	cp := [3]float64{
		math.Max(math.Pow(sv[0], -0.5), rMin),
		math.Max(math.Pow(sv[1], -0.5), rMin),
		math.Max(math.Pow(sv[2], -0.5), rMin),
	}
	diagC := mgl64.Diag3(mgl64.Vec3{1 / (cp[0] * cp[0]), 1 / (cp[1] * cp[1]), 1 / (cp[2] * cp[2])})

	c := t.Mul3(u).Mul3(diagC).Mul3(u.Transpose()).Mul3(t)
	u2, sv2 := symEigSorted(c)
	qc := mgl64.Mat3ToQuat(u2)

	return &Superquadric{
		A0: math.Pow(sv2[0], -0.5), A1: math.Pow(sv2[1], -0.5), A2: math.Pow(sv2[2], -0.5),
		Eps1: 1, Eps2: 1,
		Pos:  r3.Vector{},
		Quat: qc.Normalize(),
	}
}

func rotation2D(theta float64) *mat.Dense {
	c, s := math.Cos(theta), math.Sin(theta)
	return mat.NewDense(2, 2, []float64{c, -s, s, c})
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// symEigSorted returns the eigenvector matrix and eigenvalues of a symmetric
// 3x3 matrix via gonum's symmetric eigendecomposition, since mgl64 has no
// SVD. Eigenvalues are sorted descending, the order an SVD gives, and the
// eigenvector matrix is made a proper rotation (determinant +1) so that it
// converts to a quaternion.
func symEigSorted(m mgl64.Mat3) (mgl64.Mat3, [3]float64) {
	dense := mat.NewSymDense(3, []float64{
		m[0], m[1], m[2],
		m[1], m[4], m[5],
		m[2], m[5], m[8],
	})
	var eig mat.EigenSym
	eig.Factorize(dense, true)
	values := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	var out mgl64.Mat3
	var sv [3]float64
	for col := 0; col < 3; col++ {
		src := 2 - col // gonum returns eigenvalues in ascending order
		sv[col] = values[src]
		for row := 0; row < 3; row++ {
			out[col*3+row] = vecs.At(row, src)
		}
	}
	if out.Det() < 0 {
		for row := 0; row < 3; row++ {
			out[6+row] = -out[6+row]
		}
	}
	return out, sv
}
