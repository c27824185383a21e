package geometry

import "github.com/pkg/errors"

// errInvalidInput wraps a construction-time failure. Shape construction,
// including building a shape with MinkowskiSum2D/MinkowskiSum3D, is the one
// place in this package that is allowed to fail loudly: every sampling and
// intersection routine downstream is a total function that returns
// NaN/empty results instead (spec §7 error taxonomy).
func errInvalidInput(msg string) error {
	return errors.Wrap(errors.New(msg), "geometry: invalid input")
}
