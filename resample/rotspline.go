package resample

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// rotationSpline interpolates a scalar angle treated as a 1-axis rotation.
//
// Naive per-component cubic interpolation of wrapped angles tears at the
// ±π boundary: two samples either side of it are numerically ~2π apart and
// the spline swings the long way around. The rotation spline instead
// unwraps the samples onto a continuous angle line — each consecutive pair
// connected by its shortest angular difference — fits a cubic spline
// there, and wraps evaluations back into (-π, π].
type rotationSpline struct {
	spline interp.NaturalCubic
}

// fitRotationSpline fits a rotation spline over (xs, angles), angles in
// radians. xs must be strictly increasing; len(xs) == len(angles).
func fitRotationSpline(xs, angles []float64) (*rotationSpline, error) {
	unwrapped := make([]float64, len(angles))
	if len(angles) > 0 {
		unwrapped[0] = angles[0]
		for i := 1; i < len(angles); i++ {
			unwrapped[i] = unwrapped[i-1] + wrapAngle(angles[i]-angles[i-1])
		}
	}
	rs := &rotationSpline{}
	if err := rs.spline.Fit(xs, unwrapped); err != nil {
		return nil, err
	}
	return rs, nil
}

// Predict evaluates the spline at x and wraps the result into (-π, π].
func (rs *rotationSpline) Predict(x float64) float64 {
	return wrapAngle(rs.spline.Predict(x))
}

// wrapAngle maps an angle in radians into (-π, π].
func wrapAngle(a float64) float64 {
	r := math.Mod(a+math.Pi, 2*math.Pi)
	if r <= 0 {
		r += 2 * math.Pi
	}
	return r - math.Pi
}
